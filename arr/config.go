// SPDX-License-Identifier: MIT
// Package: arrinit/arr
//
// config.go — per-build configuration and defaults.
//
// Defaults:
//   • release = nil (failed builds simply drop what was produced)

package arr

// config aggregates the knobs of one build. Passed by value.
type config[T any] struct {
	// release receives built elements in reverse order when a build fails.
	release func(idx int, v T)
}

// newConfig applies opts in order on top of the defaults.
// Complexity: O(len(opts)).
func newConfig[T any](opts ...Option[T]) config[T] {
	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
