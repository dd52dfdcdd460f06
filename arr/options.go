// SPDX-License-Identifier: MIT
// Package: arrinit/arr
//
// options.go — functional options for the builders.
//
// Contract:
//   • Options are functional (type Option[T] func(*config[T])).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Later options override earlier ones.

package arr

// Option customizes a single build by mutating its config before the first
// producer call. Complexity: applying N options costs O(N) time, O(1) space.
type Option[T any] func(*config[T])

// WithRelease registers fn to receive every already-built element when a build
// fails part-way. For a failure at index k, fn is called with k-1, k-2, …, 0
// (reverse construction order), then the failure propagates. fn is never
// called for a successful build, nor for the failing index itself.
//
// fn runs while a producer panic is unwinding as well; if fn panics itself,
// that panic replaces the original one.
// Panics on nil.
func WithRelease[T any](fn func(idx int, v T)) Option[T] {
	if fn == nil {
		panic("arr: WithRelease(nil)")
	}
	return func(c *config[T]) {
		c.release = fn
	}
}
