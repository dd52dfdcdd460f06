// SPDX-License-Identifier: MIT
// Package: arrinit/arr
//
// impl_fill.go — the sequential fill loops shared by every builder.
//
// Contract:
//   • produce(i) is called for i = 0..len(dst)-1, ascending, once each.
//   • The first error stops the loop; later indices are never requested.
//   • On any early exit (error, panic, runtime.Goexit) the release hook sees
//     the built prefix in reverse order. The panic itself is not recovered.

package arr

// fillSlots populates dst in place and returns (len(dst), nil) on success, or
// the failing index and the producer's error.
// Complexity: O(len(dst)) producer calls, O(1) extra space.
func fillSlots[T any](dst []T, produce func(int) (T, error), release func(int, T)) (int, error) {
	built := 0
	if release != nil {
		defer releasePrefix(dst, &built, release)
	}

	for i := range dst {
		v, err := produce(i)
		if err != nil {
			return i, err
		}
		dst[i] = v
		built++
	}

	return built, nil
}

// fillAll is fillSlots for infallible producers: the only way out before the
// last slot is a panic or runtime.Goexit, so there is nothing to return.
func fillAll[T any](dst []T, produce func(int) T, release func(int, T)) {
	built := 0
	if release != nil {
		defer releasePrefix(dst, &built, release)
	}

	for i := range dst {
		dst[i] = produce(i)
		built++
	}
}

// releasePrefix hands dst[*built-1], …, dst[0] to release unless every slot
// was built. Runs deferred, so it sees the final value of *built.
func releasePrefix[T any](dst []T, built *int, release func(int, T)) {
	if *built == len(dst) {
		return
	}
	for i := *built - 1; i >= 0; i-- {
		release(i, dst[i])
	}
}

// infallible adapts an infallible producer to the (T, error) shape used by
// buildArray; its failures are panics and pass through untouched.
func infallible[T any](produce func(int) T) func(int) (T, error) {
	return func(i int) (T, error) {
		return produce(i), nil
	}
}
