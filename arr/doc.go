// Package arr constructs fixed-length containers by invoking a producer once
// per index, in strictly ascending order, and never for an index twice.
//
// The package offers the following key components:
//
//   - Runtime-length builders:
//     – Build:    n slots, producer func(int) T, failure is a panic.
//     – TryBuild: n slots, producer func(int) (T, error), failure is an error.
//   - Type-length builders (the array type carries the length):
//     – Make / TryMake: length from the type argument, e.g. Make[[4]int](f).
//     – Fill / TryFill: length inferred from the destination, e.g. Fill(&a, f).
//   - Explicit list:
//     – Of: copies the given values in order; no producer involved.
//   - Configuration primitives:
//     – Option:      a function that mutates config before the build starts.
//     – WithRelease: hook receiving already-built elements when a build fails.
//
// Guarantees:
//
//   - Exactly-once, in-order: producer(0), producer(1), …, producer(n-1); each
//     call returns before the next one starts. A producer may therefore mutate
//     captured state without any locking.
//   - Zero length never calls the producer and returns an empty container.
//   - All-or-nothing: a failing producer (error or panic) at index k stops the
//     build; indices k+1.. are never requested and no container is returned.
//     Elements 0..k-1 are handed to the release hook in reverse order (k-1
//     first) before the failure propagates.
//   - Fill writes *dst only once every slot has been produced.
//
// Usage:
//
//	import "github.com/katalvlaran/arrinit/arr"
//
//	evens := arr.Build(4, func(i int) int { return i * 2 })   // []int{0, 2, 4, 6}
//	quad := arr.Make[[4]int](func(i int) int { return i * i }) // [4]int{0, 1, 4, 9}
//
//	var names [3]string
//	arr.Fill(&names, func(i int) string { return "s" + strconv.Itoa(i) })
//
//	files, err := arr.TryBuild(len(paths), func(i int) (*os.File, error) {
//		return os.Open(paths[i])
//	}, arr.WithRelease(func(_ int, f *os.File) { _ = f.Close() }))
//	if errors.Is(err, arr.ErrProducerFailed) {
//		// every file opened before the failing one is already closed
//	}
//
// Performance:
//
//   - Time:   O(n) producer calls, no other per-element work.
//   - Memory: one allocation of n elements (Build/TryBuild); Make/Fill build
//     into a stack-or-heap value of the array type chosen by the compiler.
//
// See example_test.go for runnable examples.
package arr
