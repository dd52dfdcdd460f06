// SPDX-License-Identifier: MIT
// Package: arrinit/arr
//
// api.go — public entry points. Implementations live in impl_*.go.
//
// Design contract:
//   • Every builder calls the producer for 0..n-1, ascending, exactly once.
//   • Try* forms never panic on their own: invalid input and producer errors
//     come back as sentinel-wrapped errors. Producer panics still propagate.
//   • Build / Make / Fill mirror make() and array conversion: invalid input
//     panics with a sentinel-wrapped error value (recover() yields an error
//     usable with errors.Is).
//   • Options resolve into a per-call config; no global state.

package arr

// Build returns a slice of exactly n elements where element i is produce(i).
// produce is invoked for i = 0, 1, …, n-1 in that order, each call completing
// before the next begins, so it may mutate captured state freely.
//
// n == 0 returns an empty, non-nil slice without calling produce (produce may
// then be nil). A panic inside produce propagates to the caller after the
// WithRelease hook, if any, has seen the already-built elements.
//
// Panics with ErrNegativeLength if n < 0, and with ErrNilProducer if produce
// is nil and n > 0.
// Complexity: O(n) time, one allocation of n elements.
func Build[T any](n int, produce func(int) T, opts ...Option[T]) []T {
	if err := validateLength(MethodBuild, n); err != nil {
		panic(err)
	}
	if err := validateProducer(MethodBuild, n, produce != nil); err != nil {
		panic(err)
	}

	out := make([]T, n)
	fillAll(out, produce, newConfig(opts...).release)

	return out
}

// TryBuild is Build for producers that report failure as an error.
//
// If produce(k) returns a non-nil error, no index after k is requested, the
// WithRelease hook receives elements k-1..0, and TryBuild returns a nil slice
// with an error matching both ErrProducerFailed and the producer's error:
//
//	"TryBuild: index 2: arr: producer failed: <cause>"
//
// Returns ErrNegativeLength for n < 0 and ErrNilProducer for a nil produce
// with n > 0, without calling anything.
// Complexity: O(n) time, one allocation of n elements.
func TryBuild[T any](n int, produce func(int) (T, error), opts ...Option[T]) ([]T, error) {
	if err := validateLength(MethodTryBuild, n); err != nil {
		return nil, err
	}
	if err := validateProducer(MethodTryBuild, n, produce != nil); err != nil {
		return nil, err
	}

	out := make([]T, n)
	if k, err := fillSlots(out, produce, newConfig(opts...).release); err != nil {
		return nil, producerError(MethodTryBuild, k, err)
	}

	return out, nil
}

// Make returns an array of type A whose length is fixed by A itself:
//
//	squares := arr.Make[[4]int](func(i int) int { return i * i }) // [0 1 4 9]
//
// A must be an array type with element type exactly T; otherwise Make panics
// with ErrNotArray or ErrElemMismatch before calling produce. "Exactly" means
// identical, not assignable: Make[[2]fmt.Stringer] needs a producer declared
// as func(int) fmt.Stringer, and one returning a concrete type that
// implements fmt.Stringer is rejected. Same for [N]MyInt with func(int) int.
// Ordering, zero-length, release and panic semantics are those of Build.
// Complexity: O(len(A)) time.
func Make[A any, T any](produce func(int) T, opts ...Option[T]) A {
	a, err := buildArray[A](MethodMake, infallible(produce), produce != nil, newConfig(opts...))
	if err != nil {
		panic(err)
	}

	return a
}

// TryMake is Make for fallible producers. On any failure it returns the zero A
// and an error; see TryBuild for the producer-error format.
func TryMake[A any, T any](produce func(int) (T, error), opts ...Option[T]) (A, error) {
	return buildArray[A](MethodTryMake, produce, produce != nil, newConfig(opts...))
}

// Fill populates *dst, inferring the length from dst's array type:
//
//	var labels [3]string
//	arr.Fill(&labels, producer.Prefixed("s")) // ["s0" "s1" "s2"]
//
// The elements are built into a fresh array and assigned to *dst only after
// the last one is produced; if produce panics, *dst keeps its old contents.
// Panics with ErrNilDestination on a nil dst, otherwise as Make does,
// including the exact element-type rule.
func Fill[A any, T any](dst *A, produce func(int) T, opts ...Option[T]) {
	if dst == nil {
		panic(arrErrorf(MethodFill, ErrNilDestination, ""))
	}

	a, err := buildArray[A](MethodFill, infallible(produce), produce != nil, newConfig(opts...))
	if err != nil {
		panic(err)
	}
	*dst = a
}

// TryFill is Fill for fallible producers. On any failure *dst is left
// untouched and the error is returned.
func TryFill[A any, T any](dst *A, produce func(int) (T, error), opts ...Option[T]) error {
	if dst == nil {
		return arrErrorf(MethodTryFill, ErrNilDestination, "")
	}

	a, err := buildArray[A](MethodTryFill, produce, produce != nil, newConfig(opts...))
	if err != nil {
		return err
	}
	*dst = a

	return nil
}

// Of returns a new slice holding vals in the given order. It is the explicit
// value-list form: no producer is involved and the result equals the literal
// []T{vals...}. The result never aliases a slice passed as Of(s...).
// Complexity: O(len(vals)).
func Of[T any](vals ...T) []T {
	out := make([]T, len(vals))
	copy(out, vals)

	return out
}
