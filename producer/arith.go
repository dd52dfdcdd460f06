// SPDX-License-Identifier: MIT
// Package: arrinit/producer
//
// arith.go — pure arithmetic producers over numeric types.

package producer

import (
	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Identity returns idx converted to N: 0, 1, 2, …
func Identity[N Number](idx int) N {
	return N(idx)
}

// Step returns a producer of the arithmetic progression start + idx·step.
// Complexity: O(1) per call.
func Step[N Number](start, step N) func(idx int) N {
	return func(idx int) N {
		return start + N(idx)*step
	}
}

// Scale returns a producer of idx·k, e.g. Scale(2) → 0, 2, 4, 6.
func Scale[N Number](k N) func(idx int) N {
	return Step(N(0), k)
}

// Constant returns a producer yielding v for every index. For pointer, slice
// or map types every slot shares the same referent; use a constructor
// producer when distinct values are needed.
func Constant[T any](v T) func(idx int) T {
	return func(int) T {
		return v
	}
}

// Cycle returns a producer repeating vals in order: vals[idx % len(vals)].
// vals is copied, so later changes by the caller have no effect.
// Panics if vals is empty; the returned producer panics if idx < 0.
func Cycle[T any](vals ...T) func(idx int) T {
	if len(vals) == 0 {
		panic("producer: Cycle() needs at least one value")
	}
	ring := make([]T, len(vals))
	copy(ring, vals)

	return func(idx int) T {
		return ring[idx%len(ring)]
	}
}

// Infallible lifts an infallible producer to the (T, error) shape expected by
// arr.TryBuild, arr.TryMake and arr.TryFill. The error is always nil.
// Panics on nil.
func Infallible[T any](f func(idx int) T) func(idx int) (T, error) {
	if f == nil {
		panic("producer: Infallible(nil)")
	}

	return func(idx int) (T, error) {
		return f(idx), nil
	}
}
