// SPDX-License-Identifier: MIT
// Package: arrinit/arr
//
// impl_array.go — array-typed builders (Make / Fill and their Try forms).
//
// Go has no generics over array length, so the length is read from the
// array type A at run time via reflect, before the first producer call.
// A type that is not an array of exactly T is rejected; a length is never
// guessed.

package arr

import (
	"reflect"
)

// arraySlots exposes the elements of *a as a []T aliasing the array.
// Returns ErrNotArray if A is not an array type and ErrElemMismatch if its
// element type is not T.
// Complexity: O(1).
func arraySlots[A any, T any](method string, a *A) ([]T, error) {
	rv := reflect.ValueOf(a).Elem()
	if rv.Kind() != reflect.Array {
		return nil, arrErrorf(method, ErrNotArray, "%s", rv.Type())
	}

	slots, ok := rv.Slice(0, rv.Len()).Interface().([]T)
	if !ok {
		return nil, arrErrorf(method, ErrElemMismatch, "%s holds %s, producer yields %s",
			rv.Type(), rv.Type().Elem(), reflect.TypeOf((*T)(nil)).Elem())
	}

	return slots, nil
}

// buildArray resolves the length of A, validates the producer and runs the
// fill loop into a fresh A. On failure the zero A is returned together with
// the index-tagged error; the partially built value never escapes.
func buildArray[A any, T any](method string, produce func(int) (T, error), present bool, cfg config[T]) (A, error) {
	var a, zero A

	slots, err := arraySlots[A, T](method, &a)
	if err != nil {
		return zero, err
	}
	if err = validateProducer(method, len(slots), present); err != nil {
		return zero, err
	}

	if k, perr := fillSlots(slots, produce, cfg.release); perr != nil {
		return zero, producerError(method, k, perr)
	}

	return a, nil
}
