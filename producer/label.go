// SPDX-License-Identifier: MIT
// Package: arrinit/producer
//
// label.go — index labels for string-keyed containers.
//
// Labels are generic over the result type (any ~string), so a defined key
// type such as `type SKU string` can be built directly with arr.Make[[N]SKU].

package producer

import (
	"fmt"
	"strconv"
	"strings"
)

// Label is a producer of string-like values.
type Label[S ~string] func(idx int) S

const (
	// alphabet is the size of the column alphabet A..Z.
	alphabet = 26
	// columnDigits is enough bijective base-26 digits for any non-negative int.
	columnDigits = 14
)

// ExcelColumn names index idx the way spreadsheets name columns:
// 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA".
// Complexity: O(log₂₆ idx), one allocation.
// Panics if idx < 0.
func ExcelColumn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("producer: ExcelColumn(%d): negative index", idx))
	}

	// bijective base-26: digits are 1..26, so shift by one before each step
	var buf [columnDigits]byte
	pos := len(buf)
	for n := uint(idx) + 1; n > 0; n = (n - 1) / alphabet {
		pos--
		buf[pos] = byte('A' + (n-1)%alphabet)
	}

	return string(buf[pos:])
}

// Prefixed returns a Label yielding prefix followed by the decimal index:
// Prefixed("s") → "s0", "s1", … Every call builds a fresh string.
// The returned Label panics if idx < 0.
func Prefixed[S ~string](prefix S) Label[S] {
	return func(idx int) S {
		if idx < 0 {
			panic(fmt.Sprintf("producer: Prefixed(%q): negative index %d", string(prefix), idx))
		}
		return prefix + S(strconv.Itoa(idx))
	}
}

// PrefixedWidth is Prefixed with the index zero-padded to exactly width
// digits: PrefixedWidth("id", 3) → "id000", "id001", … All labels of a build
// then share one length and sort in index order.
//
// Panics if width < 1. The returned Label panics if idx < 0 or if idx needs
// more than width digits; pick width from the length you pass to arr.Build.
func PrefixedWidth[S ~string](prefix S, width int) Label[S] {
	if width < 1 {
		panic(fmt.Sprintf("producer: PrefixedWidth(%q, %d): width must be ≥ 1", string(prefix), width))
	}

	return func(idx int) S {
		if idx < 0 {
			panic(fmt.Sprintf("producer: PrefixedWidth(%q): negative index %d", string(prefix), idx))
		}
		digits := strconv.Itoa(idx)
		if len(digits) > width {
			panic(fmt.Sprintf("producer: PrefixedWidth(%q, %d): index %d does not fit", string(prefix), width, idx))
		}
		return prefix + S(strings.Repeat("0", width-len(digits))+digits)
	}
}
