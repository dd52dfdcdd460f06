// SPDX-License-Identifier: MIT
// Package: arrinit/arr
//
// errors.go — sentinel errors for the arr package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Context (method name, failing index) is attached with %w wrapping.
//   • A producer error is wrapped together with ErrProducerFailed, so both
//     errors.Is(err, ErrProducerFailed) and errors.Is(err, cause) hold.

package arr

import (
	"errors"
	"fmt"
)

// ErrNegativeLength indicates a requested length below zero.
// Typical origins: Build / TryBuild with n < 0.
var ErrNegativeLength = errors.New("arr: negative length")

// ErrNilProducer indicates a nil producer for a non-empty build.
// A nil producer with length zero is accepted (it is never called).
var ErrNilProducer = errors.New("arr: nil producer")

// ErrNilDestination indicates a nil destination pointer passed to Fill / TryFill.
var ErrNilDestination = errors.New("arr: nil destination")

// ErrNotArray indicates that the type argument of Make / Fill is not an array
// type, so the length cannot be resolved from it.
var ErrNotArray = errors.New("arr: type is not an array")

// ErrElemMismatch indicates that the array element type differs from the
// producer's result type (e.g. [4]MyInt with a func(int) int producer).
var ErrElemMismatch = errors.New("arr: array element type mismatch")

// ErrProducerFailed indicates that the producer returned an error (Try* forms).
// The producer's own error is wrapped alongside and remains reachable.
// Usage: if errors.Is(err, ErrProducerFailed) { /* inspect errors.Unwrap chain */ }.
var ErrProducerFailed = errors.New("arr: producer failed")

// arrErrorf prefixes a sentinel with the method context:
// "<Method>: <sentinel>" or "<Method>: <detail>: <sentinel>".
func arrErrorf(method string, sentinel error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, sentinel)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// producerError wraps a producer failure at idx with both ErrProducerFailed
// and the cause, e.g. "TryBuild: index 3: arr: producer failed: disk full".
func producerError(method string, idx int, cause error) error {
	return fmt.Errorf("%s: index %d: %w: %w", method, idx, ErrProducerFailed, cause)
}
