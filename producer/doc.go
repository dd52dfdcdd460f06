// Package producer provides ready-made index producers for the arr builders.
// Every producer has the shape func(idx int) T and can be passed directly to
// arr.Build, arr.Make or arr.Fill.
//
// The package offers the following key components:
//
//   - Index labels (generic over any ~string result):
//     – ExcelColumn:   spreadsheet columns ("A","Z","AA",…).
//     – Prefixed:      prefix + decimal ("s0","s1",…).
//     – PrefixedWidth: prefix + zero-padded decimal ("id00","id01",…).
//   - Arithmetic:
//     – Identity, Step(start, step), Scale(k), Constant(v), Cycle(vals...).
//   - Seeded random draws (closing over a caller-owned *rand.Rand):
//     – Uniform ∼U[min,max), Normal ∼N(mean,stddev), Exponential ∼Exp(rate).
//   - Adapters:
//     – Infallible: lifts func(int) T to func(int) (T, error) for the Try* builders.
//
// Guarantees:
//
//   - Labels and arithmetic producers are pure: same idx ⇒ same value.
//   - Random producers are deterministic for a given seed because the arr
//     builders call them sequentially, in index order.
//   - Fast-fail on meaningless constructor arguments via panics.
package producer
