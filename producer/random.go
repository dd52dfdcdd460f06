// Package producer provides seeded random producers.
//
// Each producer owns no state of its own: it draws from the *rand.Rand it was
// given. Because the arr builders call producers strictly in index order, a
// build with a freshly seeded source is reproducible.
package producer

import (
	"fmt"
	"math"
	"math/rand"
)

// Seeded returns a new deterministic *rand.Rand for the given seed.
func Seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Uniform returns a producer sampling uniformly in [min, max).
// min == max yields min for every index.
// Panics if rng is nil or max < min.
// Complexity: O(1) per call.
func Uniform(rng *rand.Rand, min, max float64) func(idx int) float64 {
	if rng == nil {
		panic("producer: Uniform(nil rng)")
	}
	if max < min {
		panic(fmt.Sprintf("Uniform: require min ≤ max, got min=%g, max=%g", min, max))
	}
	span := max - min

	return func(int) float64 {
		if span == 0 {
			// Degenerate interval: constant
			return min
		}
		return min + rng.Float64()*span
	}
}

// Normal returns a producer sampling from N(mean, stddev).
// Panics if rng is nil or stddev < 0 or either parameter is NaN.
func Normal(rng *rand.Rand, mean, stddev float64) func(idx int) float64 {
	if rng == nil {
		panic("producer: Normal(nil rng)")
	}
	if stddev < 0 || math.IsNaN(stddev) || math.IsNaN(mean) {
		panic(fmt.Sprintf("Normal: stddev must be ≥ 0, got mean=%g, stddev=%g", mean, stddev))
	}

	return func(int) float64 {
		return rng.NormFloat64()*stddev + mean
	}
}

// Exponential returns a producer sampling from an exponential distribution
// with rate λ, i.e. PDF λ e^(−λx), mean 1/λ.
// Panics if rng is nil or rate ≤ 0.
func Exponential(rng *rand.Rand, rate float64) func(idx int) float64 {
	if rng == nil {
		panic("producer: Exponential(nil rng)")
	}
	if !(rate > 0) {
		panic(fmt.Sprintf("Exponential: rate must be > 0, got %f", rate))
	}

	return func(int) float64 {
		// ExpFloat64 has rate 1; dividing rescales to the requested rate.
		return rng.ExpFloat64() / rate
	}
}
