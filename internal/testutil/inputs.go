package testutil

import "math/rand"

// Impulse returns n zeros with a 1 at index at. An out-of-range index
// yields all zeros.
func Impulse(n, at int) []float64 {
	out := make([]float64, n)
	if at >= 0 && at < n {
		out[at] = 1
	}
	return out
}

// Ones returns a unit step of n samples.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// SeededRand is a reproducible rand source for simulations under test.
func SeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
