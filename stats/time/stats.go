// Package time computes time-domain metrics of impulse and step responses.
package time

import (
	"math"

	"github.com/tphakala/simd/f64"
)

// DefaultSettlingBand is the relative tolerance used for the settling index.
const DefaultSettlingBand = 0.02

// StepMetrics describes a step response relative to its final value.
type StepMetrics struct {
	Final        float64
	Peak         float64 // extreme value in the direction of Final
	PeakIndex    int
	OvershootPct float64 // (Peak-Final)/|Final|·100, never negative
	// RiseStart and RiseEnd are the first samples reaching 10 % and 90 % of
	// Final, or -1.
	RiseStart int
	RiseEnd   int
	// SettlingIndex is the first sample from which the response stays
	// within band·|Final| of Final, or -1.
	SettlingIndex int
}

// Step computes StepMetrics. An empty or zero-final response reports -1 for
// all indices.
func Step(step []float64, band float64) StepMetrics {
	m := StepMetrics{PeakIndex: -1, RiseStart: -1, RiseEnd: -1, SettlingIndex: -1}
	if len(step) == 0 {
		return m
	}

	m.Final = step[len(step)-1]
	if m.Final == 0 {
		return m
	}

	// Work on the response flipped so that Final is positive.
	sign := math.Copysign(1, m.Final)
	final := math.Abs(m.Final)

	peak := math.Inf(-1)
	for i, x := range step {
		y := sign * x
		if y > peak {
			peak, m.PeakIndex = y, i
		}
		if m.RiseStart < 0 && y >= 0.1*final {
			m.RiseStart = i
		}
		if m.RiseEnd < 0 && y >= 0.9*final {
			m.RiseEnd = i
		}
	}
	m.Peak = sign * peak
	m.OvershootPct = math.Max(0, (peak-final)/final*100)

	tol := band * final
	m.SettlingIndex = len(step) - 1
	for i := len(step) - 1; i >= 0 && math.Abs(sign*step[i]-final) <= tol; i-- {
		m.SettlingIndex = i
	}
	return m
}

// Energy returns the sum of squares.
func Energy(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return f64.DotProduct(signal, signal)
}

// RMS returns the root mean square, or 0 for an empty signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(Energy(signal) / float64(len(signal)))
}

// Peak returns the sample with the largest magnitude and its index, or
// (0, -1) for an empty signal.
func Peak(signal []float64) (float64, int) {
	pos := -1
	best := math.Inf(-1)
	for i, x := range signal {
		if a := math.Abs(x); a > best {
			best, pos = a, i
		}
	}
	if pos < 0 {
		return 0, -1
	}
	return signal[pos], pos
}

// ZeroCrossings counts sign changes between consecutive samples. Exact zeros
// do not count.
func ZeroCrossings(signal []float64) int {
	count := 0
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}
	return count
}
