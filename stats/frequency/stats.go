// Package frequency computes metrics of a sampled magnitude response.
//
// Frequencies need not be evenly spaced, so the same functions serve the
// log-spaced response tables and linear FFT bins.
package frequency

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-filterlab/dsp/core"
)

// HalfPowerDB is the level of the half-power (-3 dB) points.
const HalfPowerDB = -3.010299956639812

// DefaultRolloffFraction is the energy fraction used by Calculate.
const DefaultRolloffFraction = 0.85

// ErrLengthMismatch is returned when the frequency and magnitude slices
// differ in length or are empty.
var ErrLengthMismatch = errors.New("frequency: frequency and magnitude lengths differ")

// Stats holds metrics of a magnitude response (linear scale, NOT dB).
//
//nolint:revive
type Stats struct {
	Points        int
	Peak          float64
	Peak_dB       float64
	PeakFrequency float64
	Min           float64
	Min_dB        float64
	MinFrequency  float64
	// LowerEdge and UpperEdge are the half-power frequencies either side of
	// the peak, or 0 where the response stays above half power.
	LowerEdge float64
	UpperEdge float64
	Centroid  float64 // magnitude-weighted mean frequency
	Rolloff   float64 // frequency below which 85 % of the energy lies
}

// Calculate computes all metrics of the response magnitude(freqs).
func Calculate(freqs, magnitude []float64) (Stats, error) {
	n := len(magnitude)
	if n == 0 || len(freqs) != n {
		return Stats{}, ErrLengthMismatch
	}

	s := Stats{Points: n}
	peakBin, minBin := 0, 0
	for i, v := range magnitude {
		if v > magnitude[peakBin] {
			peakBin = i
		}
		if v < magnitude[minBin] {
			minBin = i
		}
	}
	s.Peak, s.PeakFrequency, s.Peak_dB = magnitude[peakBin], freqs[peakBin], core.LinearToDB(magnitude[peakBin])
	s.Min, s.MinFrequency, s.Min_dB = magnitude[minBin], freqs[minBin], core.LinearToDB(magnitude[minBin])

	s.LowerEdge, s.UpperEdge = edges(freqs, magnitude, peakBin, HalfPowerDB)
	s.Centroid = Centroid(freqs, magnitude)
	s.Rolloff = Rolloff(freqs, magnitude, DefaultRolloffFraction)
	return s, nil
}

// Edges returns the frequencies either side of the peak where the response
// falls levelDB (negative) below it, or 0 where it never does.
func Edges(freqs, magnitude []float64, levelDB float64) (lower, upper float64) {
	if len(magnitude) == 0 || len(freqs) != len(magnitude) {
		return 0, 0
	}
	peakBin := 0
	for i, v := range magnitude {
		if v > magnitude[peakBin] {
			peakBin = i
		}
	}
	return edges(freqs, magnitude, peakBin, levelDB)
}

func edges(freqs, magnitude []float64, peakBin int, levelDB float64) (lower, upper float64) {
	peak := magnitude[peakBin]
	if peak <= 0 {
		return 0, 0
	}
	threshold := peak * math.Pow(10, levelDB/20)

	for i := peakBin; i >= 1; i-- {
		if magnitude[i-1] <= threshold && magnitude[i] > threshold {
			lower = interpFreq(freqs[i-1], freqs[i], magnitude[i-1], magnitude[i], threshold)
			break
		}
	}
	for i := peakBin; i < len(magnitude)-1; i++ {
		if magnitude[i] > threshold && magnitude[i+1] <= threshold {
			upper = interpFreq(freqs[i], freqs[i+1], magnitude[i], magnitude[i+1], threshold)
			break
		}
	}
	return lower, upper
}

// interpFreq finds where the magnitude crosses threshold between two
// points, interpolating geometrically in frequency when both are positive.
func interpFreq(f0, f1, m0, m1, threshold float64) float64 {
	if m1 == m0 {
		return f0
	}
	t := (threshold - m0) / (m1 - m0)
	if f0 > 0 && f1 > 0 {
		return f0 * math.Pow(f1/f0, t)
	}
	return f0 + t*(f1-f0)
}

// Centroid returns Σf·m / Σm, or 0 for a silent response.
func Centroid(freqs, magnitude []float64) float64 {
	var num, den float64
	for i, m := range magnitude {
		num += freqs[i] * m
		den += m
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// Rolloff returns the first frequency at which the cumulative energy
// (sum of squared magnitudes) reaches fraction of the total.
func Rolloff(freqs, magnitude []float64, fraction float64) float64 {
	total := 0.0
	for _, m := range magnitude {
		total += m * m
	}
	if total == 0 {
		return 0
	}

	threshold := fraction * total
	cum := 0.0
	for i, m := range magnitude {
		cum += m * m
		if cum >= threshold {
			return freqs[i]
		}
	}
	return freqs[len(freqs)-1]
}
