package sweep

import (
	"errors"
	"math"
)

// Errors returned by sweep functions.
var (
	ErrInvalidFrequency = errors.New("sweep: frequency must be positive")
	ErrInvalidPoints    = errors.New("sweep: at least two points are required")
)

// LogSweep describes a set of logarithmically spaced frequencies.
//
// Each decade receives the same number of points:
//
//	f(i) = StartFreq * (EndFreq/StartFreq)^(i/(Points-1))
type LogSweep struct {
	StartFreq float64 // first frequency in Hz
	EndFreq   float64 // last frequency in Hz
	Points    int     // number of frequencies
}

// Validate checks that the LogSweep parameters are valid.
func (s LogSweep) Validate() error {
	if !(s.StartFreq > 0) || !(s.EndFreq > 0) {
		return ErrInvalidFrequency
	}
	if s.Points < 2 {
		return ErrInvalidPoints
	}
	return nil
}

// Frequencies returns the swept frequencies. The first and last entries are
// exactly StartFreq and EndFreq.
func (s LogSweep) Frequencies() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	ratio := s.EndFreq / s.StartFreq
	last := float64(s.Points - 1)

	out := make([]float64, s.Points)
	for i := range out {
		out[i] = s.StartFreq * math.Pow(ratio, float64(i)/last)
	}
	out[len(out)-1] = s.EndFreq
	return out, nil
}

// LogFrequencies returns n log-spaced frequencies from fMin to fMax.
func LogFrequencies(fMin, fMax float64, n int) ([]float64, error) {
	return LogSweep{StartFreq: fMin, EndFreq: fMax, Points: n}.Frequencies()
}
