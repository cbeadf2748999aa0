package frequency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func butterworth(freqs []float64, cutoff float64, order int) []float64 {
	mag := make([]float64, len(freqs))
	for i, f := range freqs {
		mag[i] = 1 / math.Sqrt(1+math.Pow(f/cutoff, float64(2*order)))
	}
	return mag
}

func logGrid(fMin, fMax float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = fMin * math.Pow(fMax/fMin, float64(i)/float64(n-1))
	}
	return out
}

func TestCalculateLowpass(t *testing.T) {
	freqs := logGrid(10, 10000, 128)
	mag := butterworth(freqs, 1000, 4)

	s, err := Calculate(freqs, mag)
	require.NoError(t, err)

	assert.Equal(t, 128, s.Points)
	assert.InDelta(t, 10.0, s.PeakFrequency, 1e-12)
	assert.InDelta(t, 0.0, s.Peak_dB, 1e-6)
	assert.InDelta(t, 10000.0, s.MinFrequency, 1e-6)
	assert.InDelta(t, -80.0, s.Min_dB, 1e-3)
	assert.Equal(t, 0.0, s.LowerEdge)
	assert.InDelta(t, 1000.0, s.UpperEdge, 5)
	assert.Greater(t, s.Centroid, 10.0)
	assert.Less(t, s.Rolloff, 1000.0)
}

func TestEdgesHighpass(t *testing.T) {
	freqs := logGrid(10, 24000, 256)
	mag := make([]float64, len(freqs))
	for i, f := range freqs {
		mag[i] = 1 / math.Sqrt(1+math.Pow(500/f, 4))
	}

	lower, upper := Edges(freqs, mag, HalfPowerDB)
	assert.InDelta(t, 500.0, lower, 3)
	assert.Equal(t, 0.0, upper)
}

func TestEdgesLinearBinsFromDC(t *testing.T) {
	// Linear interpolation is used next to the 0 Hz bin, geometric elsewhere.
	freqs := []float64{0, 100, 200}
	mag := []float64{0, 1, 0}
	lower, upper := Edges(freqs, mag, HalfPowerDB)
	assert.InDelta(t, 100/math.Sqrt2, lower, 1e-9)
	assert.InDelta(t, 100*math.Pow(2, 1-1/math.Sqrt2), upper, 1e-9)
}

func TestCalculateErrors(t *testing.T) {
	_, err := Calculate(nil, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = Calculate([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSilentResponse(t *testing.T) {
	freqs := []float64{1, 2, 3}
	s, err := Calculate(freqs, []float64{0, 0, 0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(s.Peak_dB, -1))
	assert.Equal(t, 0.0, s.Centroid)
	assert.Equal(t, 0.0, s.Rolloff)
	assert.Equal(t, 0.0, s.UpperEdge)
}

func TestCentroidAndRolloff(t *testing.T) {
	freqs := []float64{100, 200, 300, 400}
	mag := []float64{1, 1, 1, 1}
	assert.InDelta(t, 250.0, Centroid(freqs, mag), 1e-12)
	assert.Equal(t, 400.0, Rolloff(freqs, mag, 0.85))
	assert.Equal(t, 200.0, Rolloff(freqs, mag, 0.5))
}
