package fir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-filterlab/internal/testutil"
)

const eps = 1e-12

func TestNew(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	f := New(coeffs)
	assert.Equal(t, 2, f.Order())
	assert.Equal(t, coeffs, f.Coefficients())

	coeffs[0] = 999
	assert.Equal(t, 0.25, f.taps[0])
}

func TestProcessSample_Impulse(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	f := New(coeffs)

	out := testutil.Impulse(8, 0)
	f.ProcessBlock(out)

	testutil.RequireSliceNearlyEqual(t, out, []float64{0.25, 0.5, 0.25, 0, 0, 0, 0, 0}, eps)
}

func TestProcessSample_MovingAverage(t *testing.T) {
	f := New([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	buf := testutil.Ones(5)
	f.ProcessBlock(buf)
	testutil.RequireSliceNearlyEqual(t, buf, []float64{1.0 / 3, 2.0 / 3, 1, 1, 1}, eps)
}

func TestProcessSample_Differentiator(t *testing.T) {
	f := New([]float64{1, -1})
	buf := []float64{0, 1, 3, 6, 10}
	f.ProcessBlock(buf)
	testutil.RequireSliceNearlyEqual(t, buf, []float64{0, 1, 2, 3, 4}, eps)
}

func TestStepIsRunningSum(t *testing.T) {
	f := New([]float64{0.1, 0.2, 0.4, 0.2, 0.1})

	want := []float64{0.1, 0.3, 0.7, 0.9, 1.0, 1.0, 1.0}
	testutil.RequireSliceNearlyEqual(t, f.Step(7), want, eps)

	// Step clears earlier state.
	f.ProcessSample(5)
	testutil.RequireSliceNearlyEqual(t, f.Step(3), want[:3], eps)
	assert.Nil(t, f.Step(0))
}

func TestStepMatchesBlockOfOnes(t *testing.T) {
	f := New([]float64{0.25, 0.5, 0.25})
	buf := testutil.Ones(5)
	f.ProcessBlock(buf)
	testutil.RequireSliceNearlyEqual(t, buf, f.Step(5), eps)
}

func TestReset(t *testing.T) {
	f := New([]float64{0.5, 0.5})
	f.ProcessSample(1)
	f.ProcessSample(1)
	f.Reset()

	assert.InDelta(t, 0.5, f.ProcessSample(1), eps)
}

func TestEmptyFilter(t *testing.T) {
	f := New(nil)
	assert.Zero(t, f.ProcessSample(1))
	re, im := f.Response(100, 48000)
	assert.Zero(t, re)
	assert.Zero(t, im)
}

func TestResponse_DCGain(t *testing.T) {
	f := New([]float64{0.25, 0.5, 0.25})
	re, im := f.Response(0, 48000)
	assert.InDelta(t, 1.0, re, eps)
	assert.InDelta(t, 0.0, im, eps)
}

func TestResponse_NyquistNull(t *testing.T) {
	f := New([]float64{0.25, 0.5, 0.25})
	assert.InDelta(t, 0.0, f.Magnitude(24000, 48000), 1e-12)
}

func TestResponse_MatchesClosedForm(t *testing.T) {
	// |H(ω)| of [0.5, 0.5] is |cos(ω/2)|.
	f := New([]float64{0.5, 0.5})
	for _, hz := range []float64{0, 1000, 6000, 12000, 20000} {
		w := 2 * math.Pi * hz / 48000
		assert.InDelta(t, math.Abs(math.Cos(w/2)), f.Magnitude(hz, 48000), 1e-12, "f=%v", hz)
	}
}

func TestResponse_PhaseLinear(t *testing.T) {
	// A delayed impulse has phase -ωd.
	f := New([]float64{0, 0, 1})
	re, im := f.Response(3000, 48000)
	w := 2 * math.Pi * 3000 / 48000
	assert.InDelta(t, -2*w, math.Atan2(im, re), 1e-12)
}

func TestGroupDelay(t *testing.T) {
	assert.Equal(t, 15.0, New(make([]float64, 31)).GroupDelay())
	assert.Equal(t, 1.0, New(make([]float64, 3)).GroupDelay())
}

func TestCoefficients_IsCopy(t *testing.T) {
	f := New([]float64{1, 2, 3})
	c := f.Coefficients()
	c[0] = 99
	require.Equal(t, 1.0, f.Coefficients()[0])
}
