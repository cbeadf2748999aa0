package time

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepFirstOrder(t *testing.T) {
	// 1 - 0.5^(n+1): no overshoot.
	step := make([]float64, 40)
	for i := range step {
		step[i] = 1 - math.Pow(0.5, float64(i+1))
	}

	m := Step(step, DefaultSettlingBand)
	assert.InDelta(t, 1.0, m.Final, 1e-9)
	assert.Equal(t, 0.0, m.OvershootPct)
	assert.Equal(t, 0, m.RiseStart)
	assert.Equal(t, 3, m.RiseEnd)
	assert.Equal(t, 5, m.SettlingIndex)
	assert.Equal(t, 39, m.PeakIndex)
}

func TestStepOvershoot(t *testing.T) {
	step := []float64{0, 0.5, 1.2, 0.95, 1.01, 1, 1}
	m := Step(step, DefaultSettlingBand)

	assert.Equal(t, 1.2, m.Peak)
	assert.Equal(t, 2, m.PeakIndex)
	assert.InDelta(t, 20.0, m.OvershootPct, 1e-9)
	assert.Equal(t, 1, m.RiseStart)
	assert.Equal(t, 2, m.RiseEnd)
	assert.Equal(t, 4, m.SettlingIndex)
}

func TestStepNegativeFinal(t *testing.T) {
	m := Step([]float64{0, -0.5, -1.1, -1}, 0.02)
	assert.Equal(t, -1.1, m.Peak)
	assert.InDelta(t, 10.0, m.OvershootPct, 1e-9)
	assert.Equal(t, 1, m.RiseStart)
	assert.Equal(t, 2, m.RiseEnd)
	assert.Equal(t, 3, m.SettlingIndex)
}

func TestStepDegenerate(t *testing.T) {
	want := StepMetrics{PeakIndex: -1, RiseStart: -1, RiseEnd: -1, SettlingIndex: -1}
	assert.Equal(t, want, Step(nil, 0.02))
	assert.Equal(t, want, Step([]float64{1, 0}, 0.02))
}

func TestEnergyRMSPeak(t *testing.T) {
	x := []float64{3, -4}
	assert.Equal(t, 25.0, Energy(x))
	assert.InDelta(t, math.Sqrt(12.5), RMS(x), 1e-12)

	v, i := Peak(x)
	assert.Equal(t, -4.0, v)
	assert.Equal(t, 1, i)

	assert.Equal(t, 0.0, RMS(nil))
	v, i = Peak(nil)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, -1, i)
}

func TestZeroCrossings(t *testing.T) {
	assert.Equal(t, 3, ZeroCrossings([]float64{1, -1, 1, -1}))
	assert.Equal(t, 0, ZeroCrossings([]float64{1, 0, -1}))
	assert.Equal(t, 0, ZeroCrossings(nil))
}
