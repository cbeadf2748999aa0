package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterPushKeepsNewestFirst(t *testing.T) {
	f := NewFilter(3)
	for _, x := range []float64{1, 2, 3, 4} {
		f.Push(x)
	}
	assert.Equal(t, []float64{4, 3, 2}, f.History())
	assert.InDelta(t, 29.0, f.Power(), 1e-12)
}

func TestFilterAdaptAndOutput(t *testing.T) {
	f := NewFilter(4)
	f.Push(1)
	f.Push(2)

	f.Adapt(0.5, 2) // w += 1·x
	assert.Equal(t, []float64{2, 1, 0, 0}, f.Weights())
	assert.InDelta(t, 5.0, f.Output(), 1e-12)
	assert.InDelta(t, 2.2360679775, f.WeightNorm(), 1e-9)

	f.Reset()
	assert.Equal(t, []float64{0, 0, 0, 0}, f.Weights())
	assert.Equal(t, 0.0, f.Output())
}

func TestFilterGain(t *testing.T) {
	f := NewFilter(2)
	f.Push(3)
	f.Push(4)

	assert.InDelta(t, 0.2, f.Gain(LMS, 0.1), 1e-15)
	assert.InDelta(t, 0.1/(25+nlmsEpsilon), f.Gain(NLMS, 0.1), 1e-15)
	assert.Equal(t, rlsGain, f.Gain(RLS, 0.1))
	assert.Equal(t, 0.0, f.Gain(Kalman, 0.1))

	// Silent reference stays finite.
	assert.InDelta(t, 0.1/nlmsEpsilon, NewFilter(2).Gain(NLMS, 0.1), 1e-6)
}

func TestScalarKalmanConvergesToConstant(t *testing.T) {
	k := NewScalarKalman(KalmanProcessNoise, KalmanMeasurementNoise)
	assert.Equal(t, 1.0, k.Covariance())

	for range 100 {
		k.Update(3)
	}
	assert.InDelta(t, 3.0, k.Estimate(), 1e-9)
	// Steady-state covariance solves p = (p+q)r/(p+q+r).
	p := k.Covariance()
	assert.InDelta(t, p, (p+0.1)*0.5/(p+0.1+0.5), 1e-12)
}
