package adaptive

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-filterlab/dsp/core"
)

// nlmsEpsilon guards the NLMS normalisation against a silent reference.
const nlmsEpsilon = 1e-6

// rlsGain is the fixed step of the simplified RLS update.
const rlsGain = 0.5

// Filter is a transversal filter with adaptable weights over a
// most-recent-first reference history.
type Filter struct {
	weights []float64
	history []float64
	scratch []float64
}

// NewFilter returns a zero-weight filter with the given number of taps.
func NewFilter(taps int) *Filter {
	return &Filter{
		weights: make([]float64, taps),
		history: make([]float64, taps),
		scratch: make([]float64, taps),
	}
}

// Push adds the newest reference sample and drops the oldest.
func (f *Filter) Push(x float64) {
	core.PushFront(f.history, x)
}

// Output returns the dot product of the weights and the history.
func (f *Filter) Output() float64 {
	return f64.DotProduct(f.weights, f.history)
}

// Power returns the energy of the history.
func (f *Filter) Power() float64 {
	return f64.DotProduct(f.history, f.history)
}

// Adapt applies w[i] += gain·e·x[i].
func (f *Filter) Adapt(gain, e float64) {
	vecmath.ScaleBlock(f.scratch, f.history, gain*e)
	vecmath.AddBlockInPlace(f.weights, f.scratch)
}

// Gain returns the per-step gain of the gradient algorithm a at the current
// history. Non-gradient algorithms have zero gain.
func (f *Filter) Gain(a Algorithm, mu float64) float64 {
	switch a {
	case LMS:
		return 2 * mu
	case NLMS:
		return mu / (f.Power() + nlmsEpsilon)
	case RLS:
		return rlsGain
	default:
		return 0
	}
}

// WeightNorm returns the Euclidean norm of the weights.
func (f *Filter) WeightNorm() float64 {
	return floats.Norm(f.weights, 2)
}

// Weights returns a copy of the weights.
func (f *Filter) Weights() []float64 {
	return append([]float64(nil), f.weights...)
}

// History returns a copy of the reference history, newest first.
func (f *Filter) History() []float64 {
	return append([]float64(nil), f.history...)
}

// Reset zeroes weights and history.
func (f *Filter) Reset() {
	core.Zero(f.weights)
	core.Zero(f.history)
}
