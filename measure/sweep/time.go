package sweep

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SyntheticImpulse renders the decaying oscillation shown as the time
// response of analog and IIR specifications:
//
//	h[i] = exp(-i/(2·order)) · sin(2π·i·cutoff/sampleRate)
//
// It illustrates ringing and decay and is not the impulse response of the
// analytic magnitude model.
func SyntheticImpulse(cutoffHz, sampleRateHz float64, order, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	decay := 2 * float64(order)
	w := 2 * math.Pi * cutoffHz / sampleRateHz
	for i := range out {
		x := float64(i)
		out[i] = math.Exp(-x/decay) * math.Sin(w*x)
	}
	return out
}

// StepResponse returns the running sum of impulse truncated to at most limit
// samples.
func StepResponse(impulse []float64, limit int) []float64 {
	n := min(len(impulse), limit)
	if n <= 0 {
		return nil
	}
	return floats.CumSum(make([]float64, n), impulse[:n])
}
