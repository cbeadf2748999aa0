package adaptive

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultConvergenceTolerance bounds |error| after convergence in Summarize.
const DefaultConvergenceTolerance = 0.25

// Summary condenses a trace.
type Summary struct {
	MSE             float64
	MeanAbsError    float64
	FinalWeightNorm float64
	// ConvergedAt is the first step from which |error| never exceeds the
	// tolerance again, or -1.
	ConvergedAt int
}

// Summarize computes a Summary of t. An empty trace yields ConvergedAt -1
// and zero statistics.
func Summarize(t Trace, tolerance float64) Summary {
	sum := Summary{ConvergedAt: -1}
	if len(t) == 0 {
		return sum
	}

	abs := make([]float64, len(t))
	for i, r := range t {
		abs[i] = math.Abs(r.Error)
	}
	sum.MSE = stat.Mean(sq(t), nil)
	sum.MeanAbsError = stat.Mean(abs, nil)
	sum.FinalWeightNorm = t[len(t)-1].WeightNorm

	for i := len(abs) - 1; i >= 0 && abs[i] <= tolerance; i-- {
		sum.ConvergedAt = i
	}
	return sum
}

// ErrorPower returns the mean squared error over records [from, to).
func ErrorPower(t Trace, from, to int) float64 {
	from = max(from, 0)
	to = min(to, len(t))
	if from >= to {
		return 0
	}
	return stat.Mean(sq(t[from:to]), nil)
}

func sq(t Trace) []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.Error * r.Error
	}
	return out
}
