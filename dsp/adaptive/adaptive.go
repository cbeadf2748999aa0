package adaptive

import (
	"errors"
	"fmt"
	"strings"
)

// Taps is the length of the adaptive filter.
const Taps = 8

// ErrInvalidSpecification is wrapped by every precondition violation.
var ErrInvalidSpecification = errors.New("adaptive: invalid specification")

// Algorithm selects the estimator.
type Algorithm int

const (
	LMS Algorithm = iota
	NLMS
	RLS
	Kalman
	// AlgorithmUnknown passes the desired signal through as the error and
	// never adapts.
	AlgorithmUnknown
)

var algorithmNames = [...]string{"lms", "nlms", "rls", "kalman", "unknown"}

func (a Algorithm) String() string {
	if a >= 0 && int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return algorithmNames[AlgorithmUnknown]
}

// Gradient reports whether a adapts the filter weights.
func (a Algorithm) Gradient() bool {
	return a == LMS || a == NLMS || a == RLS
}

// ParseAlgorithm maps a name to its Algorithm. Unknown names map to
// AlgorithmUnknown.
func ParseAlgorithm(name string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lms":
		return LMS, true
	case "nlms":
		return NLMS, true
	case "rls":
		return RLS, true
	case "kalman":
		return Kalman, true
	default:
		return AlgorithmUnknown, false
	}
}

// Specification describes one simulation run.
type Specification struct {
	Algorithm Algorithm
	StepSize  float64 // μ, used by LMS and NLMS
	Steps     int
	// Skip turns the run into a no-op with an empty trace. The zero value
	// runs.
	Skip bool
}

// Validate reports the first precondition violated by s.
func (s Specification) Validate() error {
	if s.Steps < 0 {
		return fmt.Errorf("%w: step count must be non-negative, got %d", ErrInvalidSpecification, s.Steps)
	}
	if (s.Algorithm == LMS || s.Algorithm == NLMS) && !(s.StepSize > 0) {
		return fmt.Errorf("%w: %s step size must be positive, got %v",
			ErrInvalidSpecification, s.Algorithm, s.StepSize)
	}
	return nil
}

func (s Specification) String() string {
	return fmt.Sprintf("%s mu=%g steps=%d skip=%t", s.Algorithm, s.StepSize, s.Steps, s.Skip)
}

// Record is the state of one simulation step.
type Record struct {
	N          int
	Desired    float64 // corrupted signal the estimator tracks
	Clean      float64 // uncorrupted tone
	Output     float64
	Error      float64
	WeightNorm float64
}

// Trace is the ordered sequence of records of one run.
type Trace []Record

// Errors returns the error column of t.
func (t Trace) Errors() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.Error
	}
	return out
}

// Clone returns an independent copy of t.
func (t Trace) Clone() Trace {
	if t == nil {
		return nil
	}
	return append(Trace(nil), t...)
}
