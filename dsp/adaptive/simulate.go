package adaptive

import (
	"errors"
	"math"
)

// Scenario constants.
const (
	cleanPeriod         = 20
	interferencePeriod  = 5
	interferenceLevel   = 0.5
	referenceCoupling   = 0.9
	desiredNoiseLevel   = 0.1
	referenceNoiseLevel = 0.05
)

// ErrAlreadyRun is returned when a Simulator is run twice.
var ErrAlreadyRun = errors.New("adaptive: simulator already completed")

// Source yields uniform pseudo-random values in [0, 1). *math/rand.Rand
// satisfies it.
type Source interface {
	Float64() float64
}

// State is the lifecycle of a Simulator.
type State int

const (
	StateConfigured State = iota
	StateRunning
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateConfigured:
		return "configured"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Simulator executes one Specification.
type Simulator struct {
	spec   Specification
	rng    Source
	state  State
	filter *Filter
	kalman *ScalarKalman
}

// NewSimulator validates spec and returns a configured simulator.
func NewSimulator(spec Specification, rng Source) (*Simulator, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		spec:   spec,
		rng:    rng,
		filter: NewFilter(Taps),
		kalman: NewScalarKalman(KalmanProcessNoise, KalmanMeasurementNoise),
	}, nil
}

// State returns the lifecycle state.
func (s *Simulator) State() State { return s.state }

// Weights returns a copy of the adaptive filter weights.
func (s *Simulator) Weights() []float64 { return s.filter.Weights() }

// Run executes all steps. A skipped specification yields an empty trace and
// leaves the simulator configured.
func (s *Simulator) Run() (Trace, error) {
	if s.state == StateCompleted {
		return nil, ErrAlreadyRun
	}
	if s.spec.Skip {
		return Trace{}, nil
	}

	s.state = StateRunning
	trace := make(Trace, s.spec.Steps)
	for n := range trace {
		trace[n] = s.step(n)
	}
	s.state = StateCompleted
	return trace, nil
}

func (s *Simulator) step(n int) Record {
	clean, interference := Scenario(n)
	// Draw order is fixed so seeded runs reproduce.
	desired := clean + interference + s.uniform(desiredNoiseLevel)
	reference := referenceCoupling*interference + s.uniform(referenceNoiseLevel)

	s.filter.Push(reference)

	var output, e float64
	switch {
	case s.spec.Algorithm == Kalman:
		output, e = s.kalman.Update(desired)
	case s.spec.Algorithm.Gradient():
		output = s.filter.Output()
		e = desired - output
		s.filter.Adapt(s.filter.Gain(s.spec.Algorithm, s.spec.StepSize), e)
	default:
		e = desired
	}

	return Record{
		N:          n,
		Desired:    desired,
		Clean:      clean,
		Output:     output,
		Error:      e,
		WeightNorm: s.filter.WeightNorm(),
	}
}

// uniform returns a value in [-level, level).
func (s *Simulator) uniform(level float64) float64 {
	return (2*s.rng.Float64() - 1) * level
}

// Scenario returns the clean tone and the interference at step n.
func Scenario(n int) (clean, interference float64) {
	x := float64(n)
	clean = math.Sin(2 * math.Pi * x / cleanPeriod)
	interference = interferenceLevel * math.Cos(2*math.Pi*x/interferencePeriod)
	return clean, interference
}

// Simulate runs spec once with noise drawn from rng.
func Simulate(spec Specification, rng Source) (Trace, error) {
	sim, err := NewSimulator(spec, rng)
	if err != nil {
		return nil, err
	}
	return sim.Run()
}
