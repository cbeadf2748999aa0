package sweep

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-filterlab/dsp/core"
	"github.com/cwbudde/algo-filterlab/dsp/filter/analytic"
	"github.com/cwbudde/algo-filterlab/dsp/filter/design"
	"github.com/cwbudde/algo-filterlab/dsp/filter/fir"
)

// analogSpan is the upper sweep bound of analog prototypes, in multiples of
// the cutoff.
const analogSpan = 10

// Sample is one row of a frequency response table.
type Sample struct {
	FrequencyHz float64
	Magnitude   float64 // linear
	MagnitudeDB float64 // floored, see core.MagnitudeDB
	PhaseDeg    float64 // folded, see core.FoldPhase
	GroupDelay  float64 // samples (FIR) or model units (analytic)
}

// Report bundles the response tables of one specification.
type Report struct {
	Frequency []Sample
	// Impulse holds the FIR taps, or a synthetic decaying oscillation for
	// analog and IIR specifications.
	Impulse []float64
	// Step is the running sum of Impulse, truncated.
	Step []float64
	// Coefficients holds the FIR taps; nil for other domains.
	Coefficients []float64
}

// Range returns the first and last swept frequency for s.
func Range(s design.Specification, cfg core.EngineConfig) (fMin, fMax float64) {
	fMin = cfg.MinFrequency
	if s.Domain.Digital() {
		fMax = s.Nyquist()
	} else {
		fMax = analogSpan * s.CutoffHz
	}
	if fMax < fMin {
		fMin, fMax = fMax, fMin
	}
	return fMin, fMax
}

// Run validates s and computes its response tables.
func Run(s design.Specification, opts ...core.EngineOption) (Report, error) {
	return RunConfig(s, core.ApplyEngineOptions(opts...))
}

// RunConfig is Run with an explicit configuration.
func RunConfig(s design.Specification, cfg core.EngineConfig) (Report, error) {
	if err := s.Validate(); err != nil {
		return Report{}, err
	}

	fMin, fMax := Range(s, cfg)
	freqs, err := LogFrequencies(fMin, fMax, cfg.SweepPoints)
	if err != nil {
		return Report{}, fmt.Errorf("sweep: %s: %w", s, err)
	}

	var r Report
	if s.Domain == design.DomainDigitalFIR {
		r.Coefficients = fir.FromSpecification(s)
		f := fir.New(r.Coefficients)
		r.Frequency = firResponse(f, s.SampleRateHz, freqs, cfg.FloorDB)
		r.Impulse = f.Coefficients()
		r.Step = f.Step(min(len(r.Impulse), cfg.StepLength))
		return r, nil
	}

	r.Frequency = analyticResponse(s, freqs, cfg.FloorDB)
	r.Impulse = SyntheticImpulse(s.CutoffHz, renderRate(s, cfg), s.Order, cfg.ImpulseLength)
	r.Step = StepResponse(r.Impulse, cfg.StepLength)

	return r, nil
}

// renderRate is the sample rate used for the synthetic time response.
func renderRate(s design.Specification, cfg core.EngineConfig) float64 {
	if s.SampleRateHz > 0 {
		return s.SampleRateHz
	}
	return cfg.SampleRate
}

func firResponse(f *fir.Filter, sampleRate float64, freqs []float64, floorDB float64) []Sample {
	delay := f.GroupDelay()

	re := make([]float64, len(freqs))
	im := make([]float64, len(freqs))
	for i, hz := range freqs {
		re[i], im[i] = f.Response(hz, sampleRate)
	}
	mag := make([]float64, len(freqs))
	vecmath.Magnitude(mag, re, im)

	out := make([]Sample, len(freqs))
	for i, hz := range freqs {
		out[i] = Sample{
			FrequencyHz: hz,
			Magnitude:   mag[i],
			MagnitudeDB: core.MagnitudeDB(mag[i], floorDB),
			PhaseDeg:    core.FoldPhase(core.RadToDeg(math.Atan2(im[i], re[i]))),
			GroupDelay:  delay,
		}
	}
	return out
}

func analyticResponse(s design.Specification, freqs []float64, floorDB float64) []Sample {
	out := make([]Sample, len(freqs))
	for i, hz := range freqs {
		mag := analytic.Magnitude(hz, s.CutoffHz, s.Order, s.Response, s.Topology, s.RippleDB)
		out[i] = Sample{
			FrequencyHz: hz,
			Magnitude:   mag,
			MagnitudeDB: core.MagnitudeDB(mag, floorDB),
			PhaseDeg:    core.FoldPhase(analytic.Phase(hz, s.CutoffHz, s.Order, s.Topology)),
			GroupDelay:  analytic.GroupDelay(hz, s.CutoffHz, s.Order, s.Topology),
		}
	}
	return out
}

// Clone returns a deep copy of r.
func (r Report) Clone() Report {
	return Report{
		Frequency:    cloneSlice(r.Frequency),
		Impulse:      cloneSlice(r.Impulse),
		Step:         cloneSlice(r.Step),
		Coefficients: cloneSlice(r.Coefficients),
	}
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append([]T(nil), s...)
}

// Frequencies returns the swept frequencies of r.
func (r Report) Frequencies() []float64 {
	out := make([]float64, len(r.Frequency))
	for i, s := range r.Frequency {
		out[i] = s.FrequencyHz
	}
	return out
}

// Magnitudes returns the linear magnitudes of r.
func (r Report) Magnitudes() []float64 {
	out := make([]float64, len(r.Frequency))
	for i, s := range r.Frequency {
		out[i] = s.Magnitude
	}
	return out
}
