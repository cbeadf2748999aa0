// Package engine is the entry point for front ends: it validates inputs,
// routes them to the numeric packages and returns plain tables.
//
// All methods are synchronous and safe for concurrent use.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/cwbudde/algo-filterlab/dsp/adaptive"
	"github.com/cwbudde/algo-filterlab/dsp/core"
	"github.com/cwbudde/algo-filterlab/dsp/filter/design"
	"github.com/cwbudde/algo-filterlab/dsp/filter/fir"
	"github.com/cwbudde/algo-filterlab/dsp/filter/polezero"
	"github.com/cwbudde/algo-filterlab/logging"
	"github.com/cwbudde/algo-filterlab/measure/sweep"
)

// Engine computes filter responses, pole-zero layouts and adaptive
// simulations.
type Engine struct {
	cfg     core.EngineConfig
	logger  logging.Logger
	seed    int64
	seeded  bool
	memoize bool

	mu     sync.Mutex
	cached *cacheEntry
}

type cacheEntry struct {
	spec   design.Specification
	report sweep.Report
}

// New returns an engine configured by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:    core.DefaultEngineConfig(),
		logger: &logging.NoOpLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	e.logger = e.logger.WithFields(logging.Fields{"component": "engine"})
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() core.EngineConfig { return e.cfg }

// ComputeResponse returns the frequency and time response tables of spec.
func (e *Engine) ComputeResponse(ctx context.Context, spec design.Specification) (sweep.Report, error) {
	if err := ctx.Err(); err != nil {
		return sweep.Report{}, err
	}

	if r, ok := e.lookup(spec); ok {
		e.logger.Debug("response served from cache", logging.Fields{"spec": spec.String()})
		return r, nil
	}

	start := time.Now()
	r, err := sweep.RunConfig(spec, e.cfg)
	if err != nil {
		e.logger.Warn("response rejected", logging.Fields{"spec": spec.String(), "error": err.Error()})
		return sweep.Report{}, err
	}
	e.logger.Debug("response computed", logging.Fields{
		"spec":    spec.String(),
		"points":  len(r.Frequency),
		"impulse": len(r.Impulse),
		"elapsed": time.Since(start),
	})

	e.store(spec, r)
	return r, nil
}

// ComputePoleZero returns the illustrative pole-zero layout of a filter.
// Only a non-positive order is rejected.
func (e *Engine) ComputePoleZero(topo design.Topology, order int, resp design.ResponseType, domain design.Domain) (polezero.Set, error) {
	if err := polezero.Validate(order); err != nil {
		e.logger.Warn("pole-zero rejected", logging.Fields{"order": order, "error": err.Error()})
		return polezero.Set{}, err
	}

	set := polezero.Synthesize(topo, order, resp, domain)
	e.logger.Debug("pole-zero synthesized", logging.Fields{
		"topology": topo.String(),
		"domain":   domain.String(),
		"poles":    len(set.Poles),
		"zeros":    len(set.Zeros),
	})
	return set, nil
}

// ComputeFIRZeros returns the exact zeros of the FIR design described by
// spec, with all poles at the origin.
func (e *Engine) ComputeFIRZeros(ctx context.Context, spec design.Specification) (polezero.Set, error) {
	if err := ctx.Err(); err != nil {
		return polezero.Set{}, err
	}
	if spec.Domain != design.DomainDigitalFIR {
		err := fmt.Errorf("%w: exact zeros need the %s domain, got %s",
			design.ErrInvalidSpecification, design.DomainDigitalFIR, spec.Domain)
		e.logger.Warn("fir zeros rejected", logging.Fields{"spec": spec.String(), "error": err.Error()})
		return polezero.Set{}, err
	}
	if err := spec.Validate(); err != nil {
		e.logger.Warn("fir zeros rejected", logging.Fields{"spec": spec.String(), "error": err.Error()})
		return polezero.Set{}, err
	}

	set, err := polezero.FromCoefficients(fir.FromSpecification(spec))
	if err != nil {
		e.logger.Error(err, "fir zeros failed", logging.Fields{"spec": spec.String()})
		return polezero.Set{}, err
	}
	e.logger.Debug("fir zeros computed", logging.Fields{"spec": spec.String(), "zeros": len(set.Zeros)})
	return set, nil
}

// AdaptiveSpecification returns a runnable specification using the
// configured step count.
func (e *Engine) AdaptiveSpecification(alg adaptive.Algorithm, stepSize float64) adaptive.Specification {
	return adaptive.Specification{
		Algorithm: alg,
		StepSize:  stepSize,
		Steps:     e.cfg.AdaptiveSteps,
	}
}

// RunAdaptiveSimulation runs spec. With WithSeed every call replays the
// same noise; otherwise each call is seeded from the clock.
func (e *Engine) RunAdaptiveSimulation(ctx context.Context, spec adaptive.Specification) (adaptive.Trace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trace, err := adaptive.Simulate(spec, e.source())
	if err != nil {
		e.logger.Warn("simulation rejected", logging.Fields{"spec": spec.String(), "error": err.Error()})
		return nil, err
	}
	e.logger.Debug("simulation completed", logging.Fields{"spec": spec.String(), "records": len(trace)})
	return trace, nil
}

func (e *Engine) source() adaptive.Source {
	seed := e.seed
	if !e.seeded {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (e *Engine) lookup(spec design.Specification) (sweep.Report, bool) {
	if !e.memoize {
		return sweep.Report{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cached == nil || e.cached.spec != spec {
		return sweep.Report{}, false
	}
	return e.cached.report.Clone(), true
}

func (e *Engine) store(spec design.Specification, r sweep.Report) {
	if !e.memoize {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cached = &cacheEntry{spec: spec, report: r.Clone()}
}
