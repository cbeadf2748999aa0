package engine

import (
	"github.com/cwbudde/algo-filterlab/dsp/core"
	"github.com/cwbudde/algo-filterlab/logging"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) {
		if l == nil {
			l = &logging.NoOpLogger{}
		}
		e.logger = l
	}
}

// WithSeed makes adaptive simulations reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
		e.seeded = true
	}
}

// WithMemoization caches the most recent response report.
func WithMemoization() Option {
	return func(e *Engine) {
		e.memoize = true
	}
}

// WithConfig applies numeric configuration options.
func WithConfig(opts ...core.EngineOption) Option {
	return func(e *Engine) {
		for _, opt := range opts {
			if opt != nil {
				opt(&e.cfg)
			}
		}
	}
}
