package core

// EngineConfig defines the shared settings of the response and simulation
// engines.
type EngineConfig struct {
	// SampleRate is used for time-domain rendering when a specification
	// carries no sample rate of its own (analog prototypes).
	SampleRate float64
	// SweepPoints is the number of log-spaced frequencies per report.
	SweepPoints int
	// MinFrequency is the lowest swept frequency in Hz.
	MinFrequency float64
	// FloorDB is the lowest magnitude reported in dB.
	FloorDB float64
	// ImpulseLength is the length of the synthetic IIR/analog impulse.
	ImpulseLength int
	// StepLength truncates the step response.
	StepLength int
	// AdaptiveSteps is the default simulation length.
	AdaptiveSteps int
}

// EngineOption mutates an EngineConfig.
type EngineOption func(*EngineConfig)

// DefaultEngineConfig returns the defaults used by the response tables.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SampleRate:    48000,
		SweepPoints:   128,
		MinFrequency:  10,
		FloorDB:       -120,
		ImpulseLength: 64,
		StepLength:    60,
		AdaptiveSteps: 150,
	}
}

// WithSampleRate sets the fallback sample rate.
func WithSampleRate(sampleRate float64) EngineOption {
	return func(cfg *EngineConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSweepPoints sets the number of swept frequencies. At least two points
// are required to span the range.
func WithSweepPoints(n int) EngineOption {
	return func(cfg *EngineConfig) {
		if n >= 2 {
			cfg.SweepPoints = n
		}
	}
}

// WithMinFrequency sets the lowest swept frequency.
func WithMinFrequency(hz float64) EngineOption {
	return func(cfg *EngineConfig) {
		if hz > 0 {
			cfg.MinFrequency = hz
		}
	}
}

// WithFloorDB sets the display floor of the magnitude in dB.
func WithFloorDB(db float64) EngineOption {
	return func(cfg *EngineConfig) {
		if db < 0 {
			cfg.FloorDB = db
		}
	}
}

// WithImpulseLength sets the length of the synthetic impulse response.
func WithImpulseLength(n int) EngineOption {
	return func(cfg *EngineConfig) {
		if n > 0 {
			cfg.ImpulseLength = n
		}
	}
}

// WithStepLength sets the step response truncation length.
func WithStepLength(n int) EngineOption {
	return func(cfg *EngineConfig) {
		if n > 0 {
			cfg.StepLength = n
		}
	}
}

// WithAdaptiveSteps sets the default simulation length.
func WithAdaptiveSteps(n int) EngineOption {
	return func(cfg *EngineConfig) {
		if n > 0 {
			cfg.AdaptiveSteps = n
		}
	}
}

// ApplyEngineOptions applies zero or more options to the default config.
func ApplyEngineOptions(opts ...EngineOption) EngineConfig {
	cfg := DefaultEngineConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
