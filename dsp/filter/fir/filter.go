package fir

import (
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-filterlab/dsp/core"
)

// Filter evaluates a tap set both as a streaming convolution and through its
// discrete-time Fourier transform.
type Filter struct {
	taps    []float64
	history []float64 // most recent input first
}

// New returns a Filter over a copy of taps.
func New(taps []float64) *Filter {
	return &Filter{
		taps:    append([]float64(nil), taps...),
		history: make([]float64, len(taps)),
	}
}

// ProcessSample pushes x into the history and returns
//
//	y[n] = Σ h[k]·x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	if len(f.taps) == 0 {
		return 0
	}
	core.PushFront(f.history, x)
	return f64.DotProduct(f.taps, f.history)
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i := range buf {
		buf[i] = f.ProcessSample(buf[i])
	}
}

// Step feeds n unit samples through a cleared history and returns the
// outputs. For n up to the tap count this is the running sum of the taps.
func (f *Filter) Step(n int) []float64 {
	if n <= 0 {
		return nil
	}
	f.Reset()
	out := make([]float64, n)
	for i := range out {
		out[i] = f.ProcessSample(1)
	}
	return out
}

// Reset clears the history.
func (f *Filter) Reset() {
	core.Zero(f.history)
}

// Order is the tap count minus one.
func (f *Filter) Order() int {
	return len(f.taps) - 1
}

// Coefficients returns a copy of the taps.
func (f *Filter) Coefficients() []float64 {
	return append([]float64(nil), f.taps...)
}

// Response evaluates the discrete-time Fourier transform of the taps at
// freqHz:
//
//	re = Σ h[n] cos(nω),  im = -Σ h[n] sin(nω),  ω = 2π freqHz/sampleRate
func (f *Filter) Response(freqHz, sampleRate float64) (re, im float64) {
	w := 2 * math.Pi * freqHz / sampleRate
	for n, c := range f.taps {
		re += c * math.Cos(float64(n)*w)
		im -= c * math.Sin(float64(n)*w)
	}
	return re, im
}

// Magnitude returns |H| at freqHz.
func (f *Filter) Magnitude(freqHz, sampleRate float64) float64 {
	return math.Hypot(f.Response(freqHz, sampleRate))
}

// GroupDelay returns the constant group delay in samples of a symmetric
// (linear-phase) tap set, (N-1)/2.
func (f *Filter) GroupDelay() float64 {
	return float64(len(f.taps)-1) / 2
}
