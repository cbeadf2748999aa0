package fir

import (
	"math"

	"github.com/cwbudde/algo-filterlab/dsp/filter/design"
	"github.com/cwbudde/algo-filterlab/dsp/window"
)

// Design returns tapCount windowed-sinc coefficients.
//
// With fc = cutoffHz/sampleRateHz and centre m = (tapCount-1)/2, the ideal
// lowpass kernel is
//
//	h[n] = 2 fc                                 n == m
//	h[n] = sin(2π fc (n-m)) / (π (n-m))          otherwise
//
// multiplied by the window weight of tap n. A highpass response negates
// every tap and adds 1 at the centre. The passband gain is left at the
// kernel's inherent DC value.
//
// Design does not validate its arguments; see [design.Specification.Validate].
func Design(tapCount int, cutoffHz, sampleRateHz float64, win window.Type, resp design.ResponseType) []float64 {
	if tapCount <= 0 {
		return nil
	}

	fc := cutoffHz / sampleRateHz
	center := float64(tapCount-1) / 2

	h := make([]float64, tapCount)
	for n := range h {
		x := float64(n) - center
		if x == 0 {
			h[n] = 2 * fc
		} else {
			h[n] = math.Sin(2*math.Pi*fc*x) / (math.Pi * x)
		}
	}
	window.Apply(win, h)

	if resp == design.Highpass {
		invert(h)
	}
	return h
}

// FromSpecification designs the taps described by s.
func FromSpecification(s design.Specification) []float64 {
	return Design(s.TapCount, s.CutoffHz, s.SampleRateHz, s.Window, s.Response)
}

// invert turns a lowpass kernel into its complementary highpass.
// The centre tap only exists for odd lengths.
func invert(h []float64) {
	for i := range h {
		h[i] = -h[i]
	}
	if len(h)%2 == 1 {
		h[len(h)/2]++
	}
}
