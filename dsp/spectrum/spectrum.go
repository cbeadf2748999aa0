package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by spectrum functions.
var (
	ErrEmptyInput  = errors.New("spectrum: input is empty")
	ErrInvalidSize = errors.New("spectrum: fft size must be a power of two no shorter than the input")
	ErrInvalidRate = errors.New("spectrum: sample rate must be positive")
	ErrShortPhase  = errors.New("spectrum: group delay requires at least 2 phase points")
)

// Response holds the one-sided spectrum of a real tap sequence.
type Response struct {
	// FFTSize is the transform length the bins were computed with.
	FFTSize int
	// Bins holds FFTSize/2+1 bins from DC to Nyquist.
	Bins []complex128
}

// Transform zero-pads taps to fftSize and returns the one-sided spectrum.
func Transform(taps []float64, fftSize int) (Response, error) {
	if len(taps) == 0 {
		return Response{}, ErrEmptyInput
	}
	if fftSize < len(taps) || !isPowerOfTwo(fftSize) {
		return Response{}, fmt.Errorf("%w: %d for %d taps", ErrInvalidSize, fftSize, len(taps))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Response{}, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range taps {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Response{}, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return Response{FFTSize: fftSize, Bins: out[:fftSize/2+1]}, nil
}

// Frequencies returns the bin centre frequencies in Hz.
func (r Response) Frequencies(sampleRate float64) ([]float64, error) {
	if !(sampleRate > 0) {
		return nil, ErrInvalidRate
	}
	out := make([]float64, len(r.Bins))
	step := sampleRate / float64(r.FFTSize)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out, nil
}

// Magnitude returns |X[k]| for every bin.
func (r Response) Magnitude() []float64 {
	return Magnitude(r.Bins)
}

// Phase returns arg(X[k]) in radians for every bin.
func (r Response) Phase() []float64 {
	out := make([]float64, len(r.Bins))
	for i, c := range r.Bins {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// GroupDelay returns the group delay in samples from the unwrapped phase.
func (r Response) GroupDelay() ([]float64, error) {
	return GroupDelayFromPhase(UnwrapPhase(r.Phase()), r.FFTSize)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re, im := split(in)
	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re, im := split(in)
	out := make([]float64, len(in))
	vecmath.Power(out, re, im)
	return out
}

// UnwrapPhase returns a new phase slice with +/-2π discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// GroupDelayFromPhase differentiates unwrapped phase over uniformly spaced
// bins of an fftSize transform, returning samples of delay. Interior bins use
// a centred difference.
func GroupDelayFromPhase(unwrapped []float64, fftSize int) ([]float64, error) {
	if len(unwrapped) < 2 {
		return nil, ErrShortPhase
	}
	if fftSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, fftSize)
	}

	dw := 2 * math.Pi / float64(fftSize)
	last := len(unwrapped) - 1
	out := make([]float64, len(unwrapped))
	for i := range unwrapped {
		var dphi float64
		switch i {
		case 0:
			dphi = unwrapped[1] - unwrapped[0]
		case last:
			dphi = unwrapped[i] - unwrapped[i-1]
		default:
			dphi = (unwrapped[i+1] - unwrapped[i-1]) / 2
		}
		out[i] = -dphi / dw
	}
	return out, nil
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func split(in []complex128) (re, im []float64) {
	re = make([]float64, len(in))
	im = make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}
