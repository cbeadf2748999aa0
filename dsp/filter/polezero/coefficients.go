package polezero

import (
	"fmt"

	"github.com/cwbudde/algo-filterlab/internal/polyroot"
)

// FromCoefficients returns the exact pole-zero set of an FIR filter with the
// given taps: the roots of H(z)·z^(N-1) as zeros and N-1 poles at the origin.
// Unlike [Synthesize] this describes the actual transfer function.
func FromCoefficients(taps []float64) (Set, error) {
	if len(taps) == 0 {
		return Set{}, nil
	}

	roots, err := polyroot.Roots(taps)
	if err != nil {
		return Set{}, fmt.Errorf("polezero: %d taps: %w", len(taps), err)
	}

	s := Set{
		Poles: make([]Point, len(taps)-1),
		Zeros: make([]Point, len(roots)),
	}
	for i, r := range roots {
		s.Zeros[i] = Point{Re: real(r), Im: imag(r)}
	}
	return s, nil
}
