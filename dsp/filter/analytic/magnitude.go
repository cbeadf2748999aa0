package analytic

import (
	"math"

	"github.com/cwbudde/algo-filterlab/dsp/filter/design"
)

// cheby2StopbandFactor is the fixed stopband ripple factor of the inverse
// Chebyshev model.
const cheby2StopbandFactor = 0.1

// defaultEllipticRippleDB replaces a zero ripple in the elliptic model, whose
// stopband term divides by the ripple factor.
const defaultEllipticRippleDB = 1

// NormalizedFrequency maps f to the lowpass-prototype frequency for resp:
//
//	lowpass, bandstop  w = f/fc
//	highpass           w = fc/f
//	bandpass           w = |w - 1/w|
//	notch              w = |1 / (w - 1/w)|
func NormalizedFrequency(f, cutoffHz float64, resp design.ResponseType) float64 {
	w := f / cutoffHz
	switch resp {
	case design.Highpass:
		return 1 / w
	case design.Bandpass:
		return math.Abs(w - 1/w)
	case design.Notch:
		return math.Abs(1 / (w - 1/w))
	default:
		return w
	}
}

// Magnitude returns the linear magnitude at f for the given family. An
// unrecognised topology yields 0.
func Magnitude(f, cutoffHz float64, order int, resp design.ResponseType, topo design.Topology, rippleDB float64) float64 {
	w := NormalizedFrequency(f, cutoffHz, resp)
	n := float64(order)

	switch topo {
	case design.Butterworth:
		return 1 / math.Sqrt(1+math.Pow(w, 2*n))
	case design.Chebyshev1:
		return chebyshev1(w, n, RippleFactor(rippleDB))
	case design.Chebyshev2:
		t := ChebyshevPoly(n, 1/w)
		d := cheby2StopbandFactor * t
		return 1 / math.Sqrt(1+1/(d*d))
	case design.Bessel:
		return 1 / math.Sqrt(1+math.Pow(w, 2*n)*0.3+w*w)
	case design.Elliptic:
		if rippleDB <= 0 {
			rippleDB = defaultEllipticRippleDB
		}
		eps := RippleFactor(rippleDB)
		if w < 1 {
			return chebyshev1(w, n, eps)
		}
		return 1 / (math.Pow(w, 2*n) * eps) * (1 + 0.1*math.Cos(n*w*3))
	default:
		return 0
	}
}

// RippleFactor converts a passband ripple in dB to ε = sqrt(10^(r/10) - 1).
func RippleFactor(rippleDB float64) float64 {
	return math.Sqrt(math.Pow(10, rippleDB/10) - 1)
}

// ChebyshevPoly evaluates the Chebyshev polynomial T_n(x) for x >= 0 using
// the trigonometric form inside [0, 1] and the hyperbolic form beyond.
func ChebyshevPoly(n, x float64) float64 {
	if x <= 1 {
		return math.Cos(n * math.Acos(x))
	}
	return math.Cosh(n * math.Acosh(x))
}

func chebyshev1(w, n, eps float64) float64 {
	c := eps * ChebyshevPoly(n, w)
	return 1 / math.Sqrt(1+c*c)
}
