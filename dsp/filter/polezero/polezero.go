// Package polezero lays out poles and zeros for the filter families in the
// s-plane (analog) or z-plane (digital).
//
// The layouts are geometric: poles are spread at the angles of the classic
// Butterworth root pattern and placed on a circle or ellipse whose radius
// depends on the domain and family. They are meant for plotting, not for
// realising a transfer function.
package polezero

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filterlab/dsp/filter/design"
)

// ErrInvalidOrder is returned for a non-positive filter order.
var ErrInvalidOrder = errors.New("polezero: order must be positive")

// Digital IIR pole radii.
const (
	butterworthRadius = 0.7
	defaultRadius     = 0.85
)

// Point is a location in the complex plane.
type Point struct {
	Re float64
	Im float64
}

// Complex returns p as a complex128.
func (p Point) Complex() complex128 { return complex(p.Re, p.Im) }

// Abs returns the distance of p from the origin.
func (p Point) Abs() float64 { return cmplx.Abs(p.Complex()) }

// Set holds the poles and zeros of one layout.
type Set struct {
	Poles []Point
	Zeros []Point
}

// Synthesize returns the pole-zero layout for the given family.
//
// Highpass and bandpass responses get order zeros at the origin; the FIR
// domain instead spreads order zeros evenly around the unit circle. Pole k
// sits at angle π(2k+order+1)/(2·order). FIR poles all sit at the origin;
// analog Chebyshev I poles lie on the ellipse (0.5cos θ, sin θ), other analog
// poles on the unit circle; digital IIR poles on a circle of radius 0.7
// (Butterworth) or 0.85.
//
// Order is not validated here; a non-positive order yields an empty set.
// See [Validate].
func Synthesize(topo design.Topology, order int, resp design.ResponseType, domain design.Domain) Set {
	if order <= 0 {
		return Set{}
	}

	return Set{
		Poles: poles(topo, order, domain),
		Zeros: zeros(order, resp, domain),
	}
}

// Validate reports whether order can be synthesised.
func Validate(order int) error {
	if order <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	return nil
}

func zeros(order int, resp design.ResponseType, domain design.Domain) []Point {
	if domain == design.DomainDigitalFIR {
		out := make([]Point, order)
		for i := range out {
			theta := 2 * math.Pi * float64(i) / float64(order)
			out[i] = Point{Re: math.Cos(theta), Im: math.Sin(theta)}
		}
		return out
	}

	if resp == design.Highpass || resp == design.Bandpass {
		return make([]Point, order)
	}
	return nil
}

func poles(topo design.Topology, order int, domain design.Domain) []Point {
	out := make([]Point, order)
	if domain == design.DomainDigitalFIR {
		return out
	}

	rx, ry := 1.0, 1.0
	switch {
	case domain == design.DomainAnalog && topo == design.Chebyshev1:
		rx = 0.5
	case domain == design.DomainAnalog:
	case topo == design.Butterworth:
		rx, ry = butterworthRadius, butterworthRadius
	default:
		rx, ry = defaultRadius, defaultRadius
	}

	n := float64(order)
	for k := range out {
		theta := math.Pi * (2*float64(k) + n + 1) / (2 * n)
		out[k] = Point{Re: rx * math.Cos(theta), Im: ry * math.Sin(theta)}
	}
	return out
}

// Stable reports whether the poles describe a stable system in domain:
// inside the unit disk for digital domains, in the closed left half-plane
// for analog prototypes.
func (s Set) Stable(domain design.Domain) bool {
	const tol = 1e-12
	for _, p := range s.Poles {
		if domain.Digital() {
			if p.Abs() >= 1 {
				return false
			}
			continue
		}
		if p.Re > tol {
			return false
		}
	}
	return true
}
