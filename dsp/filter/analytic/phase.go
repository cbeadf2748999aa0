package analytic

import (
	"math"

	"github.com/cwbudde/algo-filterlab/dsp/core"
	"github.com/cwbudde/algo-filterlab/dsp/filter/design"
)

// Phase returns the modelled phase at f in degrees, unfolded.
//
// Bessel is linear in frequency, -(f/fc)·(π/2)·order. Every other family
// uses order·atan(-(f/fc)^order).
func Phase(f, cutoffHz float64, order int, topo design.Topology) float64 {
	r := f / cutoffHz
	n := float64(order)

	if topo == design.Bessel {
		return core.RadToDeg(-r * math.Pi / 2 * n)
	}
	return core.RadToDeg(n * math.Atan(-math.Pow(r, n)))
}

// GroupDelay returns the modelled group delay at f. Bessel has a constant
// delay equal to its order; the other families peak around the cutoff,
// order / (1 + (f/fc)^(2·order)).
func GroupDelay(f, cutoffHz float64, order int, topo design.Topology) float64 {
	n := float64(order)
	if topo == design.Bessel {
		return n
	}
	return n / (1 + math.Pow(f/cutoffHz, 2*n))
}
