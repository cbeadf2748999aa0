// Package polyroot finds the roots of real polynomials for the pole-zero
// analysis of FIR designs.
package polyroot

import (
	"cmp"
	"errors"
	"math"
	"math/cmplx"
	"slices"
)

// ErrDegeneratePolynomial is returned when a polynomial has no usable
// coefficients or the iteration does not converge.
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// negligible is the magnitude, relative to the largest coefficient, below
// which a leading or trailing coefficient is treated as zero.
const negligible = 1e-12

// realTol snaps roots with a smaller imaginary part onto the real axis.
const realTol = 1e-9

// Roots returns the roots of the real polynomial
//
//	coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n]
//
// ordered by angle, then by magnitude. Negligible leading coefficients lower
// the degree; negligible trailing coefficients become roots at the origin.
func Roots(coeff []float64) ([]complex128, error) {
	scale := 0.0
	for _, c := range coeff {
		scale = math.Max(scale, math.Abs(c))
	}
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, ErrDegeneratePolynomial
	}

	lo, hi := 0, len(coeff)
	for lo < hi && math.Abs(coeff[lo]) <= negligible*scale {
		lo++
	}
	atOrigin := 0
	for hi > lo && math.Abs(coeff[hi-1]) <= negligible*scale {
		hi--
		atOrigin++
	}

	roots := make([]complex128, atOrigin, hi-lo-1+atOrigin)
	if hi-lo > 1 {
		c := make([]complex128, hi-lo)
		for i, v := range coeff[lo:hi] {
			c[i] = complex(v, 0)
		}
		found, err := DurandKerner(c)
		if err != nil {
			return nil, err
		}
		roots = append(roots, found...)
	}

	for i, r := range roots {
		if math.Abs(imag(r)) < realTol*math.Max(1, cmplx.Abs(r)) {
			roots[i] = complex(real(r), 0)
		}
	}
	slices.SortFunc(roots, func(a, b complex128) int {
		return cmp.Or(cmp.Compare(cmplx.Phase(a), cmplx.Phase(b)), cmp.Compare(cmplx.Abs(a), cmplx.Abs(b)))
	})
	return roots, nil
}

// DurandKerner iterates all n roots of the degree-n polynomial coeff
// (highest power first) at once. Each sweep updates
//
//	z_i <- z_i - p(z_i) / Π_{j≠i} (z_i - z_j)
//
// on the monic form of p until the largest correction drops below 1e-12.
func DurandKerner(coeff []complex128) ([]complex128, error) {
	n := len(coeff) - 1
	if n < 1 || coeff[0] == 0 {
		return nil, ErrDegeneratePolynomial
	}

	monic := make([]complex128, n+1)
	bound := 1.0
	for i, c := range coeff {
		monic[i] = c / coeff[0]
		if i > 0 {
			bound = math.Max(bound, cmplx.Abs(monic[i]))
		}
	}

	// Start on slightly spread rings inside the Cauchy bound, rotated off the
	// real axis so conjugate roots do not start symmetric.
	z := make([]complex128, n)
	for i := range z {
		frac := float64(i) / float64(n)
		z[i] = cmplx.Rect(bound*(1+0.1*frac), 2*math.Pi*frac+0.3)
	}

	const (
		maxSweeps = 1000
		tol       = 1e-12
		residual  = 1e-6
	)
	for range maxSweeps {
		largest := 0.0
		for i, zi := range z {
			prod := complex(1, 0)
			for j, zj := range z {
				if j != i {
					prod *= zi - zj
				}
			}
			if prod == 0 {
				// Coincident estimates; nudge apart.
				z[i] += complex(1e-10, 1e-10)
				continue
			}
			step := PolyEval(monic, zi) / prod
			z[i] = zi - step
			largest = math.Max(largest, cmplx.Abs(step))
		}
		if largest < tol {
			return z, nil
		}
	}

	for _, zi := range z {
		if cmplx.Abs(PolyEval(monic, zi)) >= residual {
			return nil, ErrDegeneratePolynomial
		}
	}
	return z, nil
}

// PolyEval is Horner's rule for coeff (highest power first) at x.
func PolyEval(coeff []complex128, x complex128) complex128 {
	var acc complex128
	for _, c := range coeff {
		acc = acc*x + c
	}
	return acc
}
