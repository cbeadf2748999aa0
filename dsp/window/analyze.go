package window

import "math"

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the two-sided half-power main lobe width in bins.
	Bandwidth3dB float64
	// ScallopLossdB is the level of a tone half a bin off-centre.
	ScallopLossdB float64
}

// Analyze evaluates the window spectrum numerically. It returns an error for
// an empty window or one whose coefficients sum to zero.
func Analyze(coeffs []float64) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, ErrEmptyWindow
	}

	sum, sumSq := 0.0, 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return Analysis{}, ErrZeroCoherentGain
	}

	nf := float64(n)
	dc := powerAt(coeffs, 0)

	return Analysis{
		CoherentGain:  sum / nf,
		ENBW:          nf * sumSq / (sum * sum),
		Bandwidth3dB:  2 * halfPowerFrequency(coeffs, dc) * nf,
		ScallopLossdB: 10 * math.Log10(powerAt(coeffs, 0.5/nf)/dc),
	}, nil
}

// powerAt returns |W(f)|^2 at the normalised frequency f in cycles/sample.
func powerAt(coeffs []float64, f float64) float64 {
	w := 2 * math.Pi * f
	re, im := 0.0, 0.0
	for k, c := range coeffs {
		re += c * math.Cos(w*float64(k))
		im -= c * math.Sin(w*float64(k))
	}
	return re*re + im*im
}

// halfPowerFrequency bisects [0, 0.5] for the point where the main lobe
// falls to half of dc.
func halfPowerFrequency(coeffs []float64, dc float64) float64 {
	lo, hi := 0.0, 0.5
	for range 60 {
		mid := (lo + hi) / 2
		if powerAt(coeffs, mid)/dc > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
