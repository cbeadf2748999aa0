package core

import "math"

// LogEpsilon is added to linear magnitudes before taking a logarithm so that
// a zero magnitude maps to a large finite negative level.
const LogEpsilon = 1e-9

// LinearToDB returns the exact level 20·log10(linear) in dB: -Inf at zero
// and NaN for negative input.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// MagnitudeDB converts a linear magnitude to dB for display.
//
//	db = max(20*log10(mag + 1e-9), floorDB)
//
// Unlike [LinearToDB] the result is always finite.
func MagnitudeDB(mag, floorDB float64) float64 {
	db := 20 * math.Log10(mag+LogEpsilon)
	if math.IsNaN(db) || db < floorDB {
		return floorDB
	}

	return db
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// FoldPhase folds a phase in degrees with a truncated floating modulo of 180.
//
// The result keeps the sign of deg: -190 folds to -10, 190 to 10 and -170
// stays -170. This is the display convention of the response tables and not
// a symmetric wrap into (-180, 180].
func FoldPhase(deg float64) float64 {
	return math.Mod(deg, 180)
}
