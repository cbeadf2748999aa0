package window

import "errors"

// Sentinel errors returned by Analyze.
var (
	ErrEmptyWindow      = errors.New("window: no coefficients")
	ErrZeroCoherentGain = errors.New("window: coherent gain is zero")
)
