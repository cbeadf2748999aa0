package window

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHamming
	TypeHanning
	TypeBlackman
)

// DefaultType is used whenever a window kind is not recognised.
const DefaultType = TypeHamming

// Metadata holds static spectral properties of a window type.
type Metadata struct {
	Name            string
	ENBW            float64
	HighestSidelobe float64
	CoherentGain    float64
}

var metadataByType = map[Type]Metadata{
	TypeRectangular: {Name: "rectangular", ENBW: 1.0, HighestSidelobe: -13.3, CoherentGain: 1.0},
	TypeHamming:     {Name: "hamming", ENBW: 1.3628, HighestSidelobe: -42.7, CoherentGain: 0.54},
	TypeHanning:     {Name: "hanning", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5},
	TypeBlackman:    {Name: "blackman", ENBW: 1.7268, HighestSidelobe: -58.1, CoherentGain: 0.42},
}

// Types lists every supported window in declaration order.
func Types() []Type {
	return []Type{TypeRectangular, TypeHamming, TypeHanning, TypeBlackman}
}

// Known reports whether t is one of the supported window kinds.
func (t Type) Known() bool {
	_, ok := metadataByType[t]
	return ok
}

// String returns the lower-case window name. Unknown types report the name
// of the fallback window they evaluate as.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}
	return metadataByType[DefaultType].Name
}

// ParseType maps a window name to its Type. Unknown names fall back to
// [DefaultType]; ok reports whether the name was recognised.
func ParseType(name string) (t Type, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangular", "rect", "boxcar":
		return TypeRectangular, true
	case "hamming":
		return TypeHamming, true
	case "hanning", "hann":
		return TypeHanning, true
	case "blackman":
		return TypeBlackman, true
	default:
		return DefaultType, false
	}
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}
	return metadataByType[DefaultType]
}

// Weight returns the symmetric window weight of tap n in a window of size
// taps, for 0 <= n < size:
//
//	rectangular  1
//	hamming      0.54 - 0.46 cos(2πn/(N-1))
//	hanning      0.5 (1 - cos(2πn/(N-1)))
//	blackman     0.42 - 0.5 cos(2πn/(N-1)) + 0.08 cos(4πn/(N-1))
//
// Unknown types evaluate as hamming. A window of a single tap is 1.
func Weight(t Type, n, size int) float64 {
	if size < 2 {
		return 1
	}

	phase := 2 * math.Pi * float64(n) / float64(size-1)

	switch t {
	case TypeRectangular:
		return 1
	case TypeHanning:
		return 0.5 * (1 - math.Cos(phase))
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
	default:
		return 0.54 - 0.46*math.Cos(phase)
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, size int) []float64 {
	if size <= 0 {
		return nil
	}

	out := make([]float64, size)
	for n := range out {
		out[n] = Weight(t, n, size)
	}
	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64) {
	if len(buf) == 0 {
		return
	}
	vecmath.MulBlockInPlace(buf, Generate(t, len(buf)))
}
