package design

import (
	"fmt"
	"strings"
)

// Domain selects how a filter is realised.
type Domain int

const (
	DomainAnalog Domain = iota
	DomainDigitalIIR
	DomainDigitalFIR
)

var domainNames = [...]string{"analog", "digital_iir", "digital_fir"}

func (d Domain) String() string {
	if d >= 0 && int(d) < len(domainNames) {
		return domainNames[d]
	}
	return fmt.Sprintf("Domain(%d)", int(d))
}

// Digital reports whether the domain is sampled.
func (d Domain) Digital() bool {
	return d == DomainDigitalIIR || d == DomainDigitalFIR
}

// ParseDomain maps a domain name to its Domain. Unlike the other enums a
// domain has no fallback, since it decides which designer runs.
func ParseDomain(name string) (Domain, error) {
	switch normalize(name) {
	case "analog", "s":
		return DomainAnalog, nil
	case "digital_iir", "iir":
		return DomainDigitalIIR, nil
	case "digital_fir", "fir":
		return DomainDigitalFIR, nil
	default:
		return 0, fmt.Errorf("%w: unknown domain %q", ErrInvalidSpecification, name)
	}
}

// ResponseType selects the pass/stop band arrangement.
type ResponseType int

const (
	Lowpass ResponseType = iota
	Highpass
	Bandpass
	Bandstop
	Notch
)

var responseNames = [...]string{"lowpass", "highpass", "bandpass", "bandstop", "notch"}

func (r ResponseType) String() string {
	if r >= 0 && int(r) < len(responseNames) {
		return responseNames[r]
	}
	return fmt.Sprintf("ResponseType(%d)", int(r))
}

// ParseResponseType maps a response name to its ResponseType. Unknown names
// fall back to Lowpass.
func ParseResponseType(name string) (ResponseType, bool) {
	switch normalize(name) {
	case "lowpass", "lp":
		return Lowpass, true
	case "highpass", "hp":
		return Highpass, true
	case "bandpass", "bp":
		return Bandpass, true
	case "bandstop", "bs", "bandreject":
		return Bandstop, true
	case "notch":
		return Notch, true
	default:
		return Lowpass, false
	}
}

// Topology selects the IIR/analog approximation family.
type Topology int

const (
	Butterworth Topology = iota
	Chebyshev1
	Chebyshev2
	Elliptic
	Bessel
	// TopologyUnknown evaluates to a zero magnitude.
	TopologyUnknown
)

var topologyNames = [...]string{"butterworth", "chebyshev1", "chebyshev2", "elliptic", "bessel", "unknown"}

func (t Topology) String() string {
	if t >= 0 && int(t) < len(topologyNames) {
		return topologyNames[t]
	}
	return topologyNames[TopologyUnknown]
}

// ParseTopology maps a family name to its Topology. Unknown names map to
// TopologyUnknown.
func ParseTopology(name string) (Topology, bool) {
	switch normalize(name) {
	case "butterworth", "butter":
		return Butterworth, true
	case "chebyshev1", "cheby1", "chebyshev_1":
		return Chebyshev1, true
	case "chebyshev2", "cheby2", "chebyshev_2":
		return Chebyshev2, true
	case "elliptic", "cauer":
		return Elliptic, true
	case "bessel", "thomson":
		return Bessel, true
	default:
		return TopologyUnknown, false
	}
}

func normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(s, "-", "_")
}
