package design

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filterlab/dsp/window"
)

// ErrInvalidSpecification is wrapped by every precondition violation.
var ErrInvalidSpecification = errors.New("design: invalid specification")

// Specification describes a filter to be analysed.
//
// Topology, Order and RippleDB apply to the analog and digital IIR domains;
// Window and TapCount to the FIR domain. SampleRateHz is required for the
// digital domains. CutoffHz < SampleRateHz/2 is expected but not enforced:
// frequencies beyond Nyquist alias silently.
type Specification struct {
	Domain       Domain
	Response     ResponseType
	Topology     Topology
	Window       window.Type
	CutoffHz     float64
	SampleRateHz float64
	Order        int
	TapCount     int
	RippleDB     float64
}

// Validate reports the first precondition violated by s.
func (s Specification) Validate() error {
	if s.Domain < DomainAnalog || s.Domain > DomainDigitalFIR {
		return fmt.Errorf("%w: unknown domain %d", ErrInvalidSpecification, int(s.Domain))
	}
	if !(s.CutoffHz > 0) {
		return fmt.Errorf("%w: cutoff must be positive, got %v Hz", ErrInvalidSpecification, s.CutoffHz)
	}
	if s.Domain.Digital() && !(s.SampleRateHz > 0) {
		return fmt.Errorf("%w: sample rate must be positive for %s, got %v Hz",
			ErrInvalidSpecification, s.Domain, s.SampleRateHz)
	}
	if s.RippleDB < 0 {
		return fmt.Errorf("%w: ripple must be non-negative, got %v dB", ErrInvalidSpecification, s.RippleDB)
	}

	if s.Domain == DomainDigitalFIR {
		if s.TapCount < 3 {
			return fmt.Errorf("%w: tap count must be at least 3, got %d", ErrInvalidSpecification, s.TapCount)
		}
		if s.TapCount%2 == 0 {
			return fmt.Errorf("%w: tap count must be odd, got %d", ErrInvalidSpecification, s.TapCount)
		}
		return nil
	}

	if s.Order <= 0 {
		return fmt.Errorf("%w: order must be positive, got %d", ErrInvalidSpecification, s.Order)
	}
	return nil
}

// Nyquist returns half the sample rate, or 0 for the analog domain.
func (s Specification) Nyquist() float64 {
	if !s.Domain.Digital() {
		return 0
	}
	return s.SampleRateHz / 2
}

// String renders s compactly for logs.
func (s Specification) String() string {
	if s.Domain == DomainDigitalFIR {
		return fmt.Sprintf("%s %s %s taps=%d fc=%gHz fs=%gHz",
			s.Domain, s.Response, s.Window, s.TapCount, s.CutoffHz, s.SampleRateHz)
	}
	return fmt.Sprintf("%s %s %s order=%d fc=%gHz fs=%gHz ripple=%gdB",
		s.Domain, s.Response, s.Topology, s.Order, s.CutoffHz, s.SampleRateHz, s.RippleDB)
}
