package design

import (
	"errors"
	"fmt"

	"github.com/dowhile98/algo-iir/dsp/sos"
)

// Family selects the filter approximation family.
type Family int

const (
	Butterworth Family = iota
	Chebyshev1
	Chebyshev2
	Bessel
	Elliptic
)

func (f Family) String() string {
	switch f {
	case Butterworth:
		return "butterworth"
	case Chebyshev1:
		return "chebyshev1"
	case Chebyshev2:
		return "chebyshev2"
	case Bessel:
		return "bessel"
	case Elliptic:
		return "elliptic"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// ParseFamily converts a family name to its Family value.
func ParseFamily(s string) (Family, error) {
	switch s {
	case "butterworth", "butter":
		return Butterworth, nil
	case "chebyshev1", "cheby1":
		return Chebyshev1, nil
	case "chebyshev2", "cheby2":
		return Chebyshev2, nil
	case "bessel":
		return Bessel, nil
	case "elliptic", "ellip", "cauer":
		return Elliptic, nil
	default:
		return 0, fmt.Errorf("design: unknown family %q", s)
	}
}

// Band selects the filter response shape.
type Band int

const (
	BandLowpass Band = iota
	BandHighpass
	BandBandpass
	BandBandstop
)

func (b Band) String() string {
	switch b {
	case BandLowpass:
		return "lowpass"
	case BandHighpass:
		return "highpass"
	case BandBandpass:
		return "bandpass"
	case BandBandstop:
		return "bandstop"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// ParseBand converts a band name to its Band value.
func ParseBand(s string) (Band, error) {
	switch s {
	case "lowpass", "lp":
		return BandLowpass, nil
	case "highpass", "hp":
		return BandHighpass, nil
	case "bandpass", "bp":
		return BandBandpass, nil
	case "bandstop", "bs", "notch":
		return BandBandstop, nil
	default:
		return 0, fmt.Errorf("design: unknown band %q", s)
	}
}

var (
	ErrInvalidOrder     = errors.New("design: order must be positive")
	ErrInvalidFrequency = errors.New("design: frequency must lie strictly between 0 and Nyquist")
)

// Spec describes a filter to design. Freq is the cutoff for lowpass and
// highpass bands; LowFreq and HighFreq are the edges for bandpass and
// bandstop. For band filters, Order is the lowpass prototype order and the
// resulting filter order is twice that.
type Spec struct {
	Band       Band
	Family     Family
	Order      int
	SampleRate float64

	Freq     float64
	LowFreq  float64
	HighFreq float64

	// RippleDB is the passband ripple (Chebyshev Type I, elliptic);
	// StopbandDB is the stopband attenuation (Chebyshev Type II,
	// elliptic). Both in dB.
	RippleDB   float64
	StopbandDB float64
}

// Validate checks the spec parameters without designing anything.
func (s Spec) Validate() error {
	if s.Order <= 0 {
		return ErrInvalidOrder
	}

	if s.Family == Bessel && s.Order > maxBesselOrder {
		return fmt.Errorf("design: bessel order %d exceeds maximum %d", s.Order, maxBesselOrder)
	}

	if s.SampleRate <= 0 {
		return ErrInvalidFrequency
	}

	nyquist := s.SampleRate / 2

	switch s.Band {
	case BandLowpass, BandHighpass:
		if s.Freq <= 0 || s.Freq >= nyquist {
			return ErrInvalidFrequency
		}
	case BandBandpass, BandBandstop:
		if s.LowFreq <= 0 || s.HighFreq <= s.LowFreq || s.HighFreq >= nyquist {
			return ErrInvalidBand
		}
	default:
		return fmt.Errorf("design: unknown band %v", s.Band)
	}

	return nil
}

// Design computes the biquad cascade described by spec. The returned
// cascade has already passed the stability check that NewCascade performs,
// so it is safe to flatten, export, or process directly.
func Design(spec Spec) (sos.Cascade, error) {
	if err := spec.Validate(); err != nil {
		return sos.Cascade{}, err
	}

	sections, err := designSections(spec)
	if err != nil {
		return sos.Cascade{}, err
	}

	if sections == nil {
		return sos.Cascade{}, ErrInvalidFrequency
	}

	return sos.NewCascade(sections)
}

func designSections(spec Spec) ([]sos.Coefficients, error) {
	switch spec.Band {
	case BandLowpass:
		switch spec.Family {
		case Butterworth:
			return ButterworthLP(spec.Freq, spec.Order, spec.SampleRate), nil
		case Chebyshev1:
			return Chebyshev1LP(spec.Freq, spec.Order, spec.RippleDB, spec.SampleRate), nil
		case Chebyshev2:
			return Chebyshev2LP(spec.Freq, spec.Order, spec.StopbandDB, spec.SampleRate), nil
		case Bessel:
			return BesselLP(spec.Freq, spec.Order, spec.SampleRate), nil
		case Elliptic:
			return EllipticLP(spec.Freq, spec.Order, spec.RippleDB, spec.StopbandDB, spec.SampleRate), nil
		}
	case BandHighpass:
		switch spec.Family {
		case Butterworth:
			return ButterworthHP(spec.Freq, spec.Order, spec.SampleRate), nil
		case Chebyshev1:
			return Chebyshev1HP(spec.Freq, spec.Order, spec.RippleDB, spec.SampleRate), nil
		case Chebyshev2:
			return Chebyshev2HP(spec.Freq, spec.Order, spec.StopbandDB, spec.SampleRate), nil
		case Bessel:
			return BesselHP(spec.Freq, spec.Order, spec.SampleRate), nil
		case Elliptic:
			return EllipticHP(spec.Freq, spec.Order, spec.RippleDB, spec.StopbandDB, spec.SampleRate), nil
		}
	case BandBandpass:
		switch spec.Family {
		case Butterworth:
			return ButterworthBP(spec.LowFreq, spec.HighFreq, spec.Order, spec.SampleRate)
		case Chebyshev1:
			return Chebyshev1BP(spec.LowFreq, spec.HighFreq, spec.Order, spec.RippleDB, spec.SampleRate)
		case Chebyshev2:
			return Chebyshev2BP(spec.LowFreq, spec.HighFreq, spec.Order, spec.StopbandDB, spec.SampleRate)
		case Bessel:
			return BesselBP(spec.LowFreq, spec.HighFreq, spec.Order, spec.SampleRate)
		case Elliptic:
			return EllipticBP(spec.LowFreq, spec.HighFreq, spec.Order, spec.RippleDB, spec.StopbandDB, spec.SampleRate)
		}
	case BandBandstop:
		switch spec.Family {
		case Butterworth:
			return ButterworthBS(spec.LowFreq, spec.HighFreq, spec.Order, spec.SampleRate)
		case Chebyshev1:
			return Chebyshev1BS(spec.LowFreq, spec.HighFreq, spec.Order, spec.RippleDB, spec.SampleRate)
		case Chebyshev2:
			return Chebyshev2BS(spec.LowFreq, spec.HighFreq, spec.Order, spec.StopbandDB, spec.SampleRate)
		case Bessel:
			return BesselBS(spec.LowFreq, spec.HighFreq, spec.Order, spec.SampleRate)
		case Elliptic:
			return EllipticBS(spec.LowFreq, spec.HighFreq, spec.Order, spec.RippleDB, spec.StopbandDB, spec.SampleRate)
		}
	}

	return nil, fmt.Errorf("design: unsupported family %v for band %v", spec.Family, spec.Band)
}
