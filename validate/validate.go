// Package validate checks designed cascades against their intent: pole
// placement and stability margin, per-section realizability, robustness
// under coefficient perturbation, measured frequency response against the
// designed cutoff, and steady-state gain and noise rejection measured on
// actual filtered signals.
package validate

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/dowhile98/algo-iir/dsp/sos"
	"github.com/dowhile98/algo-iir/dsp/spectrum"
	"github.com/dowhile98/algo-iir/internal/polyroot"
)

// SectionPoles holds the pole set of one cascade section.
type SectionPoles struct {
	Index        int
	Poles        []complex128
	MaxMagnitude float64
}

// StabilityReport summarizes pole placement for a whole cascade.
type StabilityReport struct {
	Stable           bool
	Sections         []SectionPoles
	MaxPoleMagnitude float64

	// Margin is 1 - max|p| for a stable cascade and 0 otherwise.
	Margin float64
}

// Stability computes per-section poles and the overall stability margin.
func Stability(c sos.Cascade) StabilityReport {
	report := StabilityReport{
		Stable:   true,
		Sections: make([]SectionPoles, 0, c.NumSections()),
	}

	for i, s := range c.Sections() {
		sp := SectionPoles{Index: i}

		if s.FirstOrder() {
			sp.Poles = []complex128{complex(-s.A1, 0)}
		} else {
			p1, p2, err := polyroot.RealQuadraticRoots(1, s.A1, s.A2)
			if err == nil {
				sp.Poles = []complex128{p1, p2}
			}
		}

		for _, p := range sp.Poles {
			if m := cmplx.Abs(p); m > sp.MaxMagnitude {
				sp.MaxMagnitude = m
			}
		}
		if sp.MaxMagnitude >= 1 {
			report.Stable = false
		}
		if sp.MaxMagnitude > report.MaxPoleMagnitude {
			report.MaxPoleMagnitude = sp.MaxMagnitude
		}

		report.Sections = append(report.Sections, sp)
	}

	if report.Stable {
		report.Margin = 1 - report.MaxPoleMagnitude
	}
	return report
}

// SectionIssue describes one realizability problem found in a section.
type SectionIssue struct {
	Index  int
	Reason string
}

// CausalityReport summarizes per-section realizability checks.
type CausalityReport struct {
	Causal          bool
	SectionsChecked int
	Issues          []SectionIssue
}

// Causality verifies every section is realizable as a causal recurrence.
// Coefficients are stored denominator-normalized, so a vanishing leading
// denominator term cannot survive decoding; the failure modes left to
// check are non-finite values and an all-zero numerator.
func Causality(c sos.Cascade) CausalityReport {
	report := CausalityReport{
		Causal:          true,
		SectionsChecked: c.NumSections(),
	}

	for i, s := range c.Sections() {
		for _, v := range [...]float64{s.B0, s.B1, s.B2, s.A1, s.A2} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				report.Causal = false
				report.Issues = append(report.Issues,
					SectionIssue{Index: i, Reason: "non-finite coefficient"})
				break
			}
		}

		if s.B0 == 0 && s.B1 == 0 && s.B2 == 0 {
			report.Causal = false
			report.Issues = append(report.Issues,
				SectionIssue{Index: i, Reason: "all-zero numerator"})
		}
	}
	return report
}

// ResponseReport holds a sampled magnitude response and the levels derived
// from it.
type ResponseReport struct {
	FreqHz      []float64
	MagnitudeDB []float64

	DCGainDB float64

	// CutoffHz is the first frequency whose magnitude is 3 dB or more
	// below the DC gain, or Nyquist when the response never drops that far.
	CutoffHz float64
}

// Response sweeps the cascade response on points bins from DC to Nyquist.
//
// points must be at least 2 and is rounded to a power of two internally so
// the FFT backend can serve it.
func Response(c sos.Cascade, points int, sampleRate float64) (ResponseReport, error) {
	if points < 2 {
		return ResponseReport{}, fmt.Errorf("validate: response needs at least 2 points: %d", points)
	}

	fftSize := 2
	for fftSize < 2*points {
		fftSize *= 2
	}

	a, err := spectrum.Analyze(c, fftSize, sampleRate)
	if err != nil {
		return ResponseReport{}, err
	}

	report := ResponseReport{
		FreqHz:      a.FreqHz,
		MagnitudeDB: a.MagnitudeDB,
		DCGainDB:    a.MagnitudeDB[0],
	}

	report.CutoffHz = a.FreqHz[len(a.FreqHz)-1]
	for i, db := range a.MagnitudeDB {
		if db <= report.DCGainDB-3 {
			report.CutoffHz = a.FreqHz[i]
			break
		}
	}
	return report, nil
}

// SpecCheck compares a designed cutoff against the measured one.
type SpecCheck struct {
	DesignedCutoffHz float64
	MeasuredCutoffHz float64
	ErrorPercent     float64
	WithinTolerance  bool
}

// DefaultCutoffTolerancePercent is the accepted designed-vs-measured cutoff
// deviation.
const DefaultCutoffTolerancePercent = 10.0

// CheckCutoff compares the measured -3 dB point against the designed
// cutoff. tolerancePercent <= 0 selects the default.
func CheckCutoff(r ResponseReport, designedCutoffHz, tolerancePercent float64) SpecCheck {
	if tolerancePercent <= 0 {
		tolerancePercent = DefaultCutoffTolerancePercent
	}

	check := SpecCheck{
		DesignedCutoffHz: designedCutoffHz,
		MeasuredCutoffHz: r.CutoffHz,
	}
	if designedCutoffHz > 0 {
		check.ErrorPercent = 100 * math.Abs(r.CutoffHz-designedCutoffHz) / designedCutoffHz
	}
	check.WithinTolerance = check.ErrorPercent < tolerancePercent
	return check
}
