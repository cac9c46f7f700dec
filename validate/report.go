package validate

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Report bundles the validation results for one cascade.
type Report struct {
	Stability StabilityReport
	Response  ResponseReport

	// Cutoff is present when a designed cutoff was checked.
	Cutoff *SpecCheck

	// Causality and Sensitivity are present when those checks ran.
	Causality   *CausalityReport
	Sensitivity *SensitivityReport
}

// Render formats the report as human-readable text.
func (r Report) Render() string {
	var sb strings.Builder

	verdict := "STABLE"
	if !r.Stability.Stable {
		verdict = "UNSTABLE"
	}
	fmt.Fprintf(&sb, "Stability: %s (max |p| %.6f, margin %.6f)\n",
		verdict, r.Stability.MaxPoleMagnitude, r.Stability.Margin)

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Section\tPoles\tMax |p|\n")
	for _, s := range r.Stability.Sections {
		fmt.Fprintf(tw, "  %d\t%s\t%.6f\n", s.Index+1, formatPoles(s.Poles), s.MaxMagnitude)
	}
	tw.Flush()

	if len(r.Response.FreqHz) > 0 {
		fmt.Fprintf(&sb, "Response: DC gain %.2f dB, -3 dB cutoff %.1f Hz (%d points)\n",
			r.Response.DCGainDB, r.Response.CutoffHz, len(r.Response.FreqHz))
	}

	if r.Cutoff != nil {
		status := "OK"
		if !r.Cutoff.WithinTolerance {
			status = "OUT OF TOLERANCE"
		}
		fmt.Fprintf(&sb, "Cutoff check: designed %.1f Hz, measured %.1f Hz, error %.2f%% (%s)\n",
			r.Cutoff.DesignedCutoffHz, r.Cutoff.MeasuredCutoffHz, r.Cutoff.ErrorPercent, status)
	}

	if r.Causality != nil {
		verdict := "CAUSAL"
		if !r.Causality.Causal {
			verdict = "NOT CAUSAL"
		}
		fmt.Fprintf(&sb, "Causality: %s (%d sections checked)\n",
			verdict, r.Causality.SectionsChecked)
		for _, issue := range r.Causality.Issues {
			fmt.Fprintf(&sb, "  section %d: %s\n", issue.Index+1, issue.Reason)
		}
	}

	if r.Sensitivity != nil {
		fmt.Fprintf(&sb, "Sensitivity: robustness %.2f (%d/%d stability flips), magnitude change mean %.4f dB, max %.4f dB\n",
			r.Sensitivity.StabilityRobustness, r.Sensitivity.StabilityChanges,
			r.Sensitivity.Trials, r.Sensitivity.MeanMagnitudeChangeDB,
			r.Sensitivity.MaxMagnitudeChangeDB)
	}

	return sb.String()
}

func formatPoles(poles []complex128) string {
	parts := make([]string, len(poles))
	for i, p := range poles {
		if imag(p) == 0 {
			parts[i] = fmt.Sprintf("%.6f", real(p))
		} else {
			parts[i] = fmt.Sprintf("%.6f%+.6fi", real(p), imag(p))
		}
	}
	return strings.Join(parts, ", ")
}
