// Command iirdesign designs IIR biquad cascades and exports them as
// CMSIS-DSP coefficient headers or text tables.
//
// Usage:
//
//	iirdesign [flags]
//
// Examples:
//
//	iirdesign -band lowpass -family butterworth -order 4 -freq 1000 -sample-rate 48000
//	iirdesign -band bandpass -low 1000 -high 3000 -order 3 -family chebyshev1 -ripple 0.5
//	iirdesign -band highpass -freq 500 -order 6 -emit header -data-type q31 -o coeffs.h
//	iirdesign -band lowpass -freq 2000 -order 8 -emit matlab
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dowhile98/algo-iir/dsp/filter/design"
	"github.com/dowhile98/algo-iir/dsp/sos"
	"github.com/dowhile98/algo-iir/export"
	"github.com/dowhile98/algo-iir/validate"
)

func main() {
	band := flag.String("band", "lowpass", "filter band: lowpass, highpass, bandpass, bandstop")
	family := flag.String("family", "butterworth", "approximation family: butterworth, chebyshev1, chebyshev2, bessel, elliptic")
	order := flag.Int("order", 4, "filter order (prototype order for band filters)")
	freq := flag.Float64("freq", 1000, "cutoff frequency in Hz (lowpass/highpass)")
	low := flag.Float64("low", 0, "lower band edge in Hz (bandpass/bandstop)")
	high := flag.Float64("high", 0, "upper band edge in Hz (bandpass/bandstop)")
	sampleRate := flag.Float64("sample-rate", 48000, "sample rate in Hz")
	ripple := flag.Float64("ripple", 1, "passband ripple in dB (chebyshev1, elliptic)")
	attenuation := flag.Float64("attenuation", 40, "stopband attenuation in dB (chebyshev2, elliptic)")
	form := flag.String("form", "df2t", "direct form for export: df1, df2t")
	dataType := flag.String("data-type", "float32", "coefficient data type: float32, q15, q31")
	emit := flag.String("emit", "table", "output format: table, header, csv, matlab, python")
	output := flag.String("o", "", "output file (default stdout)")
	noValidate := flag.Bool("no-validate", false, "skip the validation report")
	points := flag.Int("points", 1024, "response sweep points for validation")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: iirdesign [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs an IIR biquad cascade and exports its coefficients.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  iirdesign -band lowpass -order 4 -freq 1000\n")
		fmt.Fprintf(os.Stderr, "  iirdesign -band bandpass -low 1000 -high 3000 -order 3 -family chebyshev1 -ripple 0.5\n")
		fmt.Fprintf(os.Stderr, "  iirdesign -band highpass -freq 500 -order 6 -emit header -data-type q31 -o coeffs.h\n")
	}
	flag.Parse()

	spec, err := buildSpec(*band, *family, *order, *freq, *low, *high, *sampleRate, *ripple, *attenuation)
	if err != nil {
		fail(err)
	}

	cascade, err := design.Design(spec)
	if err != nil {
		fail(fmt.Errorf("design: %w", err))
	}

	out, err := render(cascade, spec, *emit, *form, *dataType)
	if err != nil {
		fail(err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out), 0o644); err != nil {
			fail(err)
		}
		fmt.Printf("wrote %s\n", *output)
	} else {
		fmt.Print(out)
	}

	if !*noValidate {
		printValidation(cascade, spec, *points)
	}
}

func buildSpec(band, family string, order int, freq, low, high, sampleRate, ripple, attenuation float64) (design.Spec, error) {
	b, err := design.ParseBand(band)
	if err != nil {
		return design.Spec{}, err
	}
	f, err := design.ParseFamily(family)
	if err != nil {
		return design.Spec{}, err
	}

	return design.Spec{
		Band:       b,
		Family:     f,
		Order:      order,
		SampleRate: sampleRate,
		Freq:       freq,
		LowFreq:    low,
		HighFreq:   high,
		RippleDB:   ripple,
		StopbandDB: attenuation,
	}, nil
}

func render(c sos.Cascade, spec design.Spec, emit, form, dataType string) (string, error) {
	switch emit {
	case "table":
		return sectionTable(c), nil
	case "csv":
		return export.CSVTable(c, 0), nil
	case "matlab":
		return export.MATLABScript(c, 0), nil
	case "python":
		return export.PythonScript(c, 0), nil
	case "header":
		f, err := export.ParseForm(form)
		if err != nil {
			return "", err
		}
		d, err := export.ParseDataType(dataType)
		if err != nil {
			return "", err
		}

		cutoff := spec.Freq
		if spec.Band == design.BandBandpass || spec.Band == design.BandBandstop {
			cutoff = spec.LowFreq
		}

		return export.RenderCMSISHeader(export.Header{
			Cascade:    c,
			Form:       f,
			DataType:   d,
			SampleRate: spec.SampleRate,
			FilterType: spec.Family.String(),
			BandType:   spec.Band.String(),
			Order:      spec.Order,
			CutoffHz:   cutoff,
			Generated:  time.Now(),
		})
	default:
		return "", fmt.Errorf("unknown output format %q", emit)
	}
}

func sectionTable(c sos.Cascade) string {
	var sb strings.Builder

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Section\tb0\tb1\tb2\ta1\ta2\n")
	fmt.Fprintf(tw, "-------\t--\t--\t--\t--\t--\n")
	for i, s := range c.Sections() {
		fmt.Fprintf(tw, "%d\t%.10f\t%.10f\t%.10f\t%.10f\t%.10f\n",
			i+1, s.B0, s.B1, s.B2, s.A1, s.A2)
	}
	tw.Flush()
	return sb.String()
}

func printValidation(c sos.Cascade, spec design.Spec, points int) {
	resp, err := validate.Response(c, points, spec.SampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: response validation failed: %v\n", err)
		return
	}

	report := validate.Report{
		Stability: validate.Stability(c),
		Response:  resp,
	}

	if spec.Band == design.BandLowpass || spec.Band == design.BandHighpass {
		check := validate.CheckCutoff(resp, spec.Freq, 0)
		report.Cutoff = &check
	}

	causality := validate.Causality(c)
	report.Causality = &causality

	sensitivity := validate.Sensitivity(c, 0, spec.SampleRate)
	report.Sensitivity = &sensitivity

	fmt.Println()
	fmt.Print(report.Render())
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
