package export

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/dowhile98/algo-iir/dsp/sos"
)

// Header describes one CMSIS coefficient header to render. Rendering is a
// pure function of this record; validation of the cascade itself happens
// where the cascade is built.
type Header struct {
	Cascade    sos.Cascade
	Form       Form
	DataType   DataType
	SampleRate float64

	// Design metadata, emitted as informational defines.
	FilterType string
	BandType   string
	Order      int
	CutoffHz   float64

	Generated time.Time
}

const cmsisHeaderTemplate = `#ifndef IIR_FILTER_COEFFS_H
#define IIR_FILTER_COEFFS_H

/*
 * IIR biquad cascade coefficients for CMSIS-DSP.
 *
 * Generated: {{.Date}}
 * Form:      {{.Form}} ({{.CoeffsPerSection}} coefficients, {{.StatePerSection}} state values per section)
 */

#include "arm_math.h"

#define IIR_FILTER_SECTIONS     {{.NumSections}}
#define IIR_FILTER_STATE_SIZE   {{.StateSize}}
#define IIR_FILTER_FORMAT       {{.Form}}
#define IIR_FILTER_DATA_TYPE    {{.DataType}}
#define IIR_FILTER_SAMPLE_RATE  {{.SampleRate}}

#define IIR_FILTER_TYPE         "{{.FilterType}}"
#define IIR_FILTER_BAND_TYPE    "{{.BandType}}"
#define IIR_FILTER_ORDER        {{.Order}}
#define IIR_FILTER_CUTOFF       {{.Cutoff}}

static const {{.CType}} iirCoeffs[IIR_FILTER_SECTIONS * {{.CoeffsPerSection}}] = {
{{.Coefficients}}
};

/*
 * Example usage:
 *
 * static {{.CType}} iirState[IIR_FILTER_STATE_SIZE];
 * arm_biquad_casd_{{.FormLower}}_inst_{{.DataType}} iirFilter;
 *
 * void init_iir_filter(void)
 * {
 *     arm_biquad_cascade_{{.FormLower}}_init_{{.DataType}}(
 *         &iirFilter,
 *         IIR_FILTER_SECTIONS,
 *         ({{.CType}} *)iirCoeffs,
 *         iirState);
 * }
 *
 * void process_iir_filter({{.CType}} *input, {{.CType}} *output, uint32_t blockSize)
 * {
 *     arm_biquad_cascade_{{.FormLower}}_{{.DataType}}(
 *         &iirFilter, input, output, blockSize);
 * }
 */

#endif /* IIR_FILTER_COEFFS_H */
`

var headerTmpl = template.Must(template.New("cmsis-header").Parse(cmsisHeaderTemplate))

type headerData struct {
	Date             string
	Form             string
	FormLower        string
	DataType         string
	CType            string
	NumSections      int
	StateSize        int
	StatePerSection  int
	CoeffsPerSection int
	SampleRate       string
	FilterType       string
	BandType         string
	Order            int
	Cutoff           string
	Coefficients     string
}

// RenderCMSISHeader renders h as a complete C header.
func RenderCMSISHeader(h Header) (string, error) {
	if h.Cascade.NumSections() == 0 {
		return "", fmt.Errorf("export: cascade has no sections")
	}

	data := headerData{
		Date:             h.Generated.UTC().Format("2006-01-02 15:04:05 UTC"),
		Form:             h.Form.String(),
		FormLower:        strings.ToLower(h.Form.String()),
		DataType:         h.DataType.String(),
		CType:            h.DataType.CType(),
		NumSections:      h.Cascade.NumSections(),
		StateSize:        h.Cascade.NumSections() * h.Form.StatePerSection(),
		StatePerSection:  h.Form.StatePerSection(),
		CoeffsPerSection: sos.CoeffsPerSection,
		SampleRate:       fmt.Sprintf("%.1f", h.SampleRate),
		FilterType:       h.FilterType,
		BandType:         h.BandType,
		Order:            h.Order,
		Cutoff:           fmt.Sprintf("%.1f", h.CutoffHz),
		Coefficients:     coefficientTable(h.Cascade, h.DataType),
	}

	var sb strings.Builder
	if err := headerTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("export: render header: %w", err)
	}
	return sb.String(), nil
}

// coefficientTable renders the flat table, one section per line.
func coefficientTable(c sos.Cascade, d DataType) string {
	flat := c.Flatten()

	lines := make([]string, 0, len(flat)/sos.CoeffsPerSection)
	for i := 0; i < len(flat); i += sos.CoeffsPerSection {
		parts := make([]string, sos.CoeffsPerSection)
		for j := range parts {
			parts[j] = FormatCoefficient(flat[i+j], d)
		}
		line := "    " + strings.Join(parts, ", ")
		if i+sos.CoeffsPerSection < len(flat) {
			line += ","
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
