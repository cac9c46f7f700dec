package export

import (
	"fmt"
	"strings"

	"github.com/dowhile98/algo-iir/dsp/sos"
)

// DefaultPrecision is the decimal precision used when none is given.
const DefaultPrecision = 10

func normalizePrecision(precision int) int {
	if precision <= 0 {
		return DefaultPrecision
	}
	return precision
}

// CSVTable renders the cascade as a CSV table with one six-column SOS row
// per section. a0 is always 1 in the packed layout.
func CSVTable(c sos.Cascade, precision int) string {
	p := normalizePrecision(precision)

	var sb strings.Builder
	sb.WriteString("Section,b0,b1,b2,a0,a1,a2\n")
	for i, s := range c.Sections() {
		fmt.Fprintf(&sb, "%d,%.*f,%.*f,%.*f,%.*f,%.*f,%.*f\n",
			i+1, p, s.B0, p, s.B1, p, s.B2, p, 1.0, p, s.A1, p, s.A2)
	}
	return sb.String()
}

// MATLABScript renders the cascade as a MATLAB sos matrix assignment
// compatible with fvtool and sosfilt.
func MATLABScript(c sos.Cascade, precision int) string {
	p := normalizePrecision(precision)

	var sb strings.Builder
	sb.WriteString("sos = [\n")
	for _, s := range c.Sections() {
		fmt.Fprintf(&sb, "    %.*f %.*f %.*f %.*f %.*f %.*f;\n",
			p, s.B0, p, s.B1, p, s.B2, p, 1.0, p, s.A1, p, s.A2)
	}
	sb.WriteString("];\n")
	return sb.String()
}

// PythonScript renders the cascade as a NumPy array in scipy sos layout,
// ready for scipy.signal.sosfilt.
func PythonScript(c sos.Cascade, precision int) string {
	p := normalizePrecision(precision)

	var sb strings.Builder
	sb.WriteString("import numpy as np\n\nsos_coeffs = np.array([\n")
	for _, s := range c.Sections() {
		fmt.Fprintf(&sb, "    [%.*f, %.*f, %.*f, %.*f, %.*f, %.*f],\n",
			p, s.B0, p, s.B1, p, s.B2, p, 1.0, p, s.A1, p, s.A2)
	}
	sb.WriteString("])\n")
	return sb.String()
}

// SectionText renders a human-readable per-section dump with the packed
// form on each line, for quick verification in a terminal.
func SectionText(c sos.Cascade) string {
	var sb strings.Builder
	for i, s := range c.Sections() {
		fmt.Fprintf(&sb, "Section %d:\n", i+1)
		fmt.Fprintf(&sb, "  Numerator:   [%.6f, %.6f, %.6f]\n", s.B0, s.B1, s.B2)
		fmt.Fprintf(&sb, "  Denominator: [1.000000, %.6f, %.6f]\n", s.A1, s.A2)
	}
	return sb.String()
}
