package export

import (
	"strings"
	"testing"

	"github.com/dowhile98/algo-iir/dsp/sos"
)

func testCascade(t *testing.T) sos.Cascade {
	t.Helper()

	c, err := sos.NewCascade([]sos.Coefficients{
		{B0: 0.5, B1: 1, B2: 0.25, A1: -0.1, A2: 0.2},
		{B0: 0.125, B1: 0.25, B2: 0.125, A1: -0.3, A2: 0.4},
	})
	if err != nil {
		t.Fatalf("NewCascade: %v", err)
	}
	return c
}

func TestToQ15(t *testing.T) {
	cases := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{0.5, 16384},
		{-0.5, -16384},
		{1.0, 32767},
		{-1.0, -32767},
		{2.5, 32767},
	}
	for _, tc := range cases {
		if got := ToQ15(tc.in); got != tc.want {
			t.Errorf("ToQ15(%f) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestToQ31(t *testing.T) {
	if got := ToQ31(0.5); got != 1<<30 {
		t.Errorf("ToQ31(0.5) = %d, want %d", got, 1<<30)
	}
	if got := ToQ31(-0.25); got != -(1 << 29) {
		t.Errorf("ToQ31(-0.25) = %d, want %d", got, -(1 << 29))
	}

	clipped := ToQ31(1.0)
	if clipped != ToQ31(10.0) {
		t.Error("values above 1 should clip to the same code")
	}
	if clipped < 2147483000 {
		t.Errorf("ToQ31(1.0) = %d, want near full scale", clipped)
	}
}

func TestFormatCoefficient(t *testing.T) {
	if got := FormatCoefficient(0.5, Float32); got != "0.5000000000f" {
		t.Errorf("float32: %q", got)
	}
	if got := FormatCoefficient(-0.5, Q15); got != "0xC000" {
		t.Errorf("q15: %q", got)
	}
	if got := FormatCoefficient(0.25, Q31); got != "0x20000000" {
		t.Errorf("q31: %q", got)
	}
}

func TestParseFormAndDataType(t *testing.T) {
	for _, f := range []Form{DF1, DF2T} {
		got, err := ParseForm(strings.ToLower(f.String()))
		if err != nil || got != f {
			t.Errorf("ParseForm(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseForm("df3"); err == nil {
		t.Error("unknown form accepted")
	}

	for _, d := range []DataType{Float32, Q15, Q31} {
		got, err := ParseDataType(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDataType(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDataType("q7"); err == nil {
		t.Error("unknown data type accepted")
	}
}

func TestFormStateSize(t *testing.T) {
	if DF2T.StatePerSection() != 2 {
		t.Errorf("DF2T state = %d, want 2", DF2T.StatePerSection())
	}
	if DF1.StatePerSection() != 4 {
		t.Errorf("DF1 state = %d, want 4", DF1.StatePerSection())
	}
}

func TestCSVTable(t *testing.T) {
	c := testCascade(t)

	out := CSVTable(c, 4)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if lines[0] != "Section,b0,b1,b2,a0,a1,a2" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1,0.5000,1.0000,0.2500,1.0000,-0.1000,0.2000" {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestMATLABScript(t *testing.T) {
	out := MATLABScript(testCascade(t), 4)

	if !strings.HasPrefix(out, "sos = [\n") || !strings.HasSuffix(out, "];\n") {
		t.Fatalf("malformed script:\n%s", out)
	}
	if !strings.Contains(out, "    0.5000 1.0000 0.2500 1.0000 -0.1000 0.2000;\n") {
		t.Errorf("missing section row:\n%s", out)
	}
}

func TestPythonScript(t *testing.T) {
	out := PythonScript(testCascade(t), 4)

	if !strings.HasPrefix(out, "import numpy as np\n") {
		t.Fatalf("missing import:\n%s", out)
	}
	if !strings.Contains(out, "    [0.5000, 1.0000, 0.2500, 1.0000, -0.1000, 0.2000],\n") {
		t.Errorf("missing section row:\n%s", out)
	}
	if !strings.HasSuffix(out, "])\n") {
		t.Errorf("missing array close:\n%s", out)
	}
}

func TestSectionText(t *testing.T) {
	out := SectionText(testCascade(t))

	if !strings.Contains(out, "Section 1:") || !strings.Contains(out, "Section 2:") {
		t.Fatalf("missing section labels:\n%s", out)
	}
	if !strings.Contains(out, "[0.500000, 1.000000, 0.250000]") {
		t.Errorf("missing numerator:\n%s", out)
	}
	if !strings.Contains(out, "[1.000000, -0.100000, 0.200000]") {
		t.Errorf("missing denominator:\n%s", out)
	}
}
