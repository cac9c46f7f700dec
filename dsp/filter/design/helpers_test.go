package design

import (
	"math"
	"testing"

	"github.com/dowhile98/algo-iir/dsp/sos"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// cascadeDB builds a cascade from sections and evaluates its magnitude
// response in dB at freq.
func cascadeDB(t *testing.T, sections []sos.Coefficients, freq, sampleRate float64) float64 {
	t.Helper()

	c, err := sos.NewCascade(sections)
	if err != nil {
		t.Fatalf("NewCascade: %v", err)
	}

	return c.MagnitudeDB(freq, sampleRate)
}

// checkAllStable fails the test if any section violates the stability
// triangle.
func checkAllStable(t *testing.T, sections []sos.Coefficients) {
	t.Helper()

	for i, s := range sections {
		if !s.Stable() {
			t.Fatalf("section %d unstable: %+v", i, s)
		}
	}
}

const minus3dB = -3.0102999566398120 // 10*log10(1/2)
