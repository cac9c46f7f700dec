package design

import (
	"math"
	"testing"

	"github.com/dowhile98/algo-iir/dsp/sos"
)

func TestLowpass_ResponseShape(t *testing.T) {
	sr := 48000.0
	freq := 1000.0
	c := Lowpass(freq, defaultQ, sr)

	if !c.Stable() {
		t.Fatalf("unstable: %+v", c)
	}

	dc := cascadeDB(t, []sos.Coefficients{c}, 1e-3, sr)
	if !almostEqual(dc, 0, 1e-3) {
		t.Errorf("DC gain = %.4f dB, want 0", dc)
	}

	// At cutoff, the RBJ lowpass magnitude equals Q.
	atCut := math.Sqrt(c.MagnitudeSquared(freq, sr))
	if !almostEqual(atCut, defaultQ, 1e-9) {
		t.Errorf("cutoff magnitude = %.10f, want %.10f", atCut, defaultQ)
	}

	nyq := cascadeDB(t, []sos.Coefficients{c}, sr/2*0.999, sr)
	if nyq > -40 {
		t.Errorf("near-Nyquist gain = %.2f dB, want strong attenuation", nyq)
	}
}

func TestHighpass_ResponseShape(t *testing.T) {
	sr := 48000.0
	freq := 1000.0
	c := Highpass(freq, defaultQ, sr)

	if !c.Stable() {
		t.Fatalf("unstable: %+v", c)
	}

	nyq := cascadeDB(t, []sos.Coefficients{c}, sr/2*0.999, sr)
	if !almostEqual(nyq, 0, 1e-2) {
		t.Errorf("near-Nyquist gain = %.4f dB, want 0", nyq)
	}

	atCut := math.Sqrt(c.MagnitudeSquared(freq, sr))
	if !almostEqual(atCut, defaultQ, 1e-9) {
		t.Errorf("cutoff magnitude = %.10f, want %.10f", atCut, defaultQ)
	}

	dc := cascadeDB(t, []sos.Coefficients{c}, 10, sr)
	if dc > -40 {
		t.Errorf("low-frequency gain = %.2f dB, want strong attenuation", dc)
	}
}

func TestBandpass_PeakGainEqualsQ(t *testing.T) {
	sr := 48000.0
	freq := 2000.0

	for _, q := range []float64{0.5, defaultQ, 2, 10} {
		c := Bandpass(freq, q, sr)
		if !c.Stable() {
			t.Fatalf("q=%v: unstable: %+v", q, c)
		}

		peak := math.Sqrt(c.MagnitudeSquared(freq, sr))
		if !almostEqual(peak, q, 1e-9) {
			t.Errorf("q=%v: center magnitude = %.10f, want %.10f", q, peak, q)
		}
	}
}

func TestNotch_NullAtCenter(t *testing.T) {
	sr := 48000.0
	freq := 2000.0
	c := Notch(freq, 5, sr)

	if !c.Stable() {
		t.Fatalf("unstable: %+v", c)
	}

	center := math.Sqrt(c.MagnitudeSquared(freq, sr))
	if center > 1e-9 {
		t.Errorf("center magnitude = %.2e, want ~0", center)
	}

	dc := cascadeDB(t, []sos.Coefficients{c}, 1e-3, sr)
	if !almostEqual(dc, 0, 1e-3) {
		t.Errorf("DC gain = %.4f dB, want 0", dc)
	}
}

func TestAllpass_UnityMagnitude(t *testing.T) {
	sr := 48000.0
	c := Allpass(3000, 1.5, sr)

	if !c.Stable() {
		t.Fatalf("unstable: %+v", c)
	}

	for _, f := range []float64{100, 1000, 3000, 8000, 20000} {
		mag := math.Sqrt(c.MagnitudeSquared(f, sr))
		if !almostEqual(mag, 1, 1e-9) {
			t.Errorf("f=%v: magnitude = %.10f, want 1", f, mag)
		}
	}
}

func TestRBJ_InvalidInputs(t *testing.T) {
	zero := sos.Coefficients{}

	cases := []struct {
		name string
		got  sos.Coefficients
	}{
		{"freq zero", Lowpass(0, 1, 48000)},
		{"freq at Nyquist", Lowpass(24000, 1, 48000)},
		{"freq above Nyquist", Highpass(30000, 1, 48000)},
		{"negative sample rate", Bandpass(1000, 1, -48000)},
		{"NaN freq", Notch(math.NaN(), 1, 48000)},
	}

	for _, tc := range cases {
		if tc.got != zero {
			t.Errorf("%s: got %+v, want zero value", tc.name, tc.got)
		}
	}
}

func TestRBJ_DefaultQ(t *testing.T) {
	sr := 48000.0
	want := Lowpass(1000, defaultQ, sr)

	for _, q := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		got := Lowpass(1000, q, sr)
		if got != want {
			t.Errorf("q=%v: got %+v, want default-Q design %+v", q, got, want)
		}
	}
}
