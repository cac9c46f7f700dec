package sos

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestCoefficients_Poles(t *testing.T) {
	// (1 - 0.5 z^-1)(1 - 0.25 z^-1) = 1 - 0.75 z^-1 + 0.125 z^-2
	c := Coefficients{B0: 1, A1: -0.75, A2: 0.125}

	poles := c.Poles()
	got := []float64{real(poles[0]), real(poles[1])}
	if !almostEqual(math.Max(got[0], got[1]), 0.5, 1e-12) ||
		!almostEqual(math.Min(got[0], got[1]), 0.25, 1e-12) {
		t.Errorf("poles: got %v, want 0.5 and 0.25", poles)
	}
}

func TestCoefficients_FirstOrderPole(t *testing.T) {
	c := Coefficients{B0: 1, A1: -0.5}

	poles := c.Poles()
	want := [2]complex128{complex(0.5, 0), complex(0, 0)}
	for i := range poles {
		if cmplx.Abs(poles[i]-want[i]) > 1e-12 {
			t.Errorf("pole %d: got %v, want %v", i, poles[i], want[i])
		}
	}
}

func TestCoefficients_MagnitudeSquaredMatchesResponse(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

	const sampleRate = 48000.0
	for _, f := range []float64{10, 100, 1000, 10000, 23000} {
		h := cmplx.Abs(c.Response(f, sampleRate))

		got := c.MagnitudeSquared(f, sampleRate)
		if !almostEqual(got, h*h, 1e-9) {
			t.Errorf("f=%v: closed form %v, response %v", f, got, h*h)
		}
	}
}

func TestCascade_ResponseIsSectionProduct(t *testing.T) {
	c := mustDecode(t, goldenWideLayout(), 2)

	const sampleRate = 1000.0
	for _, f := range []float64{10, 50, 100, 400} {
		want := c.Section(0).Response(f, sampleRate) * c.Section(1).Response(f, sampleRate)

		got := c.Response(f, sampleRate)
		if cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("f=%v: got %v, want %v", f, got, want)
		}
	}
}

func TestCascade_GoldenLowpassDCGain(t *testing.T) {
	// Both golden cascades are unity-gain lowpass designs: ~0 dB at DC.
	for name, flat := range map[string][]float64{
		"narrow": goldenNarrowLayout(),
		"wide":   goldenWideLayout(),
	} {
		c := mustDecode(t, flat, 2)

		// The narrow cascade's b coefficients carry only a few significant
		// digits at 10-decimal export precision, so allow a small gain error.
		db := c.MagnitudeDB(0, 1000)
		if math.Abs(db) > 0.01 {
			t.Errorf("%s: DC gain %v dB, want ~0", name, db)
		}
	}
}

func TestCascade_ImpulseResponseMatchesProcess(t *testing.T) {
	c := mustDecode(t, goldenWideLayout(), 2)

	ir := c.ImpulseResponse(64)

	impulse := make([]float64, 64)
	impulse[0] = 1

	want, err := Process(c, make([]float64, c.StateLen()), impulse)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	for i := range ir {
		if ir[i] != want[i] {
			t.Errorf("sample %d: got %v, want %v", i, ir[i], want[i])
		}
	}

	if got := c.ImpulseResponse(0); got != nil {
		t.Errorf("ImpulseResponse(0): got %v, want nil", got)
	}
}

func TestCascade_MaxPoleMagnitude(t *testing.T) {
	c := mustDecode(t, goldenNarrowLayout(), 2)

	// Complex pole pairs: |p| = sqrt(a2). The larger a2 dominates.
	want := math.Sqrt(0.9762448072)

	got := c.MaxPoleMagnitude()
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("MaxPoleMagnitude: got %v, want %v", got, want)
	}

	if got >= 1 {
		t.Error("stable cascade must have poles inside the unit circle")
	}
}
