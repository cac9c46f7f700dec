package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
}

func TestMagnitudeFromParts(t *testing.T) {
	re := []float64{3, 0, -1}
	im := []float64{4, 2, 0}
	dst := make([]float64, 3)

	MagnitudeFromParts(dst, re, im)
	want := []float64{5, 2, 1}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("dst[%d]=%f want=%f", i, dst[i], want[i])
		}
	}

	PowerFromParts(dst, re, im)
	want = []float64{25, 4, 1}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("power dst[%d]=%f want=%f", i, dst[i], want[i])
		}
	}
}

func TestMagnitudeDB(t *testing.T) {
	out := MagnitudeDB([]float64{1, 0.5, 0, 1e-20}, -120)

	if math.Abs(out[0]) > 1e-12 {
		t.Fatalf("0 dB expected for unity magnitude: %f", out[0])
	}
	if math.Abs(out[1]-20*math.Log10(0.5)) > 1e-12 {
		t.Fatalf("out[1]=%f mismatch", out[1])
	}
	if out[2] != -120 || out[3] != -120 {
		t.Fatalf("floor not applied: %v", out)
	}
}

func TestUnwrapPhase(t *testing.T) {
	in := []float64{2.8, -2.7, -2.6}

	out := UnwrapPhase(in)
	if len(out) != len(in) {
		t.Fatalf("unwrap length mismatch")
	}

	if out[1] <= out[0] {
		t.Fatalf("expected increasing unwrapped phase: %v", out)
	}

	if math.Abs((out[1]-out[0])-(2*math.Pi-5.5)) > 1e-12 {
		t.Fatalf("unexpected unwrap delta: %f", out[1]-out[0])
	}
}

func TestGroupDelayFromPhaseConstantDelay(t *testing.T) {
	fftSize := 1024
	delaySamples := 12.5
	n := 64

	phase := make([]float64, n)
	for k := range phase {
		w := 2 * math.Pi * float64(k) / float64(fftSize)
		phase[k] = -w * delaySamples
	}

	gd, err := GroupDelayFromPhase(phase, fftSize)
	if err != nil {
		t.Fatalf("GroupDelayFromPhase error: %v", err)
	}

	for i, v := range gd {
		if math.Abs(v-delaySamples) > 1e-9 {
			t.Fatalf("gd[%d]=%f want=%f", i, v, delaySamples)
		}
	}
}

func TestGroupDelaySeconds(t *testing.T) {
	phase := []float64{0, -2 * math.Pi / 8, -2 * 2 * math.Pi / 8}

	groupDelay, err := GroupDelaySeconds(phase, 8, 48000)
	if err != nil {
		t.Fatalf("GroupDelaySeconds error: %v", err)
	}

	if len(groupDelay) != len(phase) {
		t.Fatalf("group delay length mismatch")
	}

	if math.Abs(groupDelay[1]-1.0/48000.0) > 1e-12 {
		t.Fatalf("gd[1]=%e want=%e", groupDelay[1], 1.0/48000.0)
	}
}

func TestGroupDelayErrors(t *testing.T) {
	_, err := GroupDelayFromPhase([]float64{1}, 8)
	if err == nil {
		t.Fatalf("expected error for short phase")
	}

	_, err = GroupDelayFromPhase([]float64{1, 2}, 0)
	if err == nil {
		t.Fatalf("expected error for invalid fft size")
	}

	_, err = GroupDelaySeconds([]float64{1, 2}, 8, 0)
	if err == nil {
		t.Fatalf("expected error for invalid sample rate")
	}
}

func TestEmptyInputs(t *testing.T) {
	if Magnitude(nil) != nil {
		t.Error("Magnitude(nil) should be nil")
	}
	if Power(nil) != nil {
		t.Error("Power(nil) should be nil")
	}
	if Phase(nil) != nil {
		t.Error("Phase(nil) should be nil")
	}
	if UnwrapPhase(nil) != nil {
		t.Error("UnwrapPhase(nil) should be nil")
	}
	if MagnitudeDB(nil, -120) != nil {
		t.Error("MagnitudeDB(nil) should be nil")
	}
}
