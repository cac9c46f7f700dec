package signal

import (
	"math"
	"testing"

	"github.com/dowhile98/algo-iir/dsp/core"
)

func TestImpulse(t *testing.T) {
	g := NewGenerator()
	out, err := g.Impulse(0.75, 8)
	if err != nil {
		t.Fatalf("Impulse() error = %v", err)
	}
	for i, v := range out {
		want := 0.0
		if i == 0 {
			want = 0.75
		}
		if v != want {
			t.Fatalf("out[%d]=%v, want %v", i, v, want)
		}
	}
}

func TestStep(t *testing.T) {
	g := NewGenerator()
	out, err := g.Step(0.5, 16)
	if err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	for i, v := range out {
		if v != 0.5 {
			t.Fatalf("out[%d]=%v, want 0.5", i, v)
		}
	}
}

func TestSineQuarterPeriod(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(12000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	// 12 kHz at 48 kHz puts a full cycle on every 4 samples.
	if s[0] != 0 || math.Abs(s[1]-1) > 1e-12 || math.Abs(s[3]+1) > 1e-12 {
		t.Fatalf("unexpected quarter-period values: %v %v %v %v", s[0], s[1], s[2], s[3])
	}
}

func TestMultitoneSingleToneMatchesSine(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	tone, err := g.Multitone([]float64{1000}, 0.5, 64)
	if err != nil {
		t.Fatalf("Multitone() error = %v", err)
	}
	sine, err := g.Sine(1000, 0.5, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	for i := range tone {
		if tone[i] != sine[i] {
			t.Fatalf("mismatch at %d: %v != %v", i, tone[i], sine[i])
		}
	}
}

func TestLinearChirpConstantFrequency(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	chirp, err := g.LinearChirp(1000, 1000, 1, 128)
	if err != nil {
		t.Fatalf("LinearChirp() error = %v", err)
	}
	sine, err := g.Sine(1000, 1, 128)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	for i := range chirp {
		if math.Abs(chirp[i]-sine[i]) > 1e-9 {
			t.Fatalf("mismatch at %d: %v != %v", i, chirp[i], sine[i])
		}
	}
}

func TestLogChirpBounds(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	out, err := g.LogChirp(20, 20000, 1, 4096)
	if err != nil {
		t.Fatalf("LogChirp() error = %v", err)
	}
	if out[0] != 0 {
		t.Fatalf("chirp must start at zero phase, got %v", out[0])
	}
	for i, v := range out {
		if math.Abs(v) > 1 {
			t.Fatalf("out[%d]=%v exceeds amplitude", i, v)
		}
	}
}

func TestPulseTrainDutyCycle(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	out, err := g.PulseTrain(6000, 1, 0.5, 16)
	if err != nil {
		t.Fatalf("PulseTrain() error = %v", err)
	}
	// 6 kHz at 48 kHz gives an 8-sample period; half of it is high.
	for i, v := range out {
		want := 0.0
		if i%8 < 4 {
			want = 1.0
		}
		if v != want {
			t.Fatalf("out[%d]=%v, want %v", i, v, want)
		}
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}
}

func TestWhiteNoiseSeedsDiffer(t *testing.T) {
	a, err := NewGeneratorWithOptions(nil, WithSeed(1)).WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	b, err := NewGeneratorWithOptions(nil, WithSeed(2)).WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestWhiteNoiseBounds(t *testing.T) {
	out, err := NewGenerator().WhiteNoise(0.25, 256)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	for i, v := range out {
		if v < -0.25 || v > 0.25 {
			t.Fatalf("out[%d]=%v outside [-0.25, 0.25]", i, v)
		}
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}
}

func TestGeneratorInvalidInputs(t *testing.T) {
	g := NewGenerator()

	if _, err := g.Sine(1000, 1, 0); err == nil {
		t.Error("zero samples accepted")
	}
	if _, err := g.Impulse(1, -1); err == nil {
		t.Error("negative samples accepted")
	}
	if _, err := g.Multitone(nil, 1, 16); err == nil {
		t.Error("empty frequency list accepted")
	}
	if _, err := g.LogChirp(0, 1000, 1, 16); err == nil {
		t.Error("zero start frequency accepted")
	}
	if _, err := g.PulseTrain(1000, 1, 0, 16); err == nil {
		t.Error("zero duty accepted")
	}
	if _, err := g.PulseTrain(1000, 1, 1.5, 16); err == nil {
		t.Error("duty above 1 accepted")
	}
	if _, err := g.WhiteNoise(-1, 16); err == nil {
		t.Error("negative amplitude accepted")
	}
	if _, err := Normalize(nil, 1); err == nil {
		t.Error("empty normalize input accepted")
	}
}
