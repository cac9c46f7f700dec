package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dowhile98/algo-iir/dsp/core"
)

// Generator creates deterministic test signals from a shared configuration.
// The same generator produces identical output across runs, which keeps
// filter verification sweeps reproducible.
type Generator struct {
	cfg  core.StreamConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.StreamOption) *Generator {
	return &Generator{
		cfg:  core.NewStreamConfig(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.StreamOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.NewStreamConfig(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator stream configuration.
func (g *Generator) Config() core.StreamConfig {
	return g.cfg
}

func (g *Generator) checkSamples(name string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", name, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("%s sample rate must be > 0: %f", name, g.cfg.SampleRate)
	}
	return nil
}

// Impulse generates a unit impulse: amplitude at index 0, zero elsewhere.
func (g *Generator) Impulse(amplitude float64, samples int) ([]float64, error) {
	if err := g.checkSamples("impulse", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	out[0] = amplitude
	return out, nil
}

// Step generates a unit step of the given amplitude.
func (g *Generator) Step(amplitude float64, samples int) ([]float64, error) {
	if err := g.checkSamples("step", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude
	}
	return out, nil
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.checkSamples("sine", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Multitone generates a sum of sine waves at the given frequencies, each
// with the same per-tone amplitude.
func (g *Generator) Multitone(freqsHz []float64, amplitude float64, samples int) ([]float64, error) {
	if err := g.checkSamples("multitone", samples); err != nil {
		return nil, err
	}
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("multitone needs at least one frequency")
	}
	out := make([]float64, samples)
	for _, f := range freqsHz {
		step := 2 * math.Pi * f / g.cfg.SampleRate
		for i := range out {
			out[i] += amplitude * math.Sin(step*float64(i))
		}
	}
	return out, nil
}

// LinearChirp sweeps from startHz to endHz with a linearly increasing
// instantaneous frequency over the requested duration.
func (g *Generator) LinearChirp(startHz, endHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.checkSamples("chirp", samples); err != nil {
		return nil, err
	}
	if startHz < 0 || endHz < 0 {
		return nil, fmt.Errorf("chirp frequencies must be >= 0: %f, %f", startHz, endHz)
	}
	out := make([]float64, samples)
	duration := float64(samples) / g.cfg.SampleRate
	rate := (endHz - startHz) / duration
	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		phase := 2 * math.Pi * (startHz*t + rate*t*t/2)
		out[i] = amplitude * math.Sin(phase)
	}
	return out, nil
}

// LogChirp sweeps from startHz to endHz with an exponentially increasing
// instantaneous frequency, covering each octave in equal time.
func (g *Generator) LogChirp(startHz, endHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.checkSamples("chirp", samples); err != nil {
		return nil, err
	}
	if startHz <= 0 || endHz <= 0 {
		return nil, fmt.Errorf("log chirp frequencies must be > 0: %f, %f", startHz, endHz)
	}
	out := make([]float64, samples)
	duration := float64(samples) / g.cfg.SampleRate
	ratio := endHz / startHz
	if ratio == 1 {
		return g.Sine(startHz, amplitude, samples)
	}
	logRatio := math.Log(ratio)
	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		phase := 2 * math.Pi * startHz * duration * (math.Pow(ratio, t/duration) - 1) / logRatio
		out[i] = amplitude * math.Sin(phase)
	}
	return out, nil
}

// PulseTrain generates a rectangular pulse train with the given repetition
// frequency and duty cycle in (0, 1].
func (g *Generator) PulseTrain(freqHz, amplitude, duty float64, samples int) ([]float64, error) {
	if err := g.checkSamples("pulse train", samples); err != nil {
		return nil, err
	}
	if freqHz <= 0 {
		return nil, fmt.Errorf("pulse train frequency must be > 0: %f", freqHz)
	}
	if duty <= 0 || duty > 1 {
		return nil, fmt.Errorf("pulse train duty must be in (0, 1]: %f", duty)
	}
	out := make([]float64, samples)
	period := g.cfg.SampleRate / freqHz
	for i := range out {
		phase := math.Mod(float64(i), period) / period
		if phase < duty {
			out[i] = amplitude
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
