package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/dowhile98/algo-iir/dsp/sos"
)

// Analysis holds the sampled frequency response of a filter cascade from DC
// to Nyquist.
type Analysis struct {
	FreqHz      []float64
	Magnitude   []float64
	MagnitudeDB []float64
	PhaseRad    []float64 // unwrapped
	GroupDelay  []float64 // samples
}

// FloorDB is the clamp applied to magnitude bins when converting to dB.
const FloorDB = -300.0

// Analyze samples the frequency response of c on fftSize/2+1 uniformly
// spaced bins by transforming its truncated impulse response.
//
// fftSize must be a size the FFT backend supports and should comfortably
// exceed the filter ring-out; energy still present past fftSize samples
// shows up as truncation error in the sampled response.
func Analyze(c sos.Cascade, fftSize int, sampleRate float64) (*Analysis, error) {
	if fftSize < 2 {
		return nil, fmt.Errorf("spectrum: fft size must be >= 2: %d", fftSize)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrum: sample rate must be > 0: %f", sampleRate)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	h := c.ImpulseResponse(fftSize)
	in := make([]complex128, fftSize)
	for i, v := range h {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	// Real input, so keep the non-negative half only.
	half := out[:fftSize/2+1]

	mag := Magnitude(half)
	phase := UnwrapPhase(Phase(half))
	delay, err := GroupDelayFromPhase(phase, fftSize)
	if err != nil {
		return nil, err
	}

	freqs := make([]float64, len(half))
	binHz := sampleRate / float64(fftSize)
	for i := range freqs {
		freqs[i] = float64(i) * binHz
	}

	return &Analysis{
		FreqHz:      freqs,
		Magnitude:   mag,
		MagnitudeDB: MagnitudeDB(mag, FloorDB),
		PhaseRad:    phase,
		GroupDelay:  delay,
	}, nil
}

// Bin returns the index of the analysis bin closest to freqHz.
func (a *Analysis) Bin(freqHz float64) int {
	if len(a.FreqHz) < 2 {
		return 0
	}
	binHz := a.FreqHz[1] - a.FreqHz[0]
	i := int(freqHz/binHz + 0.5)
	if i < 0 {
		return 0
	}
	if i >= len(a.FreqHz) {
		return len(a.FreqHz) - 1
	}
	return i
}
