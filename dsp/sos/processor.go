package sos

import "github.com/dowhile98/algo-iir/dsp/core"

// Processor bundles a Cascade with an exclusively owned state buffer for
// the common one-stream case (e.g. one Processor per audio channel).
//
// A Processor must not be shared across concurrently running goroutines.
// The cascade itself is immutable and may back any number of Processors.
type Processor struct {
	cascade Cascade
	state   []float64
}

// NewProcessor creates a processor with zero-initialized state.
func NewProcessor(c Cascade) *Processor {
	return &Processor{
		cascade: c,
		state:   make([]float64, c.StateLen()),
	}
}

// Cascade returns the immutable cascade backing this processor.
func (p *Processor) Cascade() Cascade {
	return p.cascade
}

// ProcessSample filters one input sample and returns the output.
func (p *Processor) ProcessSample(x float64) float64 {
	for s := range p.cascade.sections {
		sec := &p.cascade.sections[s]
		d := p.state[StatePerSection*s:]

		y := sec.B0*x + d[0]
		d[0] = sec.B1*x - sec.A1*y + d[1]
		d[1] = sec.B2*x - sec.A2*y
		x = y
	}

	return x
}

// ProcessBlock filters a block of samples in place. Zero-alloc.
func (p *Processor) ProcessBlock(buf []float64) {
	// State length always matches by construction.
	_ = ProcessInto(p.cascade, p.state, buf, buf)
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (p *Processor) ProcessBlockTo(dst, src []float64) error {
	return ProcessInto(p.cascade, p.state, dst, src)
}

// Reset clears the state buffer to zero.
func (p *Processor) Reset() {
	core.Zero(p.state)
}

// State returns a snapshot of the processing state.
func (p *Processor) State() []float64 {
	out := make([]float64, len(p.state))
	copy(out, p.state)

	return out
}

// SetState restores a previously saved state snapshot.
// The snapshot length must match Cascade.StateLen.
func (p *Processor) SetState(state []float64) error {
	if len(state) != len(p.state) {
		return ErrUninitializedState
	}

	copy(p.state, state)

	return nil
}
