package sos

import "fmt"

// Process filters input through the cascade using the caller-owned state
// buffer and returns a newly allocated output block of the same length.
//
// The state buffer must have length c.StateLen() and be zero-initialized
// before the first call. Each call continues from the state left by the
// previous one, so consecutive blocks form one continuous stream. The same
// state buffer must never be used by two concurrent callers.
func Process(c Cascade, state, input []float64) ([]float64, error) {
	output := make([]float64, len(input))
	if err := ProcessInto(c, state, output, input); err != nil {
		return nil, err
	}

	return output, nil
}

// ProcessInto filters src into dst through the cascade. dst and src must
// have the same length; dst may alias src for in-place operation. Zero-alloc.
//
// It fails with ErrUninitializedState before any sample is written if the
// state buffer length does not match the cascade.
func ProcessInto(c Cascade, state, dst, src []float64) error {
	if len(state) != c.StateLen() {
		return fmt.Errorf("%w: state length %d, cascade needs %d",
			ErrUninitializedState, len(state), c.StateLen())
	}

	if len(dst) != len(src) {
		return fmt.Errorf("output length %d does not match input length %d", len(dst), len(src))
	}

	for i, x := range src {
		for s := range c.sections {
			sec := &c.sections[s]
			d := state[StatePerSection*s : StatePerSection*s+2 : StatePerSection*s+2]

			y := sec.B0*x + d[0]
			d[0] = sec.B1*x - sec.A1*y + d[1]
			d[1] = sec.B2*x - sec.A2*y
			x = y
		}

		dst[i] = x
	}

	return nil
}

// ProcessInPlace filters buf through the cascade in place.
func ProcessInPlace(c Cascade, state, buf []float64) error {
	return ProcessInto(c, state, buf, buf)
}
