package sos

// Layout constants for the flat interchange format.
const (
	// CoeffsPerSection is the number of serialized values per section:
	// [b0, b1, b2, a1, a2].
	CoeffsPerSection = 5

	// StatePerSection is the number of Direct Form II Transposed state
	// values per section.
	StatePerSection = 2
)

// Cascade is an immutable ordered sequence of validated biquad sections.
// Sections apply in series: the output of section i feeds section i+1.
//
// The zero value is an empty cascade that passes input through unchanged.
// A Cascade never changes after construction and is safe for concurrent
// read-only use; all mutable processing state lives in separate buffers.
type Cascade struct {
	sections []Coefficients
}

// NewCascade builds a cascade from the given sections, validating the
// stability invariant of every section. The input slice is copied.
//
// It fails with *UnstableSectionError naming the first offending section.
func NewCascade(sections []Coefficients) (Cascade, error) {
	for i, s := range sections {
		if !s.Stable() {
			return Cascade{}, &UnstableSectionError{Index: i, A1: s.A1, A2: s.A2}
		}
	}

	out := make([]Coefficients, len(sections))
	copy(out, sections)

	return Cascade{sections: out}, nil
}

// NumSections returns the number of biquad sections.
func (c Cascade) NumSections() int {
	return len(c.sections)
}

// Order returns the nominal filter order (2 per section; first-order
// sections count as 1).
func (c Cascade) Order() int {
	order := 0
	for _, s := range c.sections {
		if s.FirstOrder() {
			order++
		} else {
			order += 2
		}
	}

	return order
}

// StateLen returns the required processing state buffer length,
// StatePerSection values per section.
func (c Cascade) StateLen() int {
	return StatePerSection * len(c.sections)
}

// Section returns the coefficients of the i-th section.
func (c Cascade) Section(i int) Coefficients {
	return c.sections[i]
}

// Sections returns a copy of all section coefficients in processing order.
func (c Cascade) Sections() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	copy(out, c.sections)

	return out
}
