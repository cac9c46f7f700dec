package sos

import "fmt"

// Decode parses a flat serialized coefficient layout into a validated
// Cascade. The layout must hold exactly numSections*CoeffsPerSection values,
// grouped [b0, b1, b2, a1, a2] per section with section 0 first.
//
// Decode is pure: it fails with ErrMalformedLayout on a length mismatch and
// with *UnstableSectionError on a stability violation, producing no partial
// result in either case.
func Decode(flat []float64, numSections int) (Cascade, error) {
	if numSections < 0 || len(flat) != numSections*CoeffsPerSection {
		return Cascade{}, fmt.Errorf("%w: %d values for %d sections (want %d)",
			ErrMalformedLayout, len(flat), numSections, numSections*CoeffsPerSection)
	}

	sections := make([]Coefficients, numSections)
	for i := range sections {
		v := flat[i*CoeffsPerSection:]
		sections[i] = Coefficients{
			B0: v[0], B1: v[1], B2: v[2],
			A1: v[3], A2: v[4],
		}
	}

	for i, s := range sections {
		if !s.Stable() {
			return Cascade{}, &UnstableSectionError{Index: i, A1: s.A1, A2: s.A2}
		}
	}

	return Cascade{sections: sections}, nil
}

// Flatten serializes the cascade into the flat interchange layout.
// It is the exact inverse of Decode: the returned values reproduce the
// cascade bit-for-bit when decoded.
func (c Cascade) Flatten() []float64 {
	out := make([]float64, 0, len(c.sections)*CoeffsPerSection)
	for _, s := range c.sections {
		out = append(out, s.B0, s.B1, s.B2, s.A1, s.A2)
	}

	return out
}
