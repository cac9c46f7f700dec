package sos

import "math"

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Stable reports whether the section's poles lie strictly inside the unit
// circle, i.e. |A2| < 1 and |A1| < 1 + A2 (the stability triangle).
// First-order sections (A2 = 0) reduce to |A1| < 1.
func (c Coefficients) Stable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// FirstOrder reports whether the section degenerates to first order
// (B2 = 0 and A2 = 0), as produced by odd-order cascade designs.
func (c Coefficients) FirstOrder() bool {
	return c.B2 == 0 && c.A2 == 0
}
