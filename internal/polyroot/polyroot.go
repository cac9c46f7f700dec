// Package polyroot provides quadratic root helpers shared by the filter
// design code.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when the leading coefficient of a
// polynomial is zero.
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// QuadraticRoots solves a*x^2 + b*x + c = 0 for complex coefficients using
// the numerically stable form of the quadratic formula: the discriminant
// square root is oriented to avoid cancellation, one root comes from the
// large half and the other from c divided by it.
func QuadraticRoots(a, b, c complex128) (complex128, complex128, error) {
	if a == 0 {
		return 0, 0, ErrDegeneratePolynomial
	}

	sq := cmplx.Sqrt(b*b - 4*a*c)
	if real(cmplx.Conj(b)*sq) < 0 {
		sq = -sq
	}

	q := -(b + sq) / 2
	if q == 0 {
		// b and the discriminant root cancel exactly: both roots are zero.
		return 0, 0, nil
	}

	return q / a, c / q, nil
}

// RealQuadraticRoots solves a*x^2 + b*x + c = 0 for real coefficients. Real
// root pairs are computed without complex arithmetic; conjugate pairs come
// out with exactly opposite imaginary parts.
func RealQuadraticRoots(a, b, c float64) (complex128, complex128, error) {
	if a == 0 {
		return 0, 0, ErrDegeneratePolynomial
	}

	disc := b*b - 4*a*c
	if disc >= 0 {
		sq := math.Sqrt(disc)
		if b > 0 {
			sq = -sq
		}

		q := (-b + sq) / 2
		if q == 0 {
			return 0, 0, nil
		}

		return complex(q/a, 0), complex(c/q, 0), nil
	}

	re := -b / (2 * a)
	im := math.Sqrt(-disc) / (2 * math.Abs(a))

	return complex(re, im), complex(re, -im), nil
}
