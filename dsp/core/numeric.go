package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits v to the inclusive range [lo, hi]. Swapped bounds are
// accepted and reordered.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return math.Min(math.Max(v, lo), hi)
}

// NearlyEqual reports whether a and b agree within eps, absolutely for
// small magnitudes and relatively otherwise. A non-positive eps falls back
// to 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	scale := math.Max(math.Abs(a), math.Abs(b))

	return scale > 0 && diff/scale <= eps
}

// FlushDenormals replaces values within 1e-30 of zero with exact zero,
// keeping recursive filter state out of the denormal range.
func FlushDenormals(x float64) float64 {
	if math.Abs(x) < 1e-30 {
		return 0
	}

	return x
}

// DBToLinear converts an amplitude in dB to linear (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts a linear amplitude to dB. Zero maps to -Inf,
// negative values to NaN.
func LinearToDB(a float64) float64 {
	switch {
	case a < 0:
		return math.NaN()
	case a == 0:
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// PowerToDB converts a linear power ratio to dB (10*log10 convention).
// Zero maps to -Inf, negative values to NaN.
func PowerToDB(p float64) float64 {
	switch {
	case p < 0:
		return math.NaN()
	case p == 0:
		return math.Inf(-1)
	}

	return 10 * math.Log10(p)
}
