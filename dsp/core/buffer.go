package core

// EnsureLen returns buf resized to length n, reusing its capacity when
// possible. Contents beyond a reused prefix are unspecified.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if n <= cap(buf) {
		return buf[:n]
	}

	return make([]float64, n)
}

// Zero clears buf in place.
func Zero(buf []float64) {
	clear(buf)
}
