package design

import (
	"math"
	"math/cmplx"
)

// ellipticTol is the convergence threshold for the Landen recursions.
const ellipticTol = 2.2e-16

// landen returns the descending Landen sequence of moduli for k.
// The sequence decreases quadratically toward zero.
func landen(k float64) []float64 {
	if k == 0 || k == 1 {
		return []float64{k}
	}

	var v []float64
	for k > ellipticTol {
		k = math.Pow(k/(1+math.Sqrt(1-k*k)), 2)
		v = append(v, k)
	}

	return v
}

// ellipK computes the complete elliptic integrals K(k) and K'(k).
// Near the singular moduli it switches to logarithmic expansions; elsewhere
// it uses the Landen product K = (pi/2) * prod(1 + v_i).
func ellipK(k float64) (kk, kp float64) {
	const kmin = 1e-6
	kmax := math.Sqrt(1 - kmin*kmin)

	switch {
	case k == 1:
		kk = math.Inf(1)
	case k > kmax:
		kc := math.Sqrt(1 - k*k)
		l := -math.Log(kc / 4)
		kk = l + (l-1)*kc*kc/4
	default:
		kk = math.Pi / 2
		for _, v := range landen(k) {
			kk *= 1 + v
		}
	}

	switch {
	case k == 0:
		kp = math.Inf(1)
	case k < kmin:
		l := -math.Log(k / 4)
		kp = l + (l-1)*k*k/4
	default:
		kc := math.Sqrt(1 - k*k)
		kp = math.Pi / 2
		for _, v := range landen(kc) {
			kp *= 1 + v
		}
	}

	return kk, kp
}

// srem reduces x modulo y into the symmetric interval [-y/2, y/2].
func srem(x, y float64) float64 {
	z := math.Remainder(x, y)
	if math.Abs(z) > y/2 {
		z -= y * math.Copysign(1, z)
	}

	return z
}

// acde computes the inverse Jacobi cd function in quarter-period units,
// descending the Landen sequence until cd degenerates to a cosine. The
// result is reduced to the fundamental period rectangle.
func acde(w complex128, k float64) complex128 {
	v := landen(k)
	for i := range v {
		prev := k
		if i > 0 {
			prev = v[i-1]
		}
		w = w / (1 + cmplx.Sqrt(1-w*w*complex(prev*prev, 0))) * 2 / complex(1+v[i], 0)
	}

	u := cmplx.Acos(w) * complex(2/math.Pi, 0)
	kk, kp := ellipK(k)

	return complex(srem(real(u), 4), srem(imag(u), 2*kp/kk))
}

// asne computes the inverse Jacobi sn function via the quarter-period
// identity sn(u) = cd(u - 1).
func asne(w complex128, k float64) complex128 {
	return 1 - acde(w, k)
}

// cde evaluates the Jacobi cd function at u given in quarter-period units,
// ascending the Landen sequence from the trigonometric limit.
func cde(u complex128, k float64) complex128 {
	v := landen(k)
	w := cmplx.Cos(u * complex(math.Pi/2, 0))
	for i := len(v) - 1; i >= 0; i-- {
		w = complex(1+v[i], 0) * w / (1 + complex(v[i], 0)*w*w)
	}

	return w
}

// sne evaluates the Jacobi sn function at real arguments in quarter-period
// units, ascending the Landen sequence from the trigonometric limit.
func sne(u []float64, k float64) []float64 {
	v := landen(k)
	w := make([]float64, len(u))
	for i, x := range u {
		w[i] = math.Sin(x * math.Pi / 2)
	}
	for i := len(v) - 1; i >= 0; i-- {
		for j := range w {
			w[j] = (1 + v[i]) * w[j] / (1 + v[i]*w[j]*w[j])
		}
	}

	return w
}

// ellipDegSmall solves the degree equation for very small k1 using the nome
// q and a truncated theta series, where the direct sn product loses
// precision.
func ellipDegSmall(n, k1 float64) float64 {
	const terms = 7

	kk, kp := ellipK(k1)
	q := math.Pow(math.Exp(-math.Pi*kp/kk), n)

	var s1, s2 float64
	for i := 1; i <= terms; i++ {
		s1 += math.Pow(q, float64(i*(i+1)))
		s2 += math.Pow(q, float64(i*i))
	}

	return 4 * math.Sqrt(q) * math.Pow((1+s1)/(1+2*s2), 2)
}

// ellipDeg solves the degree equation of elliptic filter design: given the
// order and the ripple selectivity k1 = e/es, it returns the modulus k that
// fixes the transition band.
func ellipDeg(order int, k1 float64) float64 {
	const kmin = 1e-6
	if k1 < kmin {
		return ellipDegSmall(1/float64(order), k1)
	}

	half := order / 2
	ui := make([]float64, 0, half)
	for i := 1; i <= half; i++ {
		ui = append(ui, float64(2*i-1)/float64(order))
	}

	kc := math.Sqrt(1 - k1*k1)
	prod := 1.0
	for _, w := range sne(ui, kc) {
		prod *= w
	}

	kp := math.Pow(kc, float64(order)) * math.Pow(prod, 4)

	return math.Sqrt(1 - kp*kp)
}
