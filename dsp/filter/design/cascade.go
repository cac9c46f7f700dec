package design

import (
	"math"

	"github.com/dowhile98/algo-iir/dsp/sos"
)

// bilinearK computes the bilinear transform frequency warping factor
// tan(π*freq/sampleRate). Returns (0, false) if parameters are invalid.
func bilinearK(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return 0, false
	}

	return math.Tan(math.Pi * freq / sampleRate), true
}

// butterworthQ returns the quality factor for a Butterworth section.
// index ranges from 0 to (order/2 - 1) for the biquad sections.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}

	return 1 / (2 * s)
}

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []sos.Coefficients {
	if order <= 0 {
		return nil
	}
	if _, ok := bilinearK(freq, sampleRate); !ok {
		return nil
	}
	sections := make([]sos.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, Lowpass(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderLP(freq, sampleRate))
	}
	return sections
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []sos.Coefficients {
	if order <= 0 {
		return nil
	}
	if _, ok := bilinearK(freq, sampleRate); !ok {
		return nil
	}
	sections := make([]sos.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, Highpass(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderHP(freq, sampleRate))
	}
	return sections
}

// firstOrderLP designs a first-order lowpass section at freq.
// Used for odd-order cascades.
func firstOrderLP(freq, sampleRate float64) sos.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return sos.Coefficients{}
	}
	norm := 1 / (1 + k)

	return sos.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

// firstOrderHP designs a first-order highpass section at freq.
// Used for odd-order cascades.
func firstOrderHP(freq, sampleRate float64) sos.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return sos.Coefficients{}
	}
	norm := 1 / (1 + k)

	return sos.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}

// cheby1Params converts a passband ripple in dB to the prototype constants
// eps = sqrt(10^(r/10) - 1) and mu = asinh(1/eps)/order.
func cheby1Params(order int, rippleDB float64) (eps, mu float64) {
	if rippleDB <= 0 {
		rippleDB = 1
	}

	eps = math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	mu = math.Asinh(1/eps) / float64(order)

	return eps, mu
}

// Chebyshev1LP designs a lowpass Chebyshev Type I cascade with the given
// passband ripple in dB. The passband magnitude ripples between 0 and
// -rippleDB, and the response passes through -rippleDB exactly at freq.
func Chebyshev1LP(freq float64, order int, rippleDB, sampleRate float64) []sos.Coefficients {
	if order <= 0 {
		return nil
	}

	wc, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}
	eps, mu := cheby1Params(order, rippleDB)
	sections := make([]sos.Coefficients, 0, (order+1)/2)

	for i := range order / 2 {
		phi := math.Pi * float64(2*i+1) / float64(2*order)

		// Analog prototype pole pair, scaled by the pre-warped cutoff.
		sigma := math.Sinh(mu) * math.Sin(phi)
		omega := math.Cosh(mu) * math.Cos(phi)
		a := sigma * wc
		b := omega * wc
		p2 := a*a + b*b

		// Bilinear transform, unity DC gain per section.
		a0 := 1 + 2*a + p2
		sections = append(sections, sos.Coefficients{
			B0: p2 / a0,
			B1: 2 * p2 / a0,
			B2: p2 / a0,
			A1: (-2 + 2*p2) / a0,
			A2: (1 - 2*a + p2) / a0,
		})
	}

	if order%2 != 0 {
		sections = append(sections, cheby1FirstOrderLP(wc, mu))
	} else {
		// Even orders sit at the ripple floor at DC.
		scaleSection(&sections[0], 1/math.Sqrt(1+eps*eps))
	}

	return sections
}

// Chebyshev1HP designs a highpass Chebyshev Type I cascade with the given
// passband ripple in dB. The passband magnitude ripples between 0 and
// -rippleDB, and the response passes through -rippleDB exactly at freq.
func Chebyshev1HP(freq float64, order int, rippleDB, sampleRate float64) []sos.Coefficients {
	if order <= 0 {
		return nil
	}

	wc, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}
	eps, mu := cheby1Params(order, rippleDB)
	sections := make([]sos.Coefficients, 0, (order+1)/2)

	for i := range order / 2 {
		phi := math.Pi * float64(2*i+1) / float64(2*order)

		sigma := math.Sinh(mu) * math.Sin(phi)
		omega := math.Cosh(mu) * math.Cos(phi)

		// LP-to-HP transform s -> 1/s, unity Nyquist gain per section.
		p2 := sigma*sigma + omega*omega
		wc2 := wc * wc

		a0 := wc2 + 2*sigma*wc + p2
		sections = append(sections, sos.Coefficients{
			B0: p2 / a0,
			B1: -2 * p2 / a0,
			B2: p2 / a0,
			A1: (2*wc2 - 2*p2) / a0,
			A2: (wc2 - 2*sigma*wc + p2) / a0,
		})
	}

	if order%2 != 0 {
		sections = append(sections, cheby1FirstOrderHP(wc, mu))
	} else {
		scaleSection(&sections[0], 1/math.Sqrt(1+eps*eps))
	}

	return sections
}

func cheby1FirstOrderLP(wc, mu float64) sos.Coefficients {
	sp := math.Sinh(mu) * wc // real prototype pole
	norm := 1 / (1 + sp)

	return sos.Coefficients{
		B0: sp * norm,
		B1: sp * norm,
		A1: (sp - 1) * norm,
	}
}

func cheby1FirstOrderHP(wc, mu float64) sos.Coefficients {
	sigma := math.Sinh(mu)
	norm := 1 / (wc + sigma)

	return sos.Coefficients{
		B0: sigma * norm,
		B1: -sigma * norm,
		A1: (wc - sigma) * norm,
	}
}

// scaleSection applies a gain factor to one section's feed-forward taps.
func scaleSection(c *sos.Coefficients, g float64) {
	c.B0 *= g
	c.B1 *= g
	c.B2 *= g
}

// cheby2Mu converts a stopband attenuation in dB to the Type II prototype
// parameter asinh(sqrt(10^(A/10) - 1))/order, so the stopband ripple peaks
// at exactly -attenDB.
func cheby2Mu(order int, attenDB float64) float64 {
	if attenDB <= 0 {
		attenDB = 40
	}

	return math.Asinh(math.Sqrt(math.Pow(10, attenDB/10)-1)) / float64(order)
}

// Chebyshev2LP designs a lowpass Chebyshev Type II (inverse Chebyshev)
// cascade. The passband is maximally flat with unity DC gain; the stopband
// beyond freq is equiripple with peaks at -attenDB.
func Chebyshev2LP(freq float64, order int, attenDB, sampleRate float64) []sos.Coefficients {
	if order <= 0 {
		return nil
	}

	wc, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}
	mu := cheby2Mu(order, attenDB)
	sections := make([]sos.Coefficients, 0, (order+1)/2)

	for i := range order / 2 {
		phi := math.Pi * float64(2*i+1) / float64(2*order)

		// Type I analog prototype pole components.
		sigma1 := math.Sinh(mu) * math.Sin(phi)
		omega1 := math.Cosh(mu) * math.Cos(phi)

		// Type II inverts the poles and places zeros on the imaginary axis.
		poleMagSq := sigma1*sigma1 + omega1*omega1
		sigmaP := sigma1 / poleMagSq
		omegaP := omega1 / poleMagSq
		omegaZ := 1.0 / math.Cos(phi)

		wpr := wc * sigmaP
		wz := wc * omegaZ
		wp2 := wpr*wpr + (wc*omegaP)*(wc*omegaP)

		// Bilinear transform: s -> (z-1)/(z+1).
		wz2 := wz * wz
		bn0 := 1 + wz2
		bn1 := -2 + 2*wz2
		bn2 := 1 + wz2

		ad0 := 1 + 2*wpr + wp2
		ad1 := -2 + 2*wp2
		ad2 := 1 - 2*wpr + wp2

		b0 := bn0 / ad0
		b1 := bn1 / ad0
		b2 := bn2 / ad0
		a1 := ad1 / ad0
		a2 := ad2 / ad0

		// Unity DC gain (z=1).
		dcGain := (b0 + b1 + b2) / (1 + a1 + a2)
		b0 /= dcGain
		b1 /= dcGain
		b2 /= dcGain

		sections = append(sections, sos.Coefficients{
			B0: b0, B1: b1, B2: b2,
			A1: a1, A2: a2,
		})
	}

	if order%2 != 0 {
		sections = append(sections, cheby2FirstOrderLP(wc, mu))
	}

	return sections
}

// Chebyshev2HP designs a highpass Chebyshev Type II (inverse Chebyshev)
// cascade. The passband above freq is maximally flat with unity Nyquist
// gain; the stopband below freq is equiripple with peaks at -attenDB.
func Chebyshev2HP(freq float64, order int, attenDB, sampleRate float64) []sos.Coefficients {
	if order <= 0 {
		return nil
	}

	wc, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}
	mu := cheby2Mu(order, attenDB)
	sections := make([]sos.Coefficients, 0, (order+1)/2)

	for i := range order / 2 {
		phi := math.Pi * float64(2*i+1) / float64(2*order)

		sigma1 := math.Sinh(mu) * math.Sin(phi)
		omega1 := math.Cosh(mu) * math.Cos(phi)

		// LP-to-HP transform in the analog domain.
		hpSigma := wc * sigma1
		hpOmega := wc * omega1
		hpWz := wc * math.Cos(phi)

		hp2 := hpSigma*hpSigma + hpOmega*hpOmega
		wz2 := hpWz * hpWz

		bn0 := 1 + wz2
		bn1 := -2 + 2*wz2
		bn2 := 1 + wz2

		ad0 := 1 + 2*hpSigma + hp2
		ad1 := -2 + 2*hp2
		ad2 := 1 - 2*hpSigma + hp2

		b0 := bn0 / ad0
		b1 := bn1 / ad0
		b2 := bn2 / ad0
		a1 := ad1 / ad0
		a2 := ad2 / ad0

		// Unity gain at Nyquist (z=-1).
		nyqGain := (b0 - b1 + b2) / (1 - a1 + a2)
		b0 /= nyqGain
		b1 /= nyqGain
		b2 /= nyqGain

		sections = append(sections, sos.Coefficients{
			B0: b0, B1: b1, B2: b2,
			A1: a1, A2: a2,
		})
	}

	if order%2 != 0 {
		sections = append(sections, cheby2FirstOrderHP(wc, mu))
	}

	return sections
}

func cheby2FirstOrderLP(wc, mu float64) sos.Coefficients {
	sp := wc / math.Sinh(mu) // real pole magnitude
	g := sp / (1 + sp)

	return sos.Coefficients{
		B0: g,
		B1: g,
		A1: (sp - 1) / (1 + sp),
	}
}

func cheby2FirstOrderHP(wc, mu float64) sos.Coefficients {
	sp := wc * math.Sinh(mu) // HP-transformed real pole
	g := 1.0 / (1 + sp)

	return sos.Coefficients{
		B0: g,
		B1: -g,
		A1: (sp - 1) / (1 + sp),
	}
}
