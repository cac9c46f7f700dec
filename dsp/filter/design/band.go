package design

import (
	"errors"
	"math"

	"github.com/dowhile98/algo-iir/dsp/sos"
	"github.com/dowhile98/algo-iir/internal/polyroot"
)

// ErrInvalidBand is returned when band edge parameters are out of range.
var ErrInvalidBand = errors.New("design: invalid band parameters")

// ButterworthBP designs a bandpass Butterworth cascade with passband edges
// lowFreq..highFreq (Hz). order is the lowpass prototype order; the
// resulting filter order is twice that.
func ButterworthBP(lowFreq, highFreq float64, order int, sampleRate float64) ([]sos.Coefficients, error) {
	alpha, k, err := bandParams(lowFreq, highFreq, sampleRate)
	if err != nil {
		return nil, err
	}

	proto := ButterworthLP(sampleRate/4, order, sampleRate)
	if proto == nil {
		return nil, ErrInvalidBand
	}

	return lpToBand(proto, -1, alpha, k)
}

// ButterworthBS designs a bandstop Butterworth cascade with stopband edges
// lowFreq..highFreq (Hz). order is the lowpass prototype order; the
// resulting filter order is twice that.
func ButterworthBS(lowFreq, highFreq float64, order int, sampleRate float64) ([]sos.Coefficients, error) {
	alpha, k, err := bandParams(lowFreq, highFreq, sampleRate)
	if err != nil {
		return nil, err
	}

	proto := ButterworthLP(sampleRate/4, order, sampleRate)
	if proto == nil {
		return nil, ErrInvalidBand
	}

	return lpToBand(proto, 1, alpha, k)
}

// Chebyshev1BP designs a bandpass Chebyshev Type I cascade with the given
// passband ripple in dB. order is the lowpass prototype order.
func Chebyshev1BP(lowFreq, highFreq float64, order int, rippleDB, sampleRate float64) ([]sos.Coefficients, error) {
	alpha, k, err := bandParams(lowFreq, highFreq, sampleRate)
	if err != nil {
		return nil, err
	}

	proto := Chebyshev1LP(sampleRate/4, order, rippleDB, sampleRate)
	if proto == nil {
		return nil, ErrInvalidBand
	}

	return lpToBand(proto, -1, alpha, k)
}

// Chebyshev1BS designs a bandstop Chebyshev Type I cascade with the given
// passband ripple in dB. order is the lowpass prototype order.
func Chebyshev1BS(lowFreq, highFreq float64, order int, rippleDB, sampleRate float64) ([]sos.Coefficients, error) {
	alpha, k, err := bandParams(lowFreq, highFreq, sampleRate)
	if err != nil {
		return nil, err
	}

	proto := Chebyshev1LP(sampleRate/4, order, rippleDB, sampleRate)
	if proto == nil {
		return nil, ErrInvalidBand
	}

	return lpToBand(proto, 1, alpha, k)
}

// Chebyshev2BP designs a bandpass Chebyshev Type II cascade. rippleDB
// controls the stopband depth. order is the lowpass prototype order.
func Chebyshev2BP(lowFreq, highFreq float64, order int, rippleDB, sampleRate float64) ([]sos.Coefficients, error) {
	alpha, k, err := bandParams(lowFreq, highFreq, sampleRate)
	if err != nil {
		return nil, err
	}

	proto := Chebyshev2LP(sampleRate/4, order, rippleDB, sampleRate)
	if proto == nil {
		return nil, ErrInvalidBand
	}

	return lpToBand(proto, -1, alpha, k)
}

// Chebyshev2BS designs a bandstop Chebyshev Type II cascade. rippleDB
// controls the stopband depth. order is the lowpass prototype order.
func Chebyshev2BS(lowFreq, highFreq float64, order int, rippleDB, sampleRate float64) ([]sos.Coefficients, error) {
	alpha, k, err := bandParams(lowFreq, highFreq, sampleRate)
	if err != nil {
		return nil, err
	}

	proto := Chebyshev2LP(sampleRate/4, order, rippleDB, sampleRate)
	if proto == nil {
		return nil, ErrInvalidBand
	}

	return lpToBand(proto, 1, alpha, k)
}

// BesselBP designs a bandpass Bessel cascade. order is the lowpass
// prototype order (1 to 10).
func BesselBP(lowFreq, highFreq float64, order int, sampleRate float64) ([]sos.Coefficients, error) {
	alpha, k, err := bandParams(lowFreq, highFreq, sampleRate)
	if err != nil {
		return nil, err
	}

	proto := BesselLP(sampleRate/4, order, sampleRate)
	if proto == nil {
		return nil, ErrInvalidBand
	}

	return lpToBand(proto, -1, alpha, k)
}

// BesselBS designs a bandstop Bessel cascade. order is the lowpass
// prototype order (1 to 10).
func BesselBS(lowFreq, highFreq float64, order int, sampleRate float64) ([]sos.Coefficients, error) {
	alpha, k, err := bandParams(lowFreq, highFreq, sampleRate)
	if err != nil {
		return nil, err
	}

	proto := BesselLP(sampleRate/4, order, sampleRate)
	if proto == nil {
		return nil, ErrInvalidBand
	}

	return lpToBand(proto, 1, alpha, k)
}

// bandParams validates the band edges and computes the frequency
// transformation constants alpha = cos((w2+w1)/2)/cos((w2-w1)/2) and
// k = cot((w2-w1)/2).
func bandParams(lowFreq, highFreq, sampleRate float64) (alpha, k float64, err error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, 0, ErrInvalidBand
	}

	nyquist := sampleRate / 2
	if lowFreq <= 0 || highFreq <= lowFreq || highFreq >= nyquist {
		return 0, 0, ErrInvalidBand
	}

	w1 := 2 * math.Pi * lowFreq / sampleRate
	w2 := 2 * math.Pi * highFreq / sampleRate

	cd := math.Cos((w2 - w1) / 2)
	if cd == 0 {
		return 0, 0, ErrInvalidBand
	}

	alpha = math.Cos((w2+w1)/2) / cd

	td := math.Tan((w2 - w1) / 2)
	if td == 0 {
		return 0, 0, ErrInvalidBand
	}

	k = 1 / td

	return alpha, k, nil
}

// lpToBand applies the Constantinides lowpass-to-band digital frequency
// transformation v -> s*P(z^-1)/Q(z^-1) to a lowpass prototype designed at
// a quarter of the sample rate, where v is the prototype delay variable,
// P = (p0, p1, 1) in ascending powers of z^-1 and Q is P reversed. s is -1
// for bandpass and +1 for bandstop.
//
// Each root factor (v - r) of a prototype section maps to the quadratic
// s*P - r*Q, so a second-order prototype section becomes two biquads and a
// first-order section becomes one, without ever forming the fourth-order
// polynomial. The transform is an allpass substitution, so a stable
// prototype always yields a stable result.
func lpToBand(proto []sos.Coefficients, s, alpha, k float64) ([]sos.Coefficients, error) {
	p0 := (k - 1) / (k + 1)
	p1 := -2 * alpha * k / (k + 1)

	sections := make([]sos.Coefficients, 0, 2*len(proto))

	for _, c := range proto {
		if c.FirstOrder() {
			P := [3]float64{p0, p1, 1}
			Q := [3]float64{1, p1, p0}

			var num, den [3]float64
			for i := range 3 {
				num[i] = c.B0*Q[i] + s*c.B1*P[i]
				den[i] = Q[i] + s*c.A1*P[i]
			}

			if den[0] == 0 {
				return nil, ErrInvalidBand
			}

			sections = append(sections, sos.Coefficients{
				B0: num[0] / den[0],
				B1: num[1] / den[0],
				B2: num[2] / den[0],
				A1: den[1] / den[0],
				A2: den[2] / den[0],
			})

			continue
		}

		if c.B2 == 0 || c.A2 == 0 {
			return nil, ErrInvalidBand
		}

		numLead, numQuads, err := bandFactors(c.B2, c.B1, c.B0, s, p0, p1)
		if err != nil {
			return nil, err
		}

		denLead, denQuads, err := bandFactors(c.A2, c.A1, 1, s, p0, p1)
		if err != nil {
			return nil, err
		}

		gain := c.B2 * numLead / (c.A2 * denLead)

		for j := range 2 {
			d0 := denQuads[j][0]
			if d0 == 0 {
				return nil, ErrInvalidBand
			}

			sec := sos.Coefficients{
				B0: numQuads[j][0] / d0,
				B1: numQuads[j][1] / d0,
				B2: numQuads[j][2] / d0,
				A1: denQuads[j][1] / d0,
				A2: denQuads[j][2] / d0,
			}

			// The collected leading coefficients land on the first biquad.
			if j == 0 {
				sec.B0 *= gain
				sec.B1 *= gain
				sec.B2 *= gain
			}

			sections = append(sections, sec)
		}
	}

	return sections, nil
}

// bandFactors factors the quadratic c2*v^2 + c1*v + c0 into its root
// factors and maps each root r through v -> s*P/Q, yielding two real
// quadratics in z^-1 (ascending order, unit leading coefficient) and the
// product of the pre-normalization leading coefficients.
//
// A real root pair maps factor by factor; a conjugate root pair is handled
// by solving the complex image quadratic once and regrouping its roots with
// their conjugates.
func bandFactors(c2, c1, c0, s, p0, p1 float64) (float64, [2][3]float64, error) {
	var quads [2][3]float64

	r1, r2, err := polyroot.RealQuadraticRoots(c2, c1, c0)
	if err != nil {
		return 0, quads, err
	}

	if imag(r1) == 0 {
		lead := 1.0
		for j, r := range [2]float64{real(r1), real(r2)} {
			g0 := s*p0 - r
			g1 := (s - r) * p1
			g2 := s - r*p0
			if g2 == 0 {
				return 0, quads, ErrInvalidBand
			}

			lead *= g2
			quads[j] = [3]float64{g0 / g2, g1 / g2, 1}
		}

		return lead, quads, nil
	}

	// Conjugate pair: map one root, the other contributes the conjugate
	// image roots.
	sc := complex(s, 0)
	g0 := complex(s*p0, 0) - r1
	g1 := (sc - r1) * complex(p1, 0)
	g2 := sc - r1*complex(p0, 0)
	if g2 == 0 {
		return 0, quads, ErrInvalidBand
	}

	z1, z2, err := polyroot.QuadraticRoots(g2, g1, g0)
	if err != nil {
		return 0, quads, err
	}

	for j, z := range [2]complex128{z1, z2} {
		quads[j] = [3]float64{real(z)*real(z) + imag(z)*imag(z), -2 * real(z), 1}
	}

	lead := real(g2)*real(g2) + imag(g2)*imag(g2)

	return lead, quads, nil
}
