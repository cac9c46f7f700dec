package design

import (
	"math"
	"math/cmplx"

	"github.com/dowhile98/algo-iir/dsp/sos"
)

// ellipticProto places the analog lowpass prototype poles and zeros of an
// elliptic (Cauer) filter with unit passband edge. Zeros sit on the
// imaginary axis, poles in the left half-plane. For odd orders the single
// real pole is returned separately.
func ellipticProto(order int, rippleDB, attenDB float64) (zeros, poles []complex128, realPole float64) {
	if rippleDB <= 0 {
		rippleDB = 1
	}
	if attenDB <= rippleDB {
		attenDB = rippleDB + 40
	}

	e := math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	es := math.Sqrt(math.Pow(10, attenDB/10) - 1)
	k := ellipDeg(order, e/es)

	jv0 := asne(complex(0, 1/e), e/es) / complex(float64(order), 0)

	half := order / 2
	zeros = make([]complex128, 0, half)
	poles = make([]complex128, 0, half)
	for i := 1; i <= half; i++ {
		ui := complex(float64(2*i-1)/float64(order), 0)
		zeta := cde(ui, k)
		zeros = append(zeros, complex(0, 1)/(complex(k, 0)*zeta))
		poles = append(poles, complex(0, 1)*cde(ui-jv0, k))
	}

	if order%2 != 0 {
		realPole = real(complex(0, 1) * cde(jv0-1, k))
	}

	return zeros, poles, realPole
}

// ellipticRipple returns the linear passband-edge gain 10^(-ripple/20).
func ellipticRipple(rippleDB float64) float64 {
	if rippleDB <= 0 {
		rippleDB = 1
	}

	return 1 / math.Sqrt(math.Pow(10, rippleDB/10))
}

// EllipticLP designs a lowpass elliptic (Cauer) cascade. The passband
// ripples between 0 and -rippleDB with the response passing through
// -rippleDB exactly at freq; the stopband is equiripple with peaks at
// -attenDB.
func EllipticLP(freq float64, order int, rippleDB, attenDB, sampleRate float64) []sos.Coefficients {
	if order <= 0 {
		return nil
	}

	wc, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}

	zeros, poles, realPole := ellipticProto(order, rippleDB, attenDB)
	sections := make([]sos.Coefficients, 0, (order+1)/2)

	for i := range poles {
		wz := cmplx.Abs(zeros[i]) * wc
		pre := real(1/poles[i]) / wc
		pm2 := cmplx.Abs(poles[i]) * wc
		pm2 *= pm2

		// Analog section (1 + s^2/wz^2) / (1 - 2*pre*s + s^2/pm2),
		// then bilinear transform. DC gain is unity per section.
		bn0 := 1 + 1/(wz*wz)
		bn1 := 2 * (1 - 1/(wz*wz))
		bn2 := bn0

		ad0 := 1 - 2*pre + 1/pm2
		ad1 := 2 * (1 - 1/pm2)
		ad2 := 1 + 2*pre + 1/pm2

		sections = append(sections, sos.Coefficients{
			B0: bn0 / ad0,
			B1: bn1 / ad0,
			B2: bn2 / ad0,
			A1: ad1 / ad0,
			A2: ad2 / ad0,
		})
	}

	if order%2 != 0 {
		sp := -realPole * wc
		norm := 1 / (1 + sp)
		sections = append(sections, sos.Coefficients{
			B0: sp * norm,
			B1: sp * norm,
			A1: (sp - 1) * norm,
		})
	} else {
		// Even orders sit at the ripple floor at DC.
		scaleSection(&sections[0], ellipticRipple(rippleDB))
	}

	return sections
}

// EllipticHP designs a highpass elliptic (Cauer) cascade. The passband
// above freq ripples between 0 and -rippleDB with the response passing
// through -rippleDB exactly at freq; the stopband below is equiripple with
// peaks at -attenDB.
func EllipticHP(freq float64, order int, rippleDB, attenDB, sampleRate float64) []sos.Coefficients {
	if order <= 0 {
		return nil
	}

	wc, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}

	zeros, poles, realPole := ellipticProto(order, rippleDB, attenDB)
	sections := make([]sos.Coefficients, 0, (order+1)/2)

	for i := range poles {
		wz1 := cmplx.Abs(zeros[i])
		pre := real(1 / poles[i])
		pm2 := cmplx.Abs(poles[i])
		pm2 *= pm2

		// LP-to-HP transform s -> wc/s on the unit prototype, then
		// bilinear. Nyquist gain is unity per section.
		b0a := wc * wc * pm2 / (wz1 * wz1)
		b2a := pm2

		a0a := wc * wc
		a1a := -2 * pre * pm2 * wc
		a2a := pm2

		bn0 := b0a + b2a
		bn1 := 2 * (b0a - b2a)
		bn2 := bn0

		ad0 := a0a + a1a + a2a
		ad1 := 2 * (a0a - a2a)
		ad2 := a0a - a1a + a2a

		sections = append(sections, sos.Coefficients{
			B0: bn0 / ad0,
			B1: bn1 / ad0,
			B2: bn2 / ad0,
			A1: ad1 / ad0,
			A2: ad2 / ad0,
		})
	}

	if order%2 != 0 {
		sp := -realPole
		norm := 1 / (sp + wc)
		sections = append(sections, sos.Coefficients{
			B0: sp * norm,
			B1: -sp * norm,
			A1: (wc - sp) * norm,
		})
	} else {
		scaleSection(&sections[0], ellipticRipple(rippleDB))
	}

	return sections
}

// EllipticBP designs a bandpass elliptic cascade with passband edges
// lowFreq..highFreq (Hz). order is the lowpass prototype order; the
// resulting filter order is twice that.
func EllipticBP(lowFreq, highFreq float64, order int, rippleDB, attenDB, sampleRate float64) ([]sos.Coefficients, error) {
	alpha, k, err := bandParams(lowFreq, highFreq, sampleRate)
	if err != nil {
		return nil, err
	}

	proto := EllipticLP(sampleRate/4, order, rippleDB, attenDB, sampleRate)
	if proto == nil {
		return nil, ErrInvalidBand
	}

	return lpToBand(proto, -1, alpha, k)
}

// EllipticBS designs a bandstop elliptic cascade with stopband edges
// lowFreq..highFreq (Hz). order is the lowpass prototype order; the
// resulting filter order is twice that.
func EllipticBS(lowFreq, highFreq float64, order int, rippleDB, attenDB, sampleRate float64) ([]sos.Coefficients, error) {
	alpha, k, err := bandParams(lowFreq, highFreq, sampleRate)
	if err != nil {
		return nil, err
	}

	proto := EllipticLP(sampleRate/4, order, rippleDB, attenDB, sampleRate)
	if proto == nil {
		return nil, ErrInvalidBand
	}

	return lpToBand(proto, 1, alpha, k)
}
