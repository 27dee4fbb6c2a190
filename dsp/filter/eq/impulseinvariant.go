package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// impulseInvariantLP1 maps the single analog pole at -2*pi*fc straight to
// the z-domain via exp(pole*T), with the numerator scaled for unity DC
// gain.
func impulseInvariantLP1(freqHz, sampleRate float64) biquad.Coefficients {
	t := 1 / sampleRate
	omega := 2 * math.Pi * freqHz
	e := math.Exp(-t * omega)

	return biquad.Coefficients{
		B0: 1 - e,
		A0: 1,
		A1: -e,
	}
}

// impulseInvariantLP2 maps the conjugate pole pair of the second-order
// analog lowpass through exp(p*T). The residues of the partial-fraction
// expansion (cRe +/- i*cIm at poles pRe +/- i*pIm) fix the numerator.
func impulseInvariantLP2(freqHz, q, sampleRate float64) biquad.Coefficients {
	alpha := 2 * math.Pi * freqHz / sampleRate
	zeta := 1 / (2 * q)

	pRe := -alpha * zeta
	pIm := alpha * math.Sqrt(1-zeta*zeta)

	cRe := 0.0
	cIm := alpha / (2 * math.Sqrt(1-zeta*zeta))

	e := math.Exp(pRe)

	return biquad.Coefficients{
		B0: cRe,
		B1: 2 * e * (cIm*math.Sin(pIm) - cRe*math.Cos(pIm)),
		A0: 1,
		A1: -2 * e * math.Cos(pIm),
		A2: math.Exp(2 * pRe),
	}
}
