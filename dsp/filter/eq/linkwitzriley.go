package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// lwrCommon derives the shared kernel of the second-order Linkwitz-Riley
// sections: the squared first-order analog prototype run through the
// bilinear transform. The lowpass and highpass differ only in the
// numerator.
func lwrCommon(freqHz, sampleRate float64) (omega, k, denom float64) {
	omega = math.Pi * freqHz
	theta := math.Pi * freqHz / sampleRate

	k = omega / math.Tan(theta)
	denom = k*k + omega*omega + 2*k*omega

	return omega, k, denom
}

// linkwitzRileyLPF is -6.02 dB at the crossover frequency; two of these in
// series with the matching highpass sum to an allpass.
func linkwitzRileyLPF(freqHz, sampleRate float64) biquad.Coefficients {
	omega, k, denom := lwrCommon(freqHz, sampleRate)

	return biquad.Coefficients{
		B0: omega * omega / denom,
		B1: 2 * omega * omega / denom,
		B2: omega * omega / denom,
		A0: 1,
		A1: (-2*k*k + 2*omega*omega) / denom,
		A2: (-2*k*omega + k*k + omega*omega) / denom,
	}
}

func linkwitzRileyHPF(freqHz, sampleRate float64) biquad.Coefficients {
	omega, k, denom := lwrCommon(freqHz, sampleRate)

	return biquad.Coefficients{
		B0: k * k / denom,
		B1: -2 * k * k / denom,
		B2: k * k / denom,
		A0: 1,
		A1: (-2*k*k + 2*omega*omega) / denom,
		A2: (-2*k*omega + k*k + omega*omega) / denom,
	}
}
