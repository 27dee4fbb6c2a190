package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// betaGamma computes the shared beta/gamma substitution of the direct
// trigonometric two-pole designs: beta sets the pole radius from the
// damping d = 1/Q, gamma the pole angle.
func betaGamma(theta, q float64) (beta, gamma float64) {
	d := 1 / q

	num := 1 - (d/2)*math.Sin(theta)
	den := 1 + (d/2)*math.Sin(theta)

	beta = 0.5 * (num / den)
	gamma = (0.5 + beta) * math.Cos(theta)

	return beta, gamma
}

func secondOrderLPF(freqHz, q, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate
	beta, gamma := betaGamma(theta, q)
	alpha := (0.5 + beta - gamma) / 2

	return biquad.Coefficients{
		B0: alpha,
		B1: 2 * alpha,
		B2: alpha,
		A0: 1,
		A1: -2 * gamma,
		A2: 2 * beta,
	}
}

func secondOrderHPF(freqHz, q, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate
	beta, gamma := betaGamma(theta, q)
	alpha := (0.5 + beta + gamma) / 2

	return biquad.Coefficients{
		B0: alpha,
		B1: -2 * alpha,
		B2: alpha,
		A0: 1,
		A1: -2 * gamma,
		A2: 2 * beta,
	}
}

// secondOrderBPF designs a bandpass from the bilinear-transform variable
// K = tan(pi*fc/fs); Q sets the skirt via the shared delta denominator.
func secondOrderBPF(freqHz, q, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freqHz / sampleRate)
	delta := k*k*q + k + q

	return biquad.Coefficients{
		B0: k / delta,
		B2: -k / delta,
		A0: 1,
		A1: 2 * q * (k*k - 1) / delta,
		A2: (k*k*q - k + q) / delta,
	}
}

func secondOrderBSF(freqHz, q, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freqHz / sampleRate)
	delta := k*k*q + k + q

	return biquad.Coefficients{
		B0: q * (1 + k*k) / delta,
		B1: 2 * q * (k*k - 1) / delta,
		B2: q * (1 + k*k) / delta,
		A0: 1,
		A1: 2 * q * (k*k - 1) / delta,
		A2: (k*k*q - k + q) / delta,
	}
}

// secondOrderAPF is a second-order allpass; Q sets the bandwidth of the
// phase transition. The bandwidth angle is clamped below pi/2 so a very
// low Q cannot drive the tangent through its singularity.
func secondOrderAPF(freqHz, q, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate
	bw := freqHz / q

	arg := math.Pi * bw / sampleRate
	if arg >= maxBandwidthArg {
		arg = maxBandwidthArg
	}

	alpha := (math.Tan(arg) - 1) / (math.Tan(arg) + 1)
	beta := -math.Cos(theta)

	return biquad.Coefficients{
		B0: -alpha,
		B1: beta * (1 - alpha),
		B2: 1,
		A0: 1,
		A1: beta * (1 - alpha),
		A2: -alpha,
	}
}
