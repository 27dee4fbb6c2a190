package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// onePoleLPF places a single real pole directly from the cutoff angle.
// The pole radius follows from requiring -3 dB at the cutoff.
func onePoleLPF(freqHz, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate
	gamma := 2 - math.Cos(theta)

	a1 := math.Sqrt(gamma*gamma-1) - gamma

	return biquad.Coefficients{
		B0: 1 + a1,
		A0: 1,
		A1: a1,
	}
}

// firstOrderLPF is the bilinear-transform first-order lowpass.
func firstOrderLPF(freqHz, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate
	gamma := math.Cos(theta) / (1 + math.Sin(theta))

	return biquad.Coefficients{
		B0: (1 - gamma) / 2,
		B1: (1 - gamma) / 2,
		A0: 1,
		A1: -gamma,
	}
}

// firstOrderHPF is the bilinear-transform first-order highpass; it shares
// the lowpass pole and mirrors the numerator.
func firstOrderHPF(freqHz, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate
	gamma := math.Cos(theta) / (1 + math.Sin(theta))

	return biquad.Coefficients{
		B0: (1 + gamma) / 2,
		B1: -(1 + gamma) / 2,
		A0: 1,
		A1: -gamma,
	}
}

// firstOrderAPF is a first-order allpass with its 90-degree point at
// freqHz.
func firstOrderAPF(freqHz, sampleRate float64) biquad.Coefficients {
	t := math.Tan(math.Pi * freqHz / sampleRate)
	alpha := (t - 1) / (t + 1)

	return biquad.Coefficients{
		B0: alpha,
		B1: 1,
		A0: 1,
		A1: alpha,
	}
}
