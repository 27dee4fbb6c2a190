package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// butterworthLPF is the bilinear transform of the second-order Butterworth
// lowpass prototype (fixed sqrt(2) damping, maximally flat passband).
func butterworthLPF(freqHz, sampleRate float64) biquad.Coefficients {
	c := 1 / math.Tan(math.Pi*freqHz/sampleRate)
	b0 := 1 / (1 + math.Sqrt2*c + c*c)

	return biquad.Coefficients{
		B0: b0,
		B1: 2 * b0,
		B2: b0,
		A0: 1,
		A1: 2 * b0 * (1 - c*c),
		A2: b0 * (1 - math.Sqrt2*c + c*c),
	}
}

func butterworthHPF(freqHz, sampleRate float64) biquad.Coefficients {
	c := math.Tan(math.Pi * freqHz / sampleRate)
	b0 := 1 / (1 + math.Sqrt2*c + c*c)

	return biquad.Coefficients{
		B0: b0,
		B1: -2 * b0,
		B2: b0,
		A0: 1,
		A1: 2 * b0 * (c*c - 1),
		A2: b0 * (1 - math.Sqrt2*c + c*c),
	}
}

// butterworthBPF maps the Butterworth bandpass prototype with bandwidth
// fc/Q. The half-bandwidth angle is clamped below pi/2 to keep the
// transform finite when the band edges push past Nyquist.
func butterworthBPF(freqHz, q, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate
	bw := freqHz / q

	delta := math.Pi * bw / sampleRate
	if delta >= maxBandwidthArg {
		delta = maxBandwidthArg
	}

	c := 1 / math.Tan(delta)
	d := 2 * math.Cos(theta)
	b0 := 1 / (1 + c)

	return biquad.Coefficients{
		B0: b0,
		B2: -b0,
		A0: 1,
		A1: -b0 * c * d,
		A2: b0 * (c - 1),
	}
}

func butterworthBSF(freqHz, q, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate
	bw := freqHz / q

	delta := math.Pi * bw / sampleRate
	if delta >= maxBandwidthArg {
		delta = maxBandwidthArg
	}

	c := math.Tan(delta)
	d := 2 * math.Cos(theta)
	b0 := 1 / (1 + c)

	return biquad.Coefficients{
		B0: b0,
		B1: -b0 * d,
		B2: b0,
		A0: 1,
		A1: -b0 * d,
		A2: b0 * (1 - c),
	}
}
