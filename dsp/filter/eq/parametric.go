package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// parametricNCQ is the non-constant-Q parametric EQ in wet/dry form: the
// bandpass-shaped wet path is scaled by mu-1 over a unity dry path, so the
// perceived bandwidth widens with boost. The tangent argument is clamped
// below pi/2 against low-Q singularities.
func parametricNCQ(freqHz, q, gainDB, sampleRate float64) (c biquad.Coefficients, wet, dry float64) {
	theta := 2 * math.Pi * freqHz / sampleRate
	mu := core.DBToLinear(gainDB)

	arg := theta / (2 * q)
	if arg >= maxBandwidthArg {
		arg = maxBandwidthArg
	}

	zeta := 4 / (1 + mu)
	num := 1 - zeta*math.Tan(arg)
	den := 1 + zeta*math.Tan(arg)

	beta := 0.5 * (num / den)
	gamma := (0.5 + beta) * math.Cos(theta)
	alpha := (0.5 - beta) / 2

	c = biquad.Coefficients{
		B0: alpha,
		B2: -alpha,
		A0: 1,
		A1: -2 * gamma,
		A2: 2 * beta,
	}

	return c, mu - 1, 1
}

// parametricCQ is the constant-Q parametric EQ. Boost and cut are separate
// designs: the cut branch inverts the boost response so symmetric settings
// cancel. The tangent argument is clamped below pi/2 near Nyquist.
func parametricCQ(freqHz, q, gainDB, sampleRate float64) biquad.Coefficients {
	arg := math.Pi * freqHz / sampleRate
	if arg >= maxBandwidthArg {
		arg = maxBandwidthArg
	}

	k := math.Tan(arg)
	vo := core.DBToLinear(gainDB)

	d0 := 1 + k/q + k*k
	e0 := 1 + k/(vo*q) + k*k

	alpha := 1 + vo*k/q + k*k
	beta := 2 * (k*k - 1)
	gamma := 1 - vo*k/q + k*k
	delta := 1 - k/q + k*k
	eta := 1 - k/(vo*q) + k*k

	if gainDB >= 0 {
		return biquad.Coefficients{
			B0: alpha / d0,
			B1: beta / d0,
			B2: gamma / d0,
			A0: 1,
			A1: beta / d0,
			A2: delta / d0,
		}
	}

	return biquad.Coefficients{
		B0: d0 / e0,
		B1: beta / e0,
		B2: delta / e0,
		A0: 1,
		A1: beta / e0,
		A2: eta / e0,
	}
}
