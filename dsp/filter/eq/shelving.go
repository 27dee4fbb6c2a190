package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// lowShelf boosts or cuts below the corner frequency. Instead of a single
// transfer function it returns a wet/dry split: the first-order filtered
// path is scaled by mu-1 and added to the untouched dry signal, so 0 dB
// collapses to an exact passthrough.
func lowShelf(freqHz, gainDB, sampleRate float64) (c biquad.Coefficients, wet, dry float64) {
	theta := 2 * math.Pi * freqHz / sampleRate
	mu := core.DBToLinear(gainDB)

	beta := 4 / (1 + mu)
	delta := beta * math.Tan(theta/2)
	gamma := (1 - delta) / (1 + delta)

	c = biquad.Coefficients{
		B0: (1 - gamma) / 2,
		B1: (1 - gamma) / 2,
		A0: 1,
		A1: -gamma,
	}

	return c, mu - 1, 1
}

// hiShelf boosts or cuts above the corner frequency; same wet/dry split as
// the low shelf with the highpass path.
func hiShelf(freqHz, gainDB, sampleRate float64) (c biquad.Coefficients, wet, dry float64) {
	theta := 2 * math.Pi * freqHz / sampleRate
	mu := core.DBToLinear(gainDB)

	beta := (1 + mu) / 4
	delta := beta * math.Tan(theta/2)
	gamma := (1 - delta) / (1 + delta)

	c = biquad.Coefficients{
		B0: (1 + gamma) / 2,
		B1: -(1 + gamma) / 2,
		A0: 1,
		A1: -gamma,
	}

	return c, mu - 1, 1
}
