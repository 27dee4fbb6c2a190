package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// resonantLPF is a resonant lowpass that places its pole pair from the
// resonance the requested Q would produce. With compensate set, the
// passband is scaled down by the resonant peak so the peak itself lands
// near unity; without it the peak rides on a unity passband.
func resonantLPF(freqHz, q float64, compensate bool, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate

	resonanceDB := 0.0
	if q > 0.707 {
		peak := q * q / math.Sqrt(q*q-0.25)
		resonanceDB = 20 * math.Log10(peak)
	}

	r := (math.Cos(theta) + math.Sin(theta)*math.Sqrt(math.Pow(10, resonanceDB/10)-1)) /
		(math.Pow(10, resonanceDB/20)*math.Sin(theta) + 1)

	g := 1.0
	if compensate {
		g = 1 / core.DBToLinear(resonanceDB)
	}

	a1 := -2 * r * math.Cos(theta)
	a2 := r * r

	return biquad.Coefficients{
		B0: g * (1 + a1 + a2),
		A0: 1,
		A1: a1,
		A2: a2,
	}
}

// resonPoles places the conjugate pole pair of the resonators: the radius
// decays exponentially with the bandwidth fc/Q, the angle sits at the
// center frequency.
func resonPoles(freqHz, q, sampleRate float64) (a1, a2 float64) {
	theta := 2 * math.Pi * freqHz / sampleRate
	bw := freqHz / q

	a2 = math.Exp(-2 * math.Pi * bw / sampleRate)
	a1 = (-4 * a2 / (1 + a2)) * math.Cos(theta)

	return a1, a2
}

// resonatorWithZeros is the resonator variant with zeros at DC and
// Nyquist, which removes the low- and high-frequency shelving of the
// all-pole form. The gain term normalizes the peak toward unity.
func resonatorWithZeros(freqHz, q, sampleRate float64) biquad.Coefficients {
	a1, a2 := resonPoles(freqHz, q, sampleRate)
	b0 := (1 - a2) * math.Sqrt(1-a1*a1/(4*a2))

	return biquad.Coefficients{
		B0: b0,
		B2: -b0,
		A0: 1,
		A1: a1,
		A2: a2,
	}
}

// resonator is the plain all-pole resonator.
func resonator(freqHz, q, sampleRate float64) biquad.Coefficients {
	a1, a2 := resonPoles(freqHz, q, sampleRate)

	return biquad.Coefficients{
		B0: 1 - math.Sqrt(a2),
		A0: 1,
		A1: a1,
		A2: a2,
	}
}
