package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// matchedPoles solves the impulse-invariant pole pair shared by all four
// matched-magnitude designs. For q = 1/(2Q) <= 1 the poles are complex and
// the cosine branch applies; past critical damping they are real and the
// hyperbolic branch takes over.
func matchedPoles(theta, bigQ float64) (a1, a2 float64) {
	q := 1 / (2 * bigQ)

	a2 = math.Exp(-2 * q * theta)
	if q <= 1 {
		a1 = -2 * math.Exp(-q*theta) * math.Cos(math.Sqrt(1-q*q)*theta)
	} else {
		a1 = -2 * math.Exp(-q*theta) * math.Cosh(math.Sqrt(q*q-1)*theta)
	}

	return a1, a2
}

// matchedPhis computes the trigonometric weights of the magnitude-matching
// system at the center angle.
func matchedPhis(theta float64) (phi0, phi1, phi2 float64) {
	s := math.Sin(theta / 2)

	phi1 = s * s
	phi0 = 1 - phi1
	phi2 = 4 * phi0 * phi1

	return phi0, phi1, phi2
}

// denomEnergies evaluates the denominator's matching energies from the
// pole coefficients.
func denomEnergies(a1, a2 float64) (e0, e1, e2 float64) {
	e0 = (1 + a1 + a2) * (1 + a1 + a2)
	e1 = (1 - a1 + a2) * (1 - a1 + a2)
	e2 = -4 * a2

	return e0, e1, e2
}

// matchedLPTight solves the exact magnitude-matched quadratic for the
// lowpass numerator. Intermediate energies are clamped non-negative before
// the square roots; rounding can push them slightly below zero near the
// band edges.
func matchedLPTight(freqHz, q, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate

	a1, a2 := matchedPoles(theta, q)
	e0, e1, e2 := denomEnergies(a1, a2)
	phi0, phi1, phi2 := matchedPhis(theta)

	r1 := (e0*phi0 + e1*phi1 + e2*phi2) * q * q

	bb0 := e0
	bb1 := (r1 - bb0*phi0) / phi1

	if bb0 < 0 {
		bb0 = 0
	}

	if bb1 < 0 {
		bb1 = 0
	}

	b0 := 0.5 * (math.Sqrt(bb0) + math.Sqrt(bb1))
	b1 := math.Sqrt(bb0) - b0

	return biquad.Coefficients{
		B0: b0,
		B1: b1,
		A0: 1,
		A1: a1,
		A2: a2,
	}
}

// matchedLPLoose is the closed-form approximation: exact at DC, matched at
// Nyquist against the analog prototype, no clamping.
func matchedLPLoose(freqHz, q, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate
	f0 := theta / math.Pi

	a1, a2 := matchedPoles(theta, q)

	r0 := 1 + a1 + a2
	r1 := (1 - a1 + a2) * f0 * f0 /
		math.Sqrt((1-f0*f0)*(1-f0*f0)+f0*f0/(q*q))

	b0 := (r0 + r1) / 2
	b1 := r0 - b0

	return biquad.Coefficients{
		B0: b0,
		B1: b1,
		A0: 1,
		A1: a1,
		A2: a2,
	}
}

// matchedBPTight solves the magnitude-matched system for the bandpass
// numerator: unity at the peak with zero slope there, zero at DC.
func matchedBPTight(freqHz, q, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate

	a1, a2 := matchedPoles(theta, q)
	e0, e1, e2 := denomEnergies(a1, a2)
	phi0, phi1, phi2 := matchedPhis(theta)

	r1 := e0*phi0 + e1*phi1 + e2*phi2
	r2 := -e0 + e1 + 4*(phi0-phi1)*e2

	bb2 := (r1 - r2*phi1) / (4 * phi1 * phi1)
	bb1 := r2 + 4*(phi1-phi0)*bb2

	if bb1 < 0 {
		bb1 = 0
	}

	if bb2 < 0 {
		bb2 = 0
	}

	b1 := -0.5 * math.Sqrt(bb1)
	b0 := 0.5 * (math.Sqrt(bb2+b1*b1) - b1)
	b2 := -b0 - b1

	return biquad.Coefficients{
		B0: b0,
		B1: b1,
		B2: b2,
		A0: 1,
		A1: a1,
		A2: a2,
	}
}

// matchedBPLoose matches the DC slope and the Nyquist gain of the analog
// bandpass in closed form.
func matchedBPLoose(freqHz, q, sampleRate float64) biquad.Coefficients {
	theta := 2 * math.Pi * freqHz / sampleRate
	f0 := theta / math.Pi

	a1, a2 := matchedPoles(theta, q)

	r0 := (1 + a1 + a2) / (math.Pi * f0 * q)
	r1 := (1 - a1 + a2) * f0 / q /
		math.Sqrt((1-f0*f0)*(1-f0*f0)+f0*f0/(q*q))

	b1 := -r1 / 2
	b0 := (r0 - b1) / 2
	b2 := -b0 - b1

	return biquad.Coefficients{
		B0: b0,
		B1: b1,
		B2: b2,
		A0: 1,
		A1: a1,
		A2: a2,
	}
}
