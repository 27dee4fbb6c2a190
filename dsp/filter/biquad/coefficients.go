package biquad

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad):
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (A0 + A1*z^-1 + A2*z^-2)
//
// The processing recurrences assume a normalized set (A0 == 1); designers
// that produce an explicit denominator scale call [Coefficients.Normalize]
// before handing the set to a [Section] or [Cascade].
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A0, A1, A2 float64 // feedback (denominator), A0 pinned to 1 after Normalize
}

// Passthrough returns the unity-gain set: B0 = A0 = 1, all else 0.
func Passthrough() Coefficients {
	return Coefficients{B0: 1, A0: 1}
}

// Normalize divides all six coefficients by A0 and pins A0 to exactly 1.
// A zero A0 propagates non-finite values rather than being rejected.
func (c Coefficients) Normalize() Coefficients {
	if c.A0 == 1 {
		return c
	}

	inv := 1 / c.A0

	return Coefficients{
		B0: c.B0 * inv,
		B1: c.B1 * inv,
		B2: c.B2 * inv,
		A0: 1,
		A1: c.A1 * inv,
		A2: c.A2 * inv,
	}
}

// IsFirstOrder reports whether the second-order terms are absent, making
// the set eligible for the one-pole recurrence.
func (c Coefficients) IsFirstOrder() bool {
	return c.B2 == 0 && c.A2 == 0
}
