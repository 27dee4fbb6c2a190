package biquad

import "github.com/cwbudde/algo-eq/dsp/core"

// State is the delay memory of one biquad: the last two inputs and the
// last two outputs. Direct Form I uses all four taps; the transposed form
// repurposes X1/Y1 as its two running registers and leaves X2/Y2 untouched.
//
// A coefficient change never clears the state; call Reset explicitly when
// the memory should be discarded.
type State struct {
	X1, X2 float64 // input history, X1 most recent
	Y1, Y2 float64 // output history, Y1 most recent
}

// Reset clears the delay memory to zero.
func (s *State) Reset() {
	*s = State{}
}

// DirectFormI runs one sample through the Direct Form I recurrence:
//
//	y = B0*x + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// and shifts the input/output history.
func (s *State) DirectFormI(c Coefficients, x float64) float64 {
	y := c.B0*x + c.B1*s.X1 + c.B2*s.X2 - c.A1*s.Y1 - c.A2*s.Y2
	y = core.FlushDenormals(y)

	s.X2 = s.X1
	s.X1 = x
	s.Y2 = s.Y1
	s.Y1 = y

	return y
}

// TransposedDirectFormII runs one sample through the transposed canonical
// recurrence. Only two registers are needed; they live in X1 and Y1:
//
//	y  = B0*x + X1
//	X1 = B1*x - A1*y + Y1
//	Y1 = B2*x - A2*y
//
// The transposed form behaves better numerically when coefficients are
// modulated between samples.
func (s *State) TransposedDirectFormII(c Coefficients, x float64) float64 {
	y := core.FlushDenormals(c.B0*x + s.X1)

	s.X1 = c.B1*x - c.A1*y + s.Y1
	s.Y1 = c.B2*x - c.A2*y

	return y
}

// OnePole is TransposedDirectFormII with the B2/A2 terms elided. On a
// first-order coefficient set it is numerically identical to the full
// transposed recurrence, it just skips the dead second register.
func (s *State) OnePole(c Coefficients, x float64) float64 {
	y := core.FlushDenormals(c.B0*x + s.X1)

	s.X1 = c.B1*x - c.A1*y

	return y
}
