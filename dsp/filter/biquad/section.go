package biquad

import "github.com/cwbudde/algo-eq/dsp/core"

// Form selects which recurrence a [Section] uses to evaluate its transfer
// function. All forms are algebraically equivalent; they differ in state
// layout and numeric behavior.
type Form int

const (
	// FormTransposedII is the default: two state registers, best behavior
	// under coefficient modulation.
	FormTransposedII Form = iota

	// FormDirectI keeps explicit input and output history.
	FormDirectI

	// FormOnePole is the first-order specialization of FormTransposedII.
	// Only valid for coefficient sets with B2 == A2 == 0.
	FormOnePole
)

// Section is a single biquad filter: one coefficient set, one state, and a
// processing form.
type Section struct {
	Coefficients

	state State
	form  Form
}

// SectionOption configures a Section.
type SectionOption func(*Section)

// WithForm selects the processing recurrence. Default is [FormTransposedII].
func WithForm(form Form) SectionOption {
	return func(s *Section) { s.form = form }
}

// NewSection returns a Section initialized with the given coefficients and
// zero state.
func NewSection(c Coefficients, opts ...SectionOption) *Section {
	s := &Section{Coefficients: c}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Form returns the recurrence this section evaluates.
func (s *Section) Form() Form { return s.form }

// SetCoefficients replaces the coefficient set. The delay memory is
// preserved so a running signal sees no discontinuity beyond the
// transfer-function change itself.
func (s *Section) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	switch s.form {
	case FormDirectI:
		return s.state.DirectFormI(s.Coefficients, x)
	case FormOnePole:
		return s.state.OnePole(s.Coefficients, x)
	default:
		return s.state.TransposedDirectFormII(s.Coefficients, x)
	}
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
//
// The default transposed form runs a 2x-unrolled loop to reduce loop
// overhead in the hot path; the other forms fall back to the per-sample
// recurrence.
func (s *Section) ProcessBlock(buf []float64) {
	if s.form != FormTransposedII {
		for i, x := range buf {
			buf[i] = s.ProcessSample(x)
		}

		return
	}

	s.processBlockUnrolled2(buf)
}

// ProcessBlockTo filters src into dst. Both slices must have the same
// length. Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

func (s *Section) processBlockUnrolled2(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.state.X1, s.state.Y1

	i := 0

	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := core.FlushDenormals(b0*x0 + d0)
		d0n := b1*x0 - a1*y0 + d1
		d1n := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := core.FlushDenormals(b0*x1 + d0n)
		d0 = b1*x1 - a1*y1 + d1n
		d1 = b2*x1 - a2*y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		x := buf[i]
		y := core.FlushDenormals(b0*x + d0)
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.state.X1, s.state.Y1 = d0, d1
}

// Reset clears the delay memory to zero. Coefficients are untouched.
func (s *Section) Reset() {
	s.state.Reset()
}

// State returns a copy of the current delay memory.
func (s *Section) State() State {
	return s.state
}

// SetState restores previously saved delay memory.
func (s *Section) SetState(state State) {
	s.state = state
}
