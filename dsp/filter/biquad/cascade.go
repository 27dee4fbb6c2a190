package biquad

import "errors"

// ErrStageMismatch is returned when a cascade is constructed from state and
// coefficient slices of different lengths.
var ErrStageMismatch = errors.New("biquad: state and coefficient counts differ")

// Cascade is an ordered series of biquad sections; each stage's output
// feeds the next stage's input. It realizes higher-order filters from
// second-order pieces.
//
// Stage count and alignment are fixed at construction; processing never
// re-validates them.
type Cascade struct {
	stages []Section
	gain   float64
}

// cascadeConfig holds options for NewCascade.
type cascadeConfig struct {
	gain float64
	form Form
}

// CascadeOption configures a Cascade.
type CascadeOption func(*cascadeConfig)

// WithInputGain sets an overall gain applied to the input before the first
// stage. Default is 1.0 (unity).
func WithInputGain(g float64) CascadeOption {
	return func(cfg *cascadeConfig) { cfg.gain = g }
}

// WithStageForm selects the recurrence used by every stage.
// Default is [FormTransposedII].
func WithStageForm(form Form) CascadeOption {
	return func(cfg *cascadeConfig) { cfg.form = form }
}

// NewCascade creates a cascade from one or more coefficient sets, one stage
// per set, each with zero state.
func NewCascade(coeffs []Coefficients, opts ...CascadeOption) *Cascade {
	cfg := cascadeConfig{gain: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Cascade{
		stages: make([]Section, len(coeffs)),
		gain:   cfg.gain,
	}
	for i := range coeffs {
		c.stages[i].Coefficients = coeffs[i]
		c.stages[i].form = cfg.form
	}

	return c
}

// NewCascadeWithState creates a cascade from paired state and coefficient
// slices, restoring each stage's delay memory. Returns [ErrStageMismatch]
// when the slice lengths differ; the mismatch is a configuration error and
// is rejected here, before any sample is processed.
func NewCascadeWithState(states []State, coeffs []Coefficients, opts ...CascadeOption) (*Cascade, error) {
	if len(states) != len(coeffs) {
		return nil, ErrStageMismatch
	}

	c := NewCascade(coeffs, opts...)
	for i := range states {
		c.stages[i].state = states[i]
	}

	return c, nil
}

// ProcessSample runs one sample through all stages in order.
// If the input gain is not 1, the input is scaled before the first stage.
func (c *Cascade) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.stages {
		x = c.stages[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Cascade) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i, x := range buf {
			buf[i] = x * c.gain
		}
	}

	for i := range c.stages {
		c.stages[i].ProcessBlock(buf)
	}
}

// Reset clears every stage's delay memory.
func (c *Cascade) Reset() {
	for i := range c.stages {
		c.stages[i].Reset()
	}
}

// Order returns the total filter order (2 per full biquad stage).
func (c *Cascade) Order() int {
	return 2 * len(c.stages)
}

// NumStages returns the number of biquad stages.
func (c *Cascade) NumStages() int {
	return len(c.stages)
}

// Stage returns a pointer to the i-th stage for inspection or modification.
func (c *Cascade) Stage(i int) *Section {
	return &c.stages[i]
}

// UpdateCoefficients replaces the per-stage coefficient sets. If the stage
// count is unchanged the delay memory of each stage is preserved, avoiding
// the output discontinuity a fresh zero-state cascade would produce. If the
// count changes the stages are rebuilt with zero state.
func (c *Cascade) UpdateCoefficients(coeffs []Coefficients) {
	if len(coeffs) == len(c.stages) {
		for i := range c.stages {
			c.stages[i].Coefficients = coeffs[i]
		}

		return
	}

	form := FormTransposedII
	if len(c.stages) > 0 {
		form = c.stages[0].form
	}

	c.stages = make([]Section, len(coeffs))
	for i := range coeffs {
		c.stages[i].Coefficients = coeffs[i]
		c.stages[i].form = form
	}
}

// States returns a snapshot of all stage delay memories.
func (c *Cascade) States() []State {
	states := make([]State, len(c.stages))
	for i := range c.stages {
		states[i] = c.stages[i].state
	}

	return states
}
