// Package response measures the realized magnitude response of per-sample
// filters by FFT of their impulse response.
//
// Unlike the closed-form response methods in dsp/filter/biquad, which
// evaluate the transfer function, this package measures what the running
// recurrence actually produces, state handling and wet/dry mixing included.
package response
