// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Coefficients] value holds one transfer function; [State] holds the
// two-sample input/output memory. The recurrence form (Direct Form I,
// Transposed Direct Form II, or a one-pole specialization of the latter)
// is selectable per [Section]. Multiple sections can be run in
// series via [Cascade] for higher-order filters.
//
// This package provides the processing runtime only. Coefficient design
// (the EQ algorithm catalog) lives in dsp/filter/eq.
package biquad
