// Package eq provides the coefficient catalog and parameter-driven filter
// unit of an audio equalizer.
//
// [Calculate] maps an [Algorithm] plus the three musical parameters
// (center/cutoff frequency, quality factor Q, boost/cut gain) to a
// normalized biquad coefficient set and a wet/dry mix. Each of the 29
// catalog entries is an independent closed-form design; the catalog spans
// classic one-pole and two-pole responses, Butterworth and Linkwitz-Riley
// sections, shelving and parametric EQ, resonators, matched-magnitude
// (Vicanek) fits, and impulse-invariant lowpass designs.
//
// [Filter] wraps one biquad section with the catalog: parameter setters
// mark the unit dirty, and coefficients are recomputed at most once per
// processing chunk. The per-sample path is allocation-free.
//
// Parameters are taken at face value. Out-of-domain inputs (Q <= 0,
// frequency at or beyond Nyquist) propagate as non-finite coefficients
// rather than errors; callers clamp upstream. The accepted envelope is
// 10–22000 Hz, Q 0.01–10, gain ±36 dB.
package eq
