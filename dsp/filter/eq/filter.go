package eq

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// Filter is a parameter-driven EQ band: one biquad section plus the wet/dry
// mix, recomputed from the catalog whenever a parameter changed.
//
// Setters only record the new value and mark the unit dirty; the actual
// coefficient derivation runs at the next chunk boundary, at most once per
// boundary. ProcessSample treats every sample as a boundary; ProcessBlock
// checks every updateInterval samples, amortizing the transcendental-heavy
// derivation across the chunk. The chunk length trades parameter-change
// latency against computation and does not alter the output within a chunk.
//
// A Filter is not safe for concurrent use; parameters must be mutated from
// the goroutine that processes samples.
type Filter struct {
	section biquad.Section
	wet     float64
	dry     float64

	alg            Algorithm
	freqHz         float64
	q              float64
	gainDB         float64
	sampleRate     float64
	updateInterval int

	dirty bool
}

// New creates a Filter for the given algorithm. Defaults: 1000 Hz, Q 1.0,
// 0 dB, 48 kHz sample rate, update interval 32, transposed form. The first
// coefficient set is derived immediately.
func New(alg Algorithm, opts ...Option) *Filter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Filter{
		section:        *biquad.NewSection(biquad.Passthrough(), biquad.WithForm(cfg.form)),
		alg:            alg,
		freqHz:         cfg.freqHz,
		q:              cfg.q,
		gainDB:         cfg.gainDB,
		sampleRate:     cfg.sampleRate,
		updateInterval: cfg.updateInterval,
		dirty:          true,
	}
	f.refresh()

	return f
}

// refresh rederives coefficients when a parameter changed since the last
// boundary. The section's delay memory is left alone; a coefficient update
// must not erase filter memory.
func (f *Filter) refresh() {
	if !f.dirty {
		return
	}

	c, wet, dry := Calculate(f.alg, f.freqHz, f.q, f.gainDB, f.sampleRate)
	f.section.SetCoefficients(c)
	f.wet = wet
	f.dry = dry
	f.dirty = false
}

// SetAlgorithm switches the catalog entry and marks the unit dirty.
func (f *Filter) SetAlgorithm(alg Algorithm) {
	if alg == f.alg {
		return
	}

	f.alg = alg
	f.dirty = true
}

// SetFrequency sets the center/cutoff frequency in Hz.
func (f *Filter) SetFrequency(freqHz float64) {
	if freqHz == f.freqHz {
		return
	}

	f.freqHz = freqHz
	f.dirty = true
}

// SetQ sets the quality factor.
func (f *Filter) SetQ(q float64) {
	if q == f.q {
		return
	}

	f.q = q
	f.dirty = true
}

// SetGainDB sets the boost/cut gain in dB. Only the shelving and
// parametric entries respond to it.
func (f *Filter) SetGainDB(gainDB float64) {
	if gainDB == f.gainDB {
		return
	}

	f.gainDB = gainDB
	f.dirty = true
}

// SetSampleRate changes the sample rate and triggers a full coefficient
// recomputation. The delay memory is preserved.
func (f *Filter) SetSampleRate(sampleRate float64) {
	if sampleRate == f.sampleRate {
		return
	}

	f.sampleRate = sampleRate
	f.dirty = true
}

// Algorithm returns the active catalog entry.
func (f *Filter) Algorithm() Algorithm { return f.alg }

// Frequency returns the current center/cutoff frequency in Hz.
func (f *Filter) Frequency() float64 { return f.freqHz }

// Q returns the current quality factor.
func (f *Filter) Q() float64 { return f.q }

// GainDB returns the current boost/cut gain in dB.
func (f *Filter) GainDB() float64 { return f.gainDB }

// SampleRate returns the sample rate the coefficients are derived for.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Coefficients returns the active normalized coefficient set.
func (f *Filter) Coefficients() biquad.Coefficients {
	return f.section.Coefficients
}

// WetDry returns the active mix scalars; output = dry*input + wet*filtered.
func (f *Filter) WetDry() (wet, dry float64) {
	return f.wet, f.dry
}

// ProcessSample refreshes pending parameter changes, runs one sample
// through the section and applies the wet/dry mix.
func (f *Filter) ProcessSample(x float64) float64 {
	f.refresh()

	return f.dry*x + f.wet*f.section.ProcessSample(x)
}

// ProcessBlock filters a block in-place. Pending parameter changes are
// applied every updateInterval samples; within a chunk the coefficients
// are constant.
func (f *Filter) ProcessBlock(buf []float64) {
	for start := 0; start < len(buf); start += f.updateInterval {
		f.refresh()

		end := start + f.updateInterval
		if end > len(buf) {
			end = len(buf)
		}

		for i := start; i < end; i++ {
			x := buf[i]
			buf[i] = f.dry*x + f.wet*f.section.ProcessSample(x)
		}
	}
}

// Reset clears the section's delay memory. Parameters and coefficients are
// untouched.
func (f *Filter) Reset() {
	f.section.Reset()
}

// MagnitudeDB returns the magnitude response of the full band, wet/dry mix
// included, at the given frequency.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	f.refresh()

	h := complex(f.dry, 0) + complex(f.wet, 0)*f.section.Response(freqHz, f.sampleRate)

	return 20 * math.Log10(cmplx.Abs(h))
}
