package eq

import "github.com/cwbudde/algo-eq/dsp/filter/biquad"

// config holds construction settings for [New].
type config struct {
	freqHz         float64
	q              float64
	gainDB         float64
	sampleRate     float64
	updateInterval int
	form           biquad.Form
}

func defaultConfig() config {
	return config{
		freqHz:         1000,
		q:              1,
		gainDB:         0,
		sampleRate:     48000,
		updateInterval: 32,
		form:           biquad.FormTransposedII,
	}
}

// Option configures a [Filter] at construction.
type Option func(*config)

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) {
		if sampleRate > 0 {
			cfg.sampleRate = sampleRate
		}
	}
}

// WithFrequency sets the initial center/cutoff frequency in Hz.
func WithFrequency(freqHz float64) Option {
	return func(cfg *config) { cfg.freqHz = freqHz }
}

// WithQ sets the initial quality factor.
func WithQ(q float64) Option {
	return func(cfg *config) { cfg.q = q }
}

// WithGainDB sets the initial boost/cut gain in dB.
func WithGainDB(gainDB float64) Option {
	return func(cfg *config) { cfg.gainDB = gainDB }
}

// WithUpdateInterval sets how many samples ProcessBlock advances between
// parameter-refresh checks. Smaller values cut parameter latency, larger
// ones cut recomputation cost. Default is 32.
func WithUpdateInterval(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.updateInterval = n
		}
	}
}

// WithProcessingForm selects the section's recurrence form.
// Default is [biquad.FormTransposedII].
func WithProcessingForm(form biquad.Form) Option {
	return func(cfg *config) { cfg.form = form }
}
