package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Errors returned by response measurement.
var (
	ErrNilProcessor      = errors.New("response: processor is nil")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidFFTSize    = errors.New("response: fft size must be >= 2")
)

// Processor is any per-sample filter whose realized response can be
// measured: a biquad section, a cascade, or an eq filter band.
type Processor interface {
	ProcessSample(x float64) float64
	Reset()
}

// Curve holds a measured magnitude response: one frequency (Hz) and one
// magnitude (dB) per FFT bin from DC up to Nyquist inclusive.
type Curve struct {
	Frequencies []float64
	MagnitudeDB []float64
}

// At returns the measured magnitude (dB) at the bin closest to freqHz.
func (c Curve) At(freqHz float64) float64 {
	if len(c.Frequencies) == 0 {
		return math.NaN()
	}

	best := 0
	bestDist := math.Abs(c.Frequencies[0] - freqHz)

	for i, f := range c.Frequencies[1:] {
		if d := math.Abs(f - freqHz); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}

	return c.MagnitudeDB[best]
}

// config holds options for Measure.
type config struct {
	fftSize int
}

// Option configures a measurement.
type Option func(*config)

// WithFFTSize sets the transform length (and impulse-response length).
// Values that are not powers of two are rounded up. Default is 4096.
func WithFFTSize(n int) Option {
	return func(cfg *config) { cfg.fftSize = n }
}

// Measure captures the processor's impulse response and transforms it to a
// magnitude curve. The processor is reset before the impulse and left in
// the post-measurement state.
//
// The FFT length bounds the measurable decay: very high-Q filters ring
// longer than the default 4096 samples and will show truncation ripple.
func Measure(p Processor, sampleRate float64, opts ...Option) (Curve, error) {
	if p == nil {
		return Curve{}, ErrNilProcessor
	}

	if sampleRate <= 0 {
		return Curve{}, ErrInvalidSampleRate
	}

	cfg := config{fftSize: 4096}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.fftSize < 2 {
		return Curve{}, ErrInvalidFFTSize
	}

	fftSize := nextPowerOf2(cfg.fftSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Curve{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	p.Reset()

	in := make([]complex128, fftSize)
	in[0] = complex(p.ProcessSample(1), 0)

	for i := 1; i < fftSize; i++ {
		in[i] = complex(p.ProcessSample(0), 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Curve{}, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	curve := Curve{
		Frequencies: make([]float64, bins),
		MagnitudeDB: make([]float64, bins),
	}
	for i := range bins {
		curve.Frequencies[i] = float64(i) * sampleRate / float64(fftSize)
		curve.MagnitudeDB[i] = core.LinearToDB(mag[i])
	}

	return curve, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
