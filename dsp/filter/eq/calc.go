package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// maxBandwidthArg caps bandwidth-derived tangent arguments just below
// pi/2, keeping the bilinear transform away from its singularity when the
// requested bandwidth pushes past Nyquist.
const maxBandwidthArg = 0.95 * math.Pi / 2

// Calculate derives the biquad coefficients and wet/dry mix for one
// catalog algorithm from frequency (Hz), Q, boost/cut gain (dB) and the
// sample rate (Hz).
//
// The result starts from the unity passthrough (B0=1, wet=1, dry=0), so an
// algorithm value outside the catalog degrades to unity gain instead of
// failing. The returned set is normalized: A0 is exactly 1.
//
// Inputs are not validated; see the package comment for the accepted
// parameter envelope.
func Calculate(alg Algorithm, freqHz, q, gainDB, sampleRate float64) (c biquad.Coefficients, wet, dry float64) {
	c = biquad.Passthrough()
	wet, dry = 1, 0

	switch alg {
	case LPF1P:
		c = onePoleLPF(freqHz, sampleRate)
	case LPF1:
		c = firstOrderLPF(freqHz, sampleRate)
	case HPF1:
		c = firstOrderHPF(freqHz, sampleRate)
	case APF1:
		c = firstOrderAPF(freqHz, sampleRate)
	case LPF2:
		c = secondOrderLPF(freqHz, q, sampleRate)
	case HPF2:
		c = secondOrderHPF(freqHz, q, sampleRate)
	case BPF2:
		c = secondOrderBPF(freqHz, q, sampleRate)
	case BSF2:
		c = secondOrderBSF(freqHz, q, sampleRate)
	case APF2:
		c = secondOrderAPF(freqHz, q, sampleRate)
	case ButterLPF2:
		c = butterworthLPF(freqHz, sampleRate)
	case ButterHPF2:
		c = butterworthHPF(freqHz, sampleRate)
	case ButterBPF2:
		c = butterworthBPF(freqHz, q, sampleRate)
	case ButterBSF2:
		c = butterworthBSF(freqHz, q, sampleRate)
	case LWRLPF2:
		c = linkwitzRileyLPF(freqHz, sampleRate)
	case LWRHPF2:
		c = linkwitzRileyHPF(freqHz, sampleRate)
	case MMALPF2:
		c = resonantLPF(freqHz, q, true, sampleRate)
	case MMALPF2B:
		c = resonantLPF(freqHz, q, false, sampleRate)
	case ResonA:
		c = resonatorWithZeros(freqHz, q, sampleRate)
	case ResonB:
		c = resonator(freqHz, q, sampleRate)
	case LowShelf:
		c, wet, dry = lowShelf(freqHz, gainDB, sampleRate)
	case HiShelf:
		c, wet, dry = hiShelf(freqHz, gainDB, sampleRate)
	case NCQParaEQ:
		c, wet, dry = parametricNCQ(freqHz, q, gainDB, sampleRate)
	case CQParaEQ:
		c = parametricCQ(freqHz, q, gainDB, sampleRate)
	case MatchLP2A:
		c = matchedLPTight(freqHz, q, sampleRate)
	case MatchLP2B:
		c = matchedLPLoose(freqHz, q, sampleRate)
	case MatchBP2A:
		c = matchedBPTight(freqHz, q, sampleRate)
	case MatchBP2B:
		c = matchedBPLoose(freqHz, q, sampleRate)
	case ImpInvLP1:
		c = impulseInvariantLP1(freqHz, sampleRate)
	case ImpInvLP2:
		c = impulseInvariantLP2(freqHz, q, sampleRate)
	}

	return c.Normalize(), wet, dry
}
