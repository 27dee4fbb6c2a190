package eq

import "strconv"

// Algorithm selects one of the catalog's filter responses. It is the sole
// dispatch key of [Calculate]; values outside the catalog fall back to a
// unity-gain passthrough.
type Algorithm int

// The filter catalog, in stable index order (0–28).
const (
	// LPF1P is a one-pole lowpass placed directly from the cutoff angle.
	LPF1P Algorithm = iota
	// LPF1 and HPF1 are first-order bilinear-transform designs.
	LPF1
	HPF1
	// LPF2, HPF2, BPF2 and BSF2 are the direct trigonometric two-pole
	// designs with user Q.
	LPF2
	HPF2
	BPF2
	BSF2
	// ButterLPF2..ButterBSF2 are second-order Butterworth sections
	// (fixed sqrt(2) damping; Q shapes only the band variants' width).
	ButterLPF2
	ButterHPF2
	ButterBPF2
	ButterBSF2
	// MMALPF2 is a resonant lowpass with gain compensation for the
	// resonant peak; MMALPF2B is the same design with the compensation
	// disabled.
	MMALPF2
	MMALPF2B
	// LowShelf and HiShelf blend a first-order filtered path scaled by
	// mu-1 against a unity dry path.
	LowShelf
	HiShelf
	// NCQParaEQ is the non-constant-Q parametric EQ (wet/dry form);
	// CQParaEQ is the constant-Q parametric with boost/cut branches.
	NCQParaEQ
	CQParaEQ
	// LWRLPF2 and LWRHPF2 are second-order Linkwitz-Riley crossover
	// sections (-6 dB at the crossover frequency).
	LWRLPF2
	LWRHPF2
	// APF1 and APF2 are first- and second-order allpasses.
	APF1
	APF2
	// ResonA is a resonator with zeros at DC and Nyquist; ResonB omits
	// the zeros.
	ResonA
	ResonB
	// MatchLP2A/MatchBP2A are Vicanek tight-fit magnitude-matched
	// designs; the B variants are the closed-form loose fits.
	MatchLP2A
	MatchLP2B
	MatchBP2A
	MatchBP2B
	// ImpInvLP1 and ImpInvLP2 map the analog pole(s) directly via
	// impulse invariance.
	ImpInvLP1
	ImpInvLP2

	// NumAlgorithms is the catalog size.
	NumAlgorithms int = iota
)

var algorithmNames = [...]string{
	"LPF1P", "LPF1", "HPF1", "LPF2", "HPF2", "BPF2", "BSF2",
	"ButterLPF2", "ButterHPF2", "ButterBPF2", "ButterBSF2",
	"MMALPF2", "MMALPF2B", "LowShelf", "HiShelf",
	"NCQParaEQ", "CQParaEQ", "LWRLPF2", "LWRHPF2",
	"APF1", "APF2", "ResonA", "ResonB",
	"MatchLP2A", "MatchLP2B", "MatchBP2A", "MatchBP2B",
	"ImpInvLP1", "ImpInvLP2",
}

// String returns the catalog name, or "Algorithm(n)" for out-of-range
// values.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}

	return algorithmNames[a]
}

// Valid reports whether a names a catalog entry.
func (a Algorithm) Valid() bool {
	return a >= 0 && int(a) < NumAlgorithms
}

// HasGain reports whether the algorithm uses the boost/cut parameter.
func (a Algorithm) HasGain() bool {
	switch a {
	case LowShelf, HiShelf, NCQParaEQ, CQParaEQ:
		return true
	default:
		return false
	}
}
