package eq

import "testing"

func TestAlgorithm_String(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		want string
	}{
		{LPF1P, "LPF1P"},
		{ButterBSF2, "ButterBSF2"},
		{CQParaEQ, "CQParaEQ"},
		{ImpInvLP2, "ImpInvLP2"},
		{-1, "Algorithm(-1)"},
		{Algorithm(NumAlgorithms), "Algorithm(29)"},
	}
	for _, tt := range tests {
		if got := tt.alg.String(); got != tt.want {
			t.Errorf("Algorithm(%d).String() = %q, want %q", int(tt.alg), got, tt.want)
		}
	}
}

func TestAlgorithm_NameTableComplete(t *testing.T) {
	if len(algorithmNames) != NumAlgorithms {
		t.Fatalf("name table has %d entries, catalog has %d", len(algorithmNames), NumAlgorithms)
	}
	seen := make(map[string]bool, NumAlgorithms)
	for alg := Algorithm(0); int(alg) < NumAlgorithms; alg++ {
		name := alg.String()
		if name == "" || seen[name] {
			t.Errorf("algorithm %d: bad or duplicate name %q", int(alg), name)
		}
		seen[name] = true
	}
}

func TestAlgorithm_Valid(t *testing.T) {
	if !LPF1P.Valid() || !ImpInvLP2.Valid() {
		t.Error("catalog entries must be valid")
	}
	if Algorithm(-1).Valid() || Algorithm(NumAlgorithms).Valid() {
		t.Error("out-of-range values must be invalid")
	}
}

func TestAlgorithm_HasGain(t *testing.T) {
	gained := map[Algorithm]bool{LowShelf: true, HiShelf: true, NCQParaEQ: true, CQParaEQ: true}
	for alg := Algorithm(0); int(alg) < NumAlgorithms; alg++ {
		if got := alg.HasGain(); got != gained[alg] {
			t.Errorf("%v.HasGain() = %v, want %v", alg, got, gained[alg])
		}
	}
}
