package biquad

import (
	"math"
	"testing"
)

// simpleLowpass returns a two-tap average:
// H(z) = 0.5*(1 + z^-1).
func simpleLowpass() Coefficients {
	return Coefficients{B0: 0.5, B1: 0.5, A0: 1}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A0: 1, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	if s.State() != (State{}) {
		t.Fatalf("initial state not zero: %v", s.State())
	}
	if s.Form() != FormTransposedII {
		t.Fatalf("default form: got %v, want FormTransposedII", s.Form())
	}
}

func TestNewSection_WithForm(t *testing.T) {
	s := NewSection(Passthrough(), WithForm(FormDirectI))
	if s.Form() != FormDirectI {
		t.Fatalf("form: got %v, want FormDirectI", s.Form())
	}
}

func TestProcessSample_Passthrough(t *testing.T) {
	s := NewSection(Passthrough())
	input := []float64{1, 0, -1, 0.5, 0.25}
	for i, x := range input {
		y := s.ProcessSample(x)
		if !almostEqual(y, x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// Hand-traced DF-II-T with specific coefficients:
	// B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04
	//
	// Step through with x = [1, 0, 0, 0]:
	//
	// n=0: y=0.25*1+0 = 0.25
	//      d0=0.5*1-(-0.2)*0.25+0 = 0.5+0.05 = 0.55
	//      d1=0.25*1-0.04*0.25 = 0.25-0.01 = 0.24
	//
	// n=1: y=0.25*0+0.55 = 0.55
	//      d0=0.5*0-(-0.2)*0.55+0.24 = 0.11+0.24 = 0.35
	//      d1=0.25*0-0.04*0.55 = -0.022
	//
	// n=2: y=0.25*0+0.35 = 0.35
	//      d0=0.5*0-(-0.2)*0.35+(-0.022) = 0.07-0.022 = 0.048
	//      d1=0.25*0-0.04*0.35 = -0.014
	//
	// n=3: y=0.25*0+0.048 = 0.048
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A0: 1, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		y := s.ProcessSample(x)
		if !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A0: 1, A1: -0.2, A2: 0.04}

	// ProcessSample reference
	s1 := NewSection(c)
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, -0.1}
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	// ProcessBlock (odd length exercises the unrolled tail)
	s2 := NewSection(c)
	block := make([]float64, len(input))
	copy(block, input)
	s2.ProcessBlock(block)

	for i := range block {
		if !almostEqual(block[i], ref[i], eps) {
			t.Errorf("sample %d: ProcessBlock=%.15f, ProcessSample=%.15f", i, block[i], ref[i])
		}
	}

	if s1.State() != s2.State() {
		t.Errorf("state after block differs: %v vs %v", s2.State(), s1.State())
	}
}

func TestProcessBlock_DirectFormI(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A0: 1, A1: -0.2, A2: 0.04}

	s1 := NewSection(c, WithForm(FormDirectI))
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1}
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewSection(c, WithForm(FormDirectI))
	block := make([]float64, len(input))
	copy(block, input)
	s2.ProcessBlock(block)

	for i := range block {
		if !almostEqual(block[i], ref[i], eps) {
			t.Errorf("sample %d: ProcessBlock=%.15f, ProcessSample=%.15f", i, block[i], ref[i])
		}
	}
}

func TestProcessBlock_FlushesDecayingTail(t *testing.T) {
	// The unrolled block path applies the same denormal flush as the
	// per-sample recurrence: a long decaying tail must agree with the
	// per-sample reference all the way through the +/-1e-30 band, and no
	// denormal-range value may reach the output or the feedback
	// registers.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A0: 1, A1: -0.2, A2: 0.04}

	s1 := NewSection(c)
	s2 := NewSection(c)

	const n = 10000
	input := make([]float64, n)
	input[0] = 1

	ref := make([]float64, n)
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	block := make([]float64, n)
	copy(block, input)
	s2.ProcessBlock(block)

	for i := range block {
		if block[i] != ref[i] {
			t.Fatalf("sample %d: block=%g, sample=%g", i, block[i], ref[i])
		}
		if y := block[i]; y != 0 && y < 1e-30 && y > -1e-30 {
			t.Fatalf("sample %d: denormal-range output %g", i, y)
		}
	}

	if s1.State() != s2.State() {
		t.Errorf("state after decay differs: %+v vs %+v", s2.State(), s1.State())
	}
}

func TestProcessBlockTo_MatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A0: 1, A1: -0.2, A2: 0.04}

	s1 := NewSection(c)
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewSection(c)
	dst := make([]float64, len(input))
	s2.ProcessBlockTo(dst, input)

	for i := range dst {
		if !almostEqual(dst[i], ref[i], eps) {
			t.Errorf("sample %d: ProcessBlockTo=%.15f, ProcessSample=%.15f", i, dst[i], ref[i])
		}
	}

	// Verify src was not modified.
	orig := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}
	for i := range input {
		if input[i] != orig[i] {
			t.Errorf("src modified at index %d", i)
		}
	}
}

func TestProcessSample_ZeroCoefficients(t *testing.T) {
	// All-zero coefficients should produce silence.
	s := NewSection(Coefficients{})
	for i := range 10 {
		y := s.ProcessSample(1.0)
		if y != 0 {
			t.Errorf("sample %d: got %v, want 0", i, y)
		}
	}
}

func TestProcessSample_PureDelay(t *testing.T) {
	// B0=0, B1=1, all A history 0: output = x[n-1]
	s := NewSection(Coefficients{B1: 1, A0: 1})
	input := []float64{1, 2, 3, 4, 5}
	want := []float64{0, 1, 2, 3, 4}
	for i, x := range input {
		y := s.ProcessSample(x)
		if !almostEqual(y, want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestSetCoefficients_PreservesState(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A0: 1, A1: -0.2, A2: 0.04}
	s := NewSection(c)
	s.ProcessSample(1)
	s.ProcessSample(0.5)

	before := s.State()
	s.SetCoefficients(simpleLowpass())
	if s.State() != before {
		t.Fatalf("state changed on coefficient swap: %v vs %v", s.State(), before)
	}
	if s.Coefficients != simpleLowpass() {
		t.Fatalf("coefficients not replaced: %+v", s.Coefficients)
	}
}

func TestReset(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A0: 1, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	s.ProcessSample(1)
	s.ProcessSample(0.5)
	if s.State() == (State{}) {
		t.Fatal("state should be non-zero after processing")
	}

	s.Reset()
	if s.State() != (State{}) {
		t.Fatalf("state not zero after reset: %v", s.State())
	}
}

func TestState_SaveRestore(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A0: 1, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	s.ProcessSample(1)
	s.ProcessSample(0.5)
	saved := s.State()

	y3 := s.ProcessSample(-0.3)
	y4 := s.ProcessSample(0.7)

	// Restore state and reprocess: same results.
	s.SetState(saved)
	y3b := s.ProcessSample(-0.3)
	y4b := s.ProcessSample(0.7)

	if !almostEqual(y3, y3b, eps) {
		t.Errorf("sample 3: got %v after restore, want %v", y3b, y3)
	}
	if !almostEqual(y4, y4b, eps) {
		t.Errorf("sample 4: got %v after restore, want %v", y4b, y4)
	}
}

func TestProcessSample_StabilityLongRun(t *testing.T) {
	// Stable filter: process 10000 zero-input samples after an impulse,
	// verify the state decays instead of diverging.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A0: 1, A1: -0.2, A2: 0.04}
	s := NewSection(c)
	s.ProcessSample(1)

	for range 10000 {
		s.ProcessSample(0)
	}

	st := s.State()
	if math.Abs(st.X1) > 1e-100 || math.Abs(st.Y1) > 1e-100 {
		t.Errorf("state did not decay: %+v", st)
	}
}

func TestProcessSample_SimpleLowpass(t *testing.T) {
	// Two-tap average: y[n] = 0.5*x[n] + 0.5*x[n-1]
	s := NewSection(simpleLowpass())
	input := []float64{1, 1, 1, 1}
	want := []float64{0.5, 1, 1, 1}
	for i, x := range input {
		y := s.ProcessSample(x)
		if !almostEqual(y, want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}
