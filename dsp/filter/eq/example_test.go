package eq_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/filter/eq"
)

func ExampleFilter_ProcessSample() {
	// Second-order Butterworth lowpass at 1 kHz.
	f := eq.New(eq.ButterLPF2, eq.WithFrequency(1000))

	// Process an impulse.
	for i := range 5 {
		var x float64
		if i == 0 {
			x = 1
		}

		y := f.ProcessSample(x)
		fmt.Printf("y[%d] = %.6f\n", i, y)
	}
	// Output:
	// y[0] = 0.003916
	// y[1] = 0.014941
	// y[2] = 0.027785
	// y[3] = 0.038024
	// y[4] = 0.045936
}

func ExampleFilter_MagnitudeDB() {
	f := eq.New(eq.ButterLPF2, eq.WithFrequency(1000))

	for _, freq := range []float64{500, 1000, 4000, 16000} {
		fmt.Printf("%5.0f Hz: %+.2f dB\n", freq, f.MagnitudeDB(freq))
	}
	// Output:
	//   500 Hz: -0.26 dB
	//  1000 Hz: -3.01 dB
	//  4000 Hz: -24.48 dB
	// 16000 Hz: -56.88 dB
}

func ExampleFilter_lowShelf() {
	// A 6 dB low shelf at 250 Hz; the reported response includes the
	// wet/dry mix.
	f := eq.New(eq.LowShelf, eq.WithFrequency(250), eq.WithGainDB(6))

	for _, freq := range []float64{50, 250, 1000, 10000} {
		fmt.Printf("%5.0f Hz: %+.2f dB\n", freq, f.MagnitudeDB(freq))
	}
	// Output:
	//    50 Hz: +5.93 dB
	//   250 Hz: +4.64 dB
	//  1000 Hz: +1.13 dB
	// 10000 Hz: +0.01 dB
}

func ExampleCalculate() {
	c, wet, dry := eq.Calculate(eq.ButterLPF2, 1000, 0.707, 0, 48000)
	fmt.Printf("B: %.6f %.6f %.6f\n", c.B0, c.B1, c.B2)
	fmt.Printf("A: %.6f %.6f %.6f\n", c.A0, c.A1, c.A2)
	fmt.Printf("wet=%.0f dry=%.0f\n", wet, dry)
	// Output:
	// B: 0.003916 0.007832 0.003916
	// A: 1.000000 -1.815341 0.831006
	// wet=1 dry=0
}

func ExampleAlgorithm_String() {
	fmt.Println(eq.ButterLPF2, eq.CQParaEQ, eq.MatchBP2A)
	// Output:
	// ButterLPF2 CQParaEQ MatchBP2A
}
