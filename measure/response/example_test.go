package response_test

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-eq/dsp/filter/eq"
	"github.com/cwbudde/algo-eq/measure/response"
)

func ExampleMeasure() {
	// Measure the realized response of a 1 kHz Butterworth lowpass band.
	f := eq.New(eq.ButterLPF2, eq.WithFrequency(1000))

	curve, err := response.Measure(f, 48000)
	if err != nil {
		log.Fatal(err)
	}

	for _, freq := range []float64{1000, 4000, 10000} {
		fmt.Printf("%5.0f Hz: %+.2f dB\n", freq, curve.At(freq))
	}
	// Output:
	//  1000 Hz: -2.98 dB
	//  4000 Hz: -24.46 dB
	// 10000 Hz: -42.73 dB
}
