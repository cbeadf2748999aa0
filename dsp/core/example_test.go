package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-filterlab/dsp/core"
)

func ExampleApplyEngineOptions() {
	cfg := core.ApplyEngineOptions(
		core.WithSampleRate(44100),
		core.WithSweepPoints(64),
	)

	fmt.Printf("sampleRate=%.0f points=%d floor=%.0f\n", cfg.SampleRate, cfg.SweepPoints, cfg.FloorDB)

	// Output:
	// sampleRate=44100 points=64 floor=-120
}

func ExamplePushFront() {
	history := make([]float64, 3)
	for _, x := range []float64{1, 2, 3, 4} {
		core.PushFront(history, x)
	}
	fmt.Println(history)

	// Output:
	// [4 3 2]
}
