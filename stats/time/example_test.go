package time_test

import (
	"fmt"

	stime "github.com/cwbudde/algo-filterlab/stats/time"
)

func ExampleStep() {
	m := stime.Step([]float64{0, 0.5, 1.2, 0.95, 1.01, 1, 1}, stime.DefaultSettlingBand)
	fmt.Printf("overshoot=%.0f%% rise=%d..%d settled=%d\n", m.OvershootPct, m.RiseStart, m.RiseEnd, m.SettlingIndex)
	// Output: overshoot=20% rise=1..2 settled=4
}
