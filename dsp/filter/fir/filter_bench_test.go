package fir

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-filterlab/dsp/filter/design"
	"github.com/cwbudde/algo-filterlab/dsp/window"
)

func BenchmarkDesign(b *testing.B) {
	for _, taps := range []int{31, 127, 511} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Design(taps, 1000, 48000, window.TypeBlackman, design.Highpass)
			}
		})
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, taps := range []int{31, 127, 511} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			f := New(Design(taps, 1000, 48000, window.TypeHamming, design.Lowpass))
			buf := make([]float64, 1024)
			for i := range buf {
				buf[i] = float64(i%7) - 3
			}

			b.SetBytes(int64(len(buf) * 8))
			b.ResetTimer()
			for b.Loop() {
				f.ProcessBlock(buf)
			}
		})
	}
}

func BenchmarkResponse(b *testing.B) {
	f := New(Design(127, 1000, 48000, window.TypeHamming, design.Lowpass))
	for b.Loop() {
		_, _ = f.Response(1234, 48000)
	}
}
