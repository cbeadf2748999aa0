package fir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-filterlab/dsp/filter/design"
	"github.com/cwbudde/algo-filterlab/dsp/window"
	"github.com/cwbudde/algo-filterlab/internal/testutil"
)

func TestDesignLengthAndSymmetry(t *testing.T) {
	for _, win := range window.Types() {
		for _, taps := range []int{3, 5, 31, 101} {
			for _, resp := range []design.ResponseType{design.Lowpass, design.Highpass} {
				h := Design(taps, 1000, 48000, win, resp)
				require.Len(t, h, taps)
				testutil.AssertSymmetric(t, h, 1e-15)
				testutil.AssertNoNaNOrInf(t, h)
			}
		}
	}
}

func TestDesignScenarioHamming31(t *testing.T) {
	h := Design(31, 1000, 48000, window.TypeHamming, design.Lowpass)

	require.Len(t, h, 31)
	assert.InDelta(t, 2*1000.0/48000, h[15], 1e-12)
	assert.InDelta(t, 0.04167, h[15], 1e-5)
	testutil.AssertSymmetric(t, h, 1e-15)
}

func TestDesignKernel(t *testing.T) {
	// Rectangular window leaves the ideal sinc untouched.
	const taps = 21
	fc := 3000.0 / 48000
	h := Design(taps, 3000, 48000, window.TypeRectangular, design.Lowpass)

	for n := range taps {
		x := float64(n - 10)
		want := 2 * fc
		if x != 0 {
			want = math.Sin(2*math.Pi*fc*x) / (math.Pi * x)
		}
		assert.InDelta(t, want, h[n], 1e-15, "tap %d", n)
	}
}

func TestDesignWindowed(t *testing.T) {
	const taps = 15
	raw := Design(taps, 2000, 16000, window.TypeRectangular, design.Lowpass)
	for _, win := range window.Types() {
		h := Design(taps, 2000, 16000, win, design.Lowpass)
		for n := range taps {
			assert.InDelta(t, raw[n]*window.Weight(win, n, taps), h[n], 1e-15)
		}
	}
}

func TestDesignSpectralInversion(t *testing.T) {
	for _, win := range window.Types() {
		lp := Design(31, 1000, 48000, win, design.Lowpass)
		hp := Design(31, 1000, 48000, win, design.Highpass)

		for n := range lp {
			want := -lp[n]
			if n == 15 {
				want = 1 - lp[n]
			}
			assert.InDelta(t, want, hp[n], 1e-15, "%s tap %d", win, n)
		}
	}
}

func TestDesignHighpassBlocksDC(t *testing.T) {
	lp := New(Design(101, 4000, 48000, window.TypeBlackman, design.Lowpass))
	hp := New(Design(101, 4000, 48000, window.TypeBlackman, design.Highpass))

	// Complementary: H_hp(0) = 1 - H_lp(0).
	lpDC := lp.Magnitude(0, 48000)
	assert.InDelta(t, math.Abs(1-lpDC), hp.Magnitude(0, 48000), 1e-12)
	assert.Less(t, hp.Magnitude(0, 48000), 0.01)
	assert.Greater(t, hp.Magnitude(20000, 48000), 0.99)
}

func TestDesignBandTypesUseLowpassKernel(t *testing.T) {
	lp := Design(31, 1000, 48000, window.TypeHanning, design.Lowpass)
	for _, resp := range []design.ResponseType{design.Bandpass, design.Bandstop, design.Notch} {
		assert.Equal(t, lp, Design(31, 1000, 48000, window.TypeHanning, resp), resp.String())
	}
}

func TestDesignUnknownWindowUsesHamming(t *testing.T) {
	assert.Equal(t,
		Design(31, 1000, 48000, window.TypeHamming, design.Lowpass),
		Design(31, 1000, 48000, window.Type(77), design.Lowpass))
}

func TestDesignNoGainNormalization(t *testing.T) {
	// A wide rectangular kernel approaches unity DC gain but is not rescaled.
	h := Design(7, 1000, 48000, window.TypeRectangular, design.Lowpass)
	sum := 0.0
	for _, v := range h {
		sum += v
	}
	assert.Less(t, sum, 0.5)
}

func TestFromSpecification(t *testing.T) {
	s := design.Specification{
		Domain:       design.DomainDigitalFIR,
		Response:     design.Highpass,
		Window:       window.TypeBlackman,
		CutoffHz:     500,
		SampleRateHz: 8000,
		TapCount:     21,
	}
	assert.Equal(t, Design(21, 500, 8000, window.TypeBlackman, design.Highpass), FromSpecification(s))
}

func TestDesignDegenerate(t *testing.T) {
	assert.Nil(t, Design(0, 1000, 48000, window.TypeHamming, design.Lowpass))
}
