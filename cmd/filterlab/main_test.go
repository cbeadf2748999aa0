package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestResponseFrequencyTable(t *testing.T) {
	code, out, _ := runCLI(t, "response", "-domain", "analog", "-order", "4", "-cutoff", "1000")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 129)
	assert.Contains(t, lines[0], "Magnitude [dB]")
	assert.Contains(t, lines[128], "10000.00")
	assert.Contains(t, lines[128], "-80.00")
}

func TestResponseCoefficients(t *testing.T) {
	code, out, _ := runCLI(t, "response", "-domain", "fir", "-taps", "7", "-show", "coefficients")
	require.Equal(t, 0, code)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 8)

	code, _, errOut := runCLI(t, "response", "-domain", "analog", "-show", "coefficients")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no coefficients")
}

func TestResponseStepAndImpulse(t *testing.T) {
	code, out, _ := runCLI(t, "response", "-show", "step")
	require.Equal(t, 0, code)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 61)

	code, out, _ = runCLI(t, "response", "-show", "impulse")
	require.Equal(t, 0, code)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 65)
}

func TestResponseMetrics(t *testing.T) {
	code, out, _ := runCLI(t, "response", "-order", "4", "-cutoff", "1000", "-metrics")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "-3 dB edges: lower 0.00 Hz, upper 999.")

	code, out, _ = runCLI(t, "response", "-show", "step", "-metrics")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "overshoot:")

	code, out, _ = runCLI(t, "response", "-show", "impulse", "-metrics")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "zero crossings:")

	code, out, _ = runCLI(t, "spectrum", "-taps", "31", "-fft", "64", "-metrics")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "centroid:")
}

func TestResponseValidationError(t *testing.T) {
	code, _, errOut := runCLI(t, "response", "-domain", "fir", "-taps", "30")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "tap count must be odd")
	assert.Contains(t, errOut, "[WARN] response rejected")
}

func TestResponseUnknownDomain(t *testing.T) {
	code, _, errOut := runCLI(t, "response", "-domain", "z-plane")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown domain")
}

func TestResponseFallbackWarnings(t *testing.T) {
	code, _, errOut := runCLI(t, "response", "-domain", "fir", "-window", "kaiser", "-type", "allpass")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, `unknown window "kaiser", using hamming`)
	assert.Contains(t, errOut, `unknown response "allpass", using lowpass`)
}

func TestSpectrum(t *testing.T) {
	code, out, _ := runCLI(t, "spectrum", "-taps", "31", "-fft", "64")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 1+33)

	code, _, errOut := runCLI(t, "spectrum", "-taps", "31", "-fft", "48")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errOut)
}

func TestPoleZero(t *testing.T) {
	code, out, _ := runCLI(t, "polezero", "-domain", "iir", "-order", "3", "-type", "highpass")
	require.Equal(t, 0, code)
	assert.Equal(t, 3, strings.Count(out, "pole"))
	assert.Equal(t, 3, strings.Count(out, "zero"))
	assert.Contains(t, out, "stable: true")

	code, _, errOut := runCLI(t, "polezero", "-order", "0")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "order must be positive")
}

func TestPoleZeroExact(t *testing.T) {
	code, out, _ := runCLI(t, "polezero", "-domain", "fir", "-taps", "15", "-exact")
	require.Equal(t, 0, code)
	assert.Equal(t, 14, strings.Count(out, "pole"))
	assert.Equal(t, 14, strings.Count(out, "zero"))

	code, _, errOut := runCLI(t, "polezero", "-domain", "iir", "-exact")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "exact zeros need the digital_fir domain")
}

func TestAdaptiveDeterministicWithSeed(t *testing.T) {
	code, a, _ := runCLI(t, "adaptive", "-algorithm", "lms", "-seed", "3")
	require.Equal(t, 0, code)
	_, b, _ := runCLI(t, "adaptive", "-algorithm", "lms", "-seed", "3")
	assert.Equal(t, a, b)
	assert.Len(t, strings.Split(strings.TrimSpace(a), "\n"), 151)
}

func TestAdaptiveSummary(t *testing.T) {
	code, out, _ := runCLI(t, "adaptive", "-algorithm", "kalman", "-steps", "20", "-seed", "1", "-summary")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "algorithm: kalman")
	assert.Contains(t, out, "steps: 20")
}

func TestAdaptiveValidation(t *testing.T) {
	code, _, errOut := runCLI(t, "adaptive", "-algorithm", "nlms", "-mu", "0")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "step size must be positive")
}

func TestUsage(t *testing.T) {
	code, _, errOut := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Usage: filterlab")

	code, _, errOut = runCLI(t, "bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unknown command "bogus"`)

	code, _, _ = runCLI(t, "response", "-show", "bode")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "response", "-h")
	assert.Equal(t, 2, code)
}
