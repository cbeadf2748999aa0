// Command filterlab prints the tables computed by the filter engine.
//
// Usage:
//
//	filterlab response [flags]
//	filterlab spectrum [flags]
//	filterlab polezero [flags]
//	filterlab adaptive [flags]
//
// Examples:
//
//	filterlab response -domain analog -topology butterworth -order 4 -cutoff 1000
//	filterlab response -domain fir -window blackman -taps 63 -cutoff 2000 -rate 48000
//	filterlab spectrum -taps 31 -fft 512
//	filterlab polezero -domain iir -topology chebyshev1 -order 5
//	filterlab polezero -domain fir -taps 15 -exact
//	filterlab adaptive -algorithm nlms -mu 0.1 -seed 1
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-filterlab/dsp/adaptive"
	"github.com/cwbudde/algo-filterlab/dsp/core"
	"github.com/cwbudde/algo-filterlab/dsp/filter/design"
	"github.com/cwbudde/algo-filterlab/dsp/filter/fir"
	"github.com/cwbudde/algo-filterlab/dsp/filter/polezero"
	"github.com/cwbudde/algo-filterlab/dsp/spectrum"
	"github.com/cwbudde/algo-filterlab/dsp/window"
	"github.com/cwbudde/algo-filterlab/engine"
	"github.com/cwbudde/algo-filterlab/logging"
	"github.com/cwbudde/algo-filterlab/stats/frequency"
	stime "github.com/cwbudde/algo-filterlab/stats/time"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	var err error
	switch args[0] {
	case "response":
		err = runResponse(ctx, args[1:], stdout, stderr)
	case "spectrum":
		err = runSpectrum(args[1:], stdout, stderr)
	case "polezero":
		err = runPoleZero(ctx, args[1:], stdout, stderr)
	case "adaptive":
		err = runAdaptive(ctx, args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "error: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp), errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: filterlab <command> [flags]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  response   frequency, impulse and step response tables\n")
	fmt.Fprintf(w, "  spectrum   dense FFT magnitude of an FIR design\n")
	fmt.Fprintf(w, "  polezero   illustrative pole-zero layout\n")
	fmt.Fprintf(w, "  adaptive   adaptive filter simulation trace\n\n")
	fmt.Fprintf(w, "Run 'filterlab <command> -h' for command flags.\n")
}

// filterFlags binds the flags shared by response, spectrum and polezero.
type filterFlags struct {
	domain   *string
	response *string
	topology *string
	window   *string
	cutoff   *float64
	rate     *float64
	order    *int
	taps     *int
	ripple   *float64
}

func bindFilterFlags(fs *flag.FlagSet) filterFlags {
	return filterFlags{
		domain:   fs.String("domain", "analog", "analog, iir or fir"),
		response: fs.String("type", "lowpass", "lowpass, highpass, bandpass, bandstop or notch"),
		topology: fs.String("topology", "butterworth", "butterworth, chebyshev1, chebyshev2, elliptic or bessel"),
		window:   fs.String("window", "hamming", "FIR window: rectangular, hamming, hanning or blackman"),
		cutoff:   fs.Float64("cutoff", 1000, "cutoff frequency in Hz"),
		rate:     fs.Float64("rate", 48000, "sample rate in Hz (digital domains)"),
		order:    fs.Int("order", 4, "filter order (analog and IIR)"),
		taps:     fs.Int("taps", 31, "odd FIR tap count"),
		ripple:   fs.Float64("ripple", 1, "passband ripple in dB (chebyshev1, elliptic)"),
	}
}

// specification builds a design.Specification. Unknown enum names degrade
// to their documented fallbacks with a warning; only the domain is strict.
func (f filterFlags) specification(warn io.Writer) (design.Specification, error) {
	domain, err := design.ParseDomain(*f.domain)
	if err != nil {
		return design.Specification{}, err
	}

	resp, ok := design.ParseResponseType(*f.response)
	if !ok {
		fmt.Fprintf(warn, "warning: unknown response %q, using %s\n", *f.response, resp)
	}
	topo, ok := design.ParseTopology(*f.topology)
	if !ok && domain != design.DomainDigitalFIR {
		fmt.Fprintf(warn, "warning: unknown topology %q, magnitude will be zero\n", *f.topology)
	}
	win, ok := window.ParseType(*f.window)
	if !ok && domain == design.DomainDigitalFIR {
		fmt.Fprintf(warn, "warning: unknown window %q, using %s\n", *f.window, win)
	}

	s := design.Specification{
		Domain:   domain,
		Response: resp,
		Topology: topo,
		Window:   win,
		CutoffHz: *f.cutoff,
		Order:    *f.order,
		TapCount: *f.taps,
		RippleDB: *f.ripple,
	}
	if domain.Digital() {
		s.SampleRateHz = *f.rate
	}
	return s, nil
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func newEngine(level string, seed int64, seeded bool, stderr io.Writer) *engine.Engine {
	logger := logging.NewWriterLogger(stderr)
	if l, ok := logging.ParseLevel(level); ok {
		logger.SetLevel(l)
	} else {
		logger.SetLevel(logging.WarnLevel)
	}

	opts := []engine.Option{engine.WithLogger(logger)}
	if seeded {
		opts = append(opts, engine.WithSeed(seed))
	}
	return engine.New(opts...)
}

func runResponse(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("response", stderr)
	ff := bindFilterFlags(fs)
	logLevel := fs.String("log", "warn", "log level: debug, info, warn or error")
	section := fs.String("show", "frequency", "table to print: frequency, impulse, step or coefficients")
	metrics := fs.Bool("metrics", false, "append summary metrics of the table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	spec, err := ff.specification(stderr)
	if err != nil {
		return err
	}

	r, err := newEngine(*logLevel, 0, false, stderr).ComputeResponse(ctx, spec)
	if err != nil {
		return err
	}

	var footer func()
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	switch *section {
	case "frequency":
		fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude\tMagnitude [dB]\tPhase [deg]\tGroup Delay\t\n")
		for _, s := range r.Frequency {
			fmt.Fprintf(tw, "%.2f\t%.6f\t%.2f\t%.2f\t%.4f\t\n",
				s.FrequencyHz, s.Magnitude, s.MagnitudeDB, s.PhaseDeg, s.GroupDelay)
		}
		if *metrics {
			footer = func() { printFrequencyMetrics(stdout, r.Frequencies(), r.Magnitudes()) }
		}
	case "impulse":
		printSeries(tw, "Impulse", r.Impulse)
		if *metrics {
			footer = func() { printImpulseMetrics(stdout, r.Impulse) }
		}
	case "step":
		printSeries(tw, "Step", r.Step)
		if *metrics {
			footer = func() { printStepMetrics(stdout, r.Step) }
		}
	case "coefficients":
		if r.Coefficients == nil {
			return fmt.Errorf("%s has no coefficients", spec.Domain)
		}
		printSeries(tw, "Coefficient", r.Coefficients)
	default:
		fmt.Fprintf(stderr, "error: unknown table %q\n", *section)
		return errUsage
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if footer != nil {
		footer()
	}
	return nil
}

func printFrequencyMetrics(w io.Writer, freqs, mag []float64) {
	s, err := frequency.Calculate(freqs, mag)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "\npeak: %.2f dB at %.2f Hz\n", s.Peak_dB, s.PeakFrequency)
	fmt.Fprintf(w, "-3 dB edges: lower %.2f Hz, upper %.2f Hz\n", s.LowerEdge, s.UpperEdge)
	fmt.Fprintf(w, "centroid: %.2f Hz, rolloff: %.2f Hz\n", s.Centroid, s.Rolloff)
}

func printImpulseMetrics(w io.Writer, impulse []float64) {
	peak, at := stime.Peak(impulse)
	fmt.Fprintf(w, "\npeak: %.6f at n=%d\n", peak, at)
	fmt.Fprintf(w, "energy: %.6f, rms: %.6f, zero crossings: %d\n",
		stime.Energy(impulse), stime.RMS(impulse), stime.ZeroCrossings(impulse))
}

func printStepMetrics(w io.Writer, step []float64) {
	m := stime.Step(step, stime.DefaultSettlingBand)
	fmt.Fprintf(w, "\nfinal: %.6f, overshoot: %.2f%%\n", m.Final, m.OvershootPct)
	fmt.Fprintf(w, "rise (10-90%%): n=%d..%d, settled (2%%): n=%d\n", m.RiseStart, m.RiseEnd, m.SettlingIndex)
}

func printSeries(w io.Writer, name string, values []float64) {
	fmt.Fprintf(w, "n\t%s\t\n", name)
	for i, v := range values {
		fmt.Fprintf(w, "%d\t%.8f\t\n", i, v)
	}
}

func runSpectrum(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("spectrum", stderr)
	ff := bindFilterFlags(fs)
	fftSize := fs.Int("fft", 0, "FFT size (power of two, default next power of two >= 8*taps)")
	metrics := fs.Bool("metrics", false, "append summary metrics of the spectrum")
	if err := fs.Parse(args); err != nil {
		return err
	}

	*ff.domain = "fir"
	spec, err := ff.specification(stderr)
	if err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	taps := fir.FromSpecification(spec)
	n := *fftSize
	if n <= 0 {
		n = spectrum.NextPowerOfTwo(8 * len(taps))
	}

	resp, err := spectrum.Transform(taps, n)
	if err != nil {
		return err
	}
	freqs, err := resp.Frequencies(spec.SampleRateHz)
	if err != nil {
		return err
	}
	delay, err := resp.GroupDelay()
	if err != nil {
		return err
	}
	mag := resp.Magnitude()

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Bin\tFrequency [Hz]\tMagnitude\tMagnitude [dB]\tGroup Delay\t\n")
	for k := range mag {
		db := core.MagnitudeDB(mag[k], core.DefaultEngineConfig().FloorDB)
		fmt.Fprintf(tw, "%d\t%.2f\t%.6f\t%.2f\t%.4f\t\n", k, freqs[k], mag[k], db, delay[k])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if *metrics {
		printFrequencyMetrics(stdout, freqs, mag)
	}
	return nil
}

func runPoleZero(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("polezero", stderr)
	ff := bindFilterFlags(fs)
	exact := fs.Bool("exact", false, "FIR only: roots of the designed taps instead of the illustrative layout")
	logLevel := fs.String("log", "warn", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	spec, err := ff.specification(stderr)
	if err != nil {
		return err
	}

	e := newEngine(*logLevel, 0, false, stderr)
	var set polezero.Set
	if *exact {
		set, err = e.ComputeFIRZeros(ctx, spec)
	} else {
		set, err = e.ComputePoleZero(spec.Topology, spec.Order, spec.Response, spec.Domain)
	}
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Kind\tReal\tImag\t|z|\t\n")
	for _, p := range set.Poles {
		fmt.Fprintf(tw, "pole\t%.6f\t%.6f\t%.6f\t\n", p.Re, p.Im, p.Abs())
	}
	for _, z := range set.Zeros {
		fmt.Fprintf(tw, "zero\t%.6f\t%.6f\t%.6f\t\n", z.Re, z.Im, z.Abs())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "stable: %t\n", set.Stable(spec.Domain))
	return nil
}

func runAdaptive(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("adaptive", stderr)
	algorithm := fs.String("algorithm", "lms", "lms, nlms, rls or kalman")
	mu := fs.Float64("mu", 0.01, "step size (lms, nlms)")
	steps := fs.Int("steps", 0, "simulation length (default from engine config)")
	seed := fs.Int64("seed", 0, "noise seed (0 seeds from the clock)")
	summary := fs.Bool("summary", false, "print only the trace summary")
	logLevel := fs.String("log", "warn", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	alg, ok := adaptive.ParseAlgorithm(*algorithm)
	if !ok {
		fmt.Fprintf(stderr, "warning: unknown algorithm %q, output passes through\n", *algorithm)
	}

	e := newEngine(*logLevel, *seed, *seed != 0, stderr)
	spec := e.AdaptiveSpecification(alg, *mu)
	if *steps > 0 {
		spec.Steps = *steps
	}

	trace, err := e.RunAdaptiveSimulation(ctx, spec)
	if err != nil {
		return err
	}

	if *summary {
		s := adaptive.Summarize(trace, adaptive.DefaultConvergenceTolerance)
		fmt.Fprintf(stdout, "algorithm: %s\nsteps: %d\nmse: %.6f\nmean |e|: %.6f\nfinal |w|: %.6f\nconverged at: %d\n",
			alg, len(trace), s.MSE, s.MeanAbsError, s.FinalWeightNorm, s.ConvergedAt)
		return nil
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "n\tDesired\tClean\tOutput\tError\t|w|\t\n")
	for _, r := range trace {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t\n",
			r.N, r.Desired, r.Clean, r.Output, r.Error, r.WeightNorm)
	}
	return tw.Flush()
}
