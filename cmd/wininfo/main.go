// Command wininfo tabulates the spectral figures of merit of the windows
// available to FIR design. With no names every window is listed.
//
//	wininfo hann
//	wininfo -size 31 hamming blackman
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-filterlab/dsp/window"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wininfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	size := fs.Int("size", 1024, "analysis length in samples")
	list := fs.Bool("list", false, "print the window names and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "wininfo [-size n] [-list] [name ...]")
		fmt.Fprintln(stderr, "Tabulates gain, bandwidth and leakage of the FIR design windows.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, t := range window.Types() {
			fmt.Fprintln(stdout, t)
		}
		return 0
	}

	types := resolveTypes(fs.Args(), stderr)
	if len(types) == 0 {
		fmt.Fprintln(stderr, "error: nothing to analyze")
		return 1
	}
	if err := printAnalysis(stdout, types, *size); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// resolveTypes maps names to window types, warning about unknown names
// instead of falling back. No names selects every window.
func resolveTypes(names []string, warn io.Writer) []window.Type {
	if len(names) == 0 {
		return window.Types()
	}

	out := make([]window.Type, 0, len(names))
	for _, n := range names {
		if t, ok := window.ParseType(n); ok {
			out = append(out, t)
		} else {
			fmt.Fprintf(warn, "warning: skipping unknown window %q\n", n)
		}
	}
	return out
}

func printAnalysis(w io.Writer, types []window.Type, size int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-------------\t-------------\t------------\n")

	for _, t := range types {
		a, err := window.Analyze(window.Generate(t, size))
		if err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.1f\t%.4f\n",
			t,
			size,
			a.CoherentGain,
			a.ENBW,
			a.Bandwidth3dB,
			window.Info(t).HighestSidelobe,
			a.ScallopLossdB,
		)
	}
	return tw.Flush()
}
