//go:build js && wasm

package main

import (
	"context"
	"syscall/js"

	"github.com/cwbudde/algo-filterlab/dsp/adaptive"
	"github.com/cwbudde/algo-filterlab/dsp/filter/design"
	"github.com/cwbudde/algo-filterlab/dsp/window"
	"github.com/cwbudde/algo-filterlab/engine"
	"github.com/cwbudde/algo-filterlab/measure/sweep"
)

var (
	eng   = engine.New(engine.WithMemoization())
	funcs []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("init", export(func(args []js.Value) any {
		opts := []engine.Option{engine.WithMemoization()}
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			opts = append(opts, engine.WithSeed(int64(args[0].Int())))
		}
		eng = engine.New(opts...)
		return js.Null()
	}))

	api.Set("computeResponse", export(func(args []js.Value) any {
		if len(args) < 1 {
			return errorResult("missing specification")
		}
		spec, err := specFromJS(args[0])
		if err != nil {
			return errorResult(err.Error())
		}
		r, err := eng.ComputeResponse(context.Background(), spec)
		if err != nil {
			return errorResult(err.Error())
		}
		return reportToJS(r)
	}))

	api.Set("computePoleZero", export(func(args []js.Value) any {
		if len(args) < 1 {
			return errorResult("missing specification")
		}
		spec, err := specFromJS(args[0])
		if err != nil {
			return errorResult(err.Error())
		}
		set, err := eng.ComputePoleZero(spec.Topology, spec.Order, spec.Response, spec.Domain)
		if err != nil {
			return errorResult(err.Error())
		}
		poles := make([]any, len(set.Poles))
		for i, p := range set.Poles {
			poles[i] = map[string]any{"re": p.Re, "im": p.Im}
		}
		zeros := make([]any, len(set.Zeros))
		for i, z := range set.Zeros {
			zeros[i] = map[string]any{"re": z.Re, "im": z.Im}
		}
		return js.ValueOf(map[string]any{
			"poles":  poles,
			"zeros":  zeros,
			"stable": set.Stable(spec.Domain),
		})
	}))

	api.Set("runAdaptiveSimulation", export(func(args []js.Value) any {
		if len(args) < 1 {
			return errorResult("missing specification")
		}
		p := args[0]
		alg, _ := adaptive.ParseAlgorithm(stringField(p, "algorithm", "lms"))
		spec := eng.AdaptiveSpecification(alg, floatField(p, "stepSize", 0.01))
		if v := p.Get("stepCount"); v.Type() == js.TypeNumber {
			spec.Steps = v.Int()
		}
		if v := p.Get("run"); v.Type() == js.TypeBoolean {
			spec.Skip = !v.Bool()
		}

		trace, err := eng.RunAdaptiveSimulation(context.Background(), spec)
		if err != nil {
			return errorResult(err.Error())
		}
		out := make([]any, len(trace))
		for i, r := range trace {
			out[i] = map[string]any{
				"n":          r.N,
				"desired":    r.Desired,
				"clean":      r.Clean,
				"output":     r.Output,
				"error":      r.Error,
				"weightNorm": r.WeightNorm,
			}
		}
		return js.ValueOf(out)
	}))

	js.Global().Set("FilterLab", api)
	select {}
}

func specFromJS(p js.Value) (design.Specification, error) {
	domain, err := design.ParseDomain(stringField(p, "domain", "analog"))
	if err != nil {
		return design.Specification{}, err
	}
	resp, _ := design.ParseResponseType(stringField(p, "responseType", "lowpass"))
	topo, _ := design.ParseTopology(stringField(p, "topology", "butterworth"))
	win, _ := window.ParseType(stringField(p, "window", "hamming"))

	return design.Specification{
		Domain:       domain,
		Response:     resp,
		Topology:     topo,
		Window:       win,
		CutoffHz:     floatField(p, "cutoffHz", 1000),
		SampleRateHz: floatField(p, "sampleRateHz", 0),
		Order:        int(floatField(p, "order", 4)),
		TapCount:     int(floatField(p, "tapCount", 31)),
		RippleDB:     floatField(p, "rippleDb", 0),
	}, nil
}

func reportToJS(r sweep.Report) js.Value {
	freq := make([]any, len(r.Frequency))
	for i, s := range r.Frequency {
		freq[i] = map[string]any{
			"frequency":   s.FrequencyHz,
			"magnitude":   s.Magnitude,
			"magnitudeDb": s.MagnitudeDB,
			"phase":       s.PhaseDeg,
			"groupDelay":  s.GroupDelay,
		}
	}
	out := map[string]any{
		"frequency": freq,
		"impulse":   float64Array(r.Impulse),
		"step":      float64Array(r.Step),
	}
	if r.Coefficients != nil {
		out["coefficients"] = float64Array(r.Coefficients)
	}
	return js.ValueOf(out)
}

func float64Array(values []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(values))
	for i, v := range values {
		arr.SetIndex(i, v)
	}
	return arr
}

func stringField(p js.Value, name, def string) string {
	if v := p.Get(name); v.Type() == js.TypeString {
		return v.String()
	}
	return def
}

func floatField(p js.Value, name string, def float64) float64 {
	if v := p.Get(name); v.Type() == js.TypeNumber {
		return v.Float()
	}
	return def
}

func errorResult(msg string) js.Value {
	return js.ValueOf(map[string]any{"error": msg})
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
