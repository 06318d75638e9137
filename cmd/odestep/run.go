package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/odestep/internal/compute"
	"github.com/san-kum/odestep/internal/config"
	"github.com/san-kum/odestep/internal/experiment"
	"github.com/san-kum/odestep/internal/models"
	"github.com/san-kum/odestep/internal/storage"
	"github.com/san-kum/odestep/internal/viz"
)

// resolveConfig layers defaults, preset, config file and changed flags.
func resolveConfig(cmd *cobra.Command, registry *models.Registry, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model
	cfg.DataDir = dataDir

	switch registry.Dim(model) {
	case 1:
		m, _ := registry.Scalar(model)
		cfg.X0 = []float64{m.DefaultState()}
	case 3:
		m, _ := registry.Vector(model)
		st := m.DefaultState()
		cfg.X0 = st[:]
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownModel, model)
	}

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		cfg = p
		cfg.DataDir = dataDir
	}

	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if loaded.Model != model {
			logger.Warn("config file model ignored", "file", configFile, "config_model", loaded.Model, "model", model)
		}
		loaded.Model = model
		if cmd.Flags().Changed("data") || loaded.DataDir == "" {
			loaded.DataDir = dataDir
		}
		dataDir = loaded.DataDir
		cfg = loaded
	}

	if cmd.Flags().Changed("x0") {
		cfg.X0 = append([]float64(nil), x0...)
	}
	if cmd.Flags().Changed("time") {
		cfg.Horizon = horizon
	}
	if cmd.Flags().Changed("dt") {
		cfg.StepSize = stepsize
	}
	if len(params) > 0 {
		parsed, err := parseParams(params)
		if err != nil {
			return nil, err
		}
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64, len(parsed))
		}
		for k, v := range parsed {
			cfg.Params[k] = v
		}
	}

	return cfg, nil
}

func parseParams(raw map[string]string) (map[string]float64, error) {
	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", k, err)
		}
		out[k] = f
	}
	return out, nil
}

func parseState(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("initial state %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func runModel(cmd *cobra.Command, model string, requireDim int) error {
	registry := models.NewRegistry()
	if requireDim != 0 && registry.Dim(model) != requireDim {
		return fmt.Errorf("%s is not a %d-D model (3-D models: %v)", model, requireDim, registry.ListVector())
	}

	cfg, err := resolveConfig(cmd, registry, model)
	if err != nil {
		return err
	}

	logger.Debug("integrating", "model", cfg.Model, "x0", cfg.X0, "horizon", cfg.Horizon, "stepsize", cfg.StepSize, "params", cfg.Params)

	start := time.Now()
	res, err := experiment.New(registry).Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	logger.Debug("integration done", "steps", res.Steps(), "elapsed", elapsed)

	fields := []viz.Field{
		{Label: "model", Value: fmt.Sprintf("%s (%d-D)", res.Model, res.Dim)},
		{Label: "x0", Value: fmt.Sprint(res.X0)},
		{Label: "horizon", Value: fmt.Sprintf("%g", res.Horizon)},
		{Label: "stepsize", Value: fmt.Sprintf("%g", res.StepSize)},
		{Label: "steps", Value: strconv.Itoa(res.Steps())},
		{Label: "elapsed", Value: elapsed.String()},
	}
	for _, name := range []string{"final_norm", "extent", "stability", "finite"} {
		fields = append(fields, viz.Field{Label: name, Value: fmt.Sprintf("%.6g", res.Metrics[name])})
	}
	fmt.Println(viz.Summary("integration completed", fields))

	if printTraj {
		printResult(res)
	}

	if plotTraj {
		comps := res.Components()
		if res.Dim == 3 {
			fmt.Println(viz.PlotComponents(comps, res.Model+" x (red), y (green), z (blue)"))
		} else {
			fmt.Println(viz.Plot(comps[0], res.Model+" x vs time"))
		}
	}

	if save {
		runID, err := saveResult(res)
		if err != nil {
			return err
		}
		fmt.Printf("saved run: %s\n", runID)
	}

	return nil
}

func printResult(res *experiment.Result) {
	if res.Dim == 1 {
		fmt.Println(viz.Values(res.Scalar))
		return
	}
	for i := 0; i < res.Vector.Len(); i++ {
		s := res.Vector.State(i)
		fmt.Println(viz.Values(s[:]))
	}
}

func saveResult(res *experiment.Result) (string, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return "", err
	}

	run := storage.Run{
		Model:    res.Model,
		Horizon:  res.Horizon,
		StepSize: res.StepSize,
		Params:   res.Params,
		Metrics:  res.Metrics,
		Host:     compute.Detect().String(),
	}

	if res.Dim == 3 {
		var x0 [3]float64
		copy(x0[:], res.X0)
		return st.SaveVector(run, x0, res.Vector)
	}
	return st.SaveScalar(run, res.X0[0], res.Scalar)
}

func runSweep(cmd *cobra.Command, args []string) error {
	registry := models.NewRegistry()
	model := args[0]
	if registry.Dim(model) == 0 {
		return fmt.Errorf("%w: %s", models.ErrUnknownModel, model)
	}

	x0s := make([][]float64, 0, len(sweepX0s))
	for _, s := range sweepX0s {
		st, err := parseState(s)
		if err != nil {
			return err
		}
		x0s = append(x0s, st)
	}

	parsed, err := parseParams(params)
	if err != nil {
		return err
	}

	cfg := &config.Config{Model: model, Horizon: horizon, StepSize: stepsize, Params: parsed}

	start := time.Now()
	results, err := experiment.New(registry).Sweep(cmd.Context(), cfg, x0s, workers)
	if err != nil {
		return err
	}
	logger.Debug("sweep done", "runs", len(results), "elapsed", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "X0\tSTEPS\tFINAL\tEXTENT\tSTABILITY")
	for _, res := range results {
		fmt.Fprintf(w, "%v\t%d\t%.6g\t%.6g\t%.3f\n",
			res.X0,
			res.Steps(),
			res.Metrics["final_norm"],
			res.Metrics["extent"],
			res.Metrics["stability"],
		)
	}
	return w.Flush()
}

func benchModel(cmd *cobra.Command, args []string) error {
	model := args[0]
	registry := models.NewRegistry()

	cfg, err := resolveConfig(cmd, registry, model)
	if err != nil {
		return err
	}

	horizons := []float64{1.0, 10.0}
	dts := []float64{0.01, 0.001, 0.0001}

	fmt.Printf("benchmarking %s (%s)\n\n", model, compute.Detect())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HORIZON\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	exp := experiment.New(registry)
	for _, h := range horizons {
		for _, dt := range dts {
			run := cfg.Clone()
			run.Horizon, run.StepSize = h, dt

			start := time.Now()
			res, err := exp.Run(context.Background(), run)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			steps := res.Steps()
			stepsPerSec := float64(steps) / elapsed.Seconds()

			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n",
				h, dt, steps, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}
