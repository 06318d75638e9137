package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/odestep/internal/config"
	"github.com/san-kum/odestep/internal/integrators"
	"github.com/san-kum/odestep/internal/models"
	"github.com/san-kum/odestep/internal/viz"
)

var (
	dataDir    string
	verbose    bool
	logFormat  string
	x0         []float64
	horizon    float64
	stepsize   float64
	params     map[string]string
	configFile string
	preset     string
	save       bool
	printTraj  bool
	plotTraj   bool
	sweepX0s   []string
	workers    int
	xAxis      int
	yAxis      int
	svgOut     string

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// main registers the odestep commands; with no subcommand it reproduces the
// growth demo and prints its whole trajectory. Errors exit with status 1.
func main() {
	rootCmd := &cobra.Command{
		Use:           "odestep",
		Short:         "fixed-step euler integration of 1-D and 3-D ODEs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(logFormat, verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		RunE: runDemo,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "integrate a model (1-D or 3-D)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModel(cmd, args[0], 0)
		},
	}
	addRunFlags(runCmd)

	run3dCmd := &cobra.Command{
		Use:   "run3d [model]",
		Short: "integrate a 3-D model with the lane stepper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModel(cmd, args[0], 3)
		},
	}
	addRunFlags(run3dCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [model]",
		Short: "run a model from several initial states concurrently",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&horizon, "time", config.DefaultHorizon, "horizon")
	sweepCmd.Flags().Float64Var(&stepsize, "dt", config.DefaultStepSize, "step size")
	sweepCmd.Flags().StringArrayVar(&sweepX0s, "x0", nil, "initial state, comma separated (repeatable)")
	sweepCmd.Flags().StringToStringVar(&params, "param", nil, "model parameter name=value")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "concurrent runs (0 = NumCPU)")
	_ = sweepCmd.MarkFlagRequired("x0")

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "benchmark a model across step sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  benchModel,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	browseCmd := &cobra.Command{
		Use:   "browse [run_id]",
		Short: "page through a run interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  browseRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	svgCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a time series or phase plot as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().IntVar(&xAxis, "x-axis", -1, "state index for x-axis (-1 = time)")
	svgCmd.Flags().IntVar(&yAxis, "y-axis", -1, "state index for y-axis (-1 = all components)")
	svgCmd.Flags().StringVarP(&svgOut, "output", "o", "", "output file (default stdout)")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available models",
		Run: func(cmd *cobra.Command, args []string) {
			r := models.NewRegistry()
			fmt.Printf("1-D: %v\n", r.ListScalar())
			fmt.Printf("3-D: %v\n", r.ListVector())
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "show lane layout and cpu vector support",
		Run:   showInfo,
	}

	rootCmd.AddCommand(runCmd, run3dCmd, sweepCmd, benchCmd, listCmd, plotCmd, browseCmd, exportCmd, svgCmd, modelsCmd, presetsCmd, infoCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("odestep failed", "err", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64SliceVar(&x0, "x0", nil, "initial state (1 or 3 values, default from model)")
	cmd.Flags().Float64Var(&horizon, "time", config.DefaultHorizon, "horizon")
	cmd.Flags().Float64Var(&stepsize, "dt", config.DefaultStepSize, "step size")
	cmd.Flags().StringToStringVar(&params, "param", nil, "model parameter name=value")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().BoolVar(&save, "save", false, "store the run under --data")
	cmd.Flags().BoolVar(&printTraj, "print", false, "print every sample")
	cmd.Flags().BoolVar(&plotTraj, "plot", false, "plot the trajectory")
}

func newLogger(format string, debug bool) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s (text, json)", format)
	}
}

// runDemo integrates dx/dt = x from 0.001 over 10s with h=1e-4.
func runDemo(cmd *cobra.Command, args []string) error {
	m := models.NewGrowth()
	traj, err := integrators.Integrate(config.DefaultX0, config.DefaultHorizon, config.DefaultStepSize, models.ScalarFunc(m))
	if err != nil {
		return fmt.Errorf("something went horribly wrong: %w", err)
	}

	fmt.Println("Integration completed. Here follows the integration vector:")
	fmt.Println(viz.Values(traj))
	return nil
}
