package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/san-kum/odestep/internal/compute"
	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/export"
	"github.com/san-kum/odestep/internal/integrators"
	"github.com/san-kum/odestep/internal/storage"
	"github.com/san-kum/odestep/internal/viz"
)

const svgMaxPoints = 4000

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tDIM\tTIME\tHORIZON\tDT\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%.2fs\t%gs\t%d\n",
			run.ID,
			run.Model,
			run.Dim,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Horizon,
			run.StepSize,
			run.Steps,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, [][]float64, []float64, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, nil, err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return nil, nil, nil, err
	}

	if len(states) == 0 {
		return nil, nil, nil, fmt.Errorf("run %s has no samples", runID)
	}
	return meta, states, times, nil
}

func columnNames(dim int) []string {
	if dim == dynamo.Dim3 {
		return []string{"x", "y", "z"}
	}
	return []string{"x"}
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, states, _, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(states))

	for k, name := range columnNames(meta.Dim) {
		data := make([]float64, len(states))
		for i := range states {
			if k < len(states[i]) {
				data[i] = states[i][k]
			}
		}
		fmt.Println(viz.Plot(data, name+" vs time"))
		fmt.Println()
	}

	return nil
}

func browseRun(cmd *cobra.Command, args []string) error {
	meta, states, times, err := loadRun(args[0])
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s  %s (%d-D, h=%g)", meta.ID, meta.Model, meta.Dim, meta.StepSize)
	return viz.RunBrowser(viz.NewBrowser(title, columnNames(meta.Dim), times, states))
}

func exportRun(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, states, times, err := loadRun(args[0])
	if err != nil {
		return err
	}

	var series [][]export.Point
	switch {
	case xAxis < 0 && yAxis < 0:
		series = export.TimeSeries(times, states, svgMaxPoints)
	case xAxis < 0:
		all := export.TimeSeries(times, states, svgMaxPoints)
		if yAxis >= len(all) {
			return fmt.Errorf("y-axis %d out of range for %d-D run", yAxis, meta.Dim)
		}
		series = [][]export.Point{all[yAxis]}
	default:
		if xAxis >= meta.Dim || yAxis < 0 || yAxis >= meta.Dim {
			return fmt.Errorf("phase plot needs two state indices below %d", meta.Dim)
		}
		series = [][]export.Point{export.Phase(states, xAxis, yAxis, svgMaxPoints)}
	}

	svg := export.TrajectoryToSVG(series, 800, 600)
	if svg == "" {
		return fmt.Errorf("run %s has too few samples to draw", meta.ID)
	}

	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	logger.Info("svg written", "run", meta.ID, "path", svgOut)
	return nil
}

func showInfo(cmd *cobra.Command, args []string) {
	f := compute.Detect()
	fmt.Println(viz.Summary("lane layout", []viz.Field{
		{Label: "lane width", Value: fmt.Sprintf("%d x float64", dynamo.LaneWidth)},
		{Label: "lane bytes", Value: fmt.Sprintf("%d", unsafe.Sizeof(dynamo.Lane{}))},
		{Label: "used slots", Value: fmt.Sprintf("%d (1 padding)", dynamo.Dim3)},
		{Label: "cpu", Value: f.String()},
		{Label: "isa ops/lane", Value: fmt.Sprintf("%d", f.OpsPerLane())},
		{Label: "lane kernel", Value: integrators.LaneKernel()},
		{Label: "max steps", Value: fmt.Sprintf("%d", dynamo.MaxSteps)},
	}))
}
