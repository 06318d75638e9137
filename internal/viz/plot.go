package viz

import (
	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 10
)

// Plot draws data resampled to the plot width.
func Plot(data []float64, caption string) string {
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(Downsample(data, plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotComponents draws x, y and z on one chart.
func PlotComponents(series [][]float64, caption string) string {
	if len(series) == 0 || len(series[0]) == 0 {
		return ""
	}
	resampled := make([][]float64, len(series))
	for i, s := range series {
		resampled[i] = Downsample(s, plotWidth)
	}
	return asciigraph.PlotMany(resampled,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
	)
}

// Downsample picks n evenly spaced samples, always keeping the last one.
func Downsample(data []float64, n int) []float64 {
	if n <= 0 || len(data) <= n {
		return data
	}
	if n == 1 {
		return data[len(data)-1:]
	}
	out := make([]float64, n)
	last := len(data) - 1
	for i := range out {
		out[i] = data[i*last/(n-1)]
	}
	return out
}
