package export

import (
	"fmt"
	"strings"
)

// Point is one vertex of an SVG path.
type Point struct{ X, Y float64 }

var seriesColors = []string{"#ff4444", "#00ff88", "#00ccff", "#ffcc00"}

// TrajectoryToSVG draws one path per series. Each series is a list of points
// in data coordinates; all series share one set of bounds.
func TrajectoryToSVG(series [][]Point, width, height int) string {
	minX, maxX, minY, maxY, ok := bounds(series)
	if !ok {
		return ""
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for k, points := range series {
		if len(points) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, seriesColors[k%len(seriesColors)]))
		for i, p := range points {
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)

			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(series [][]Point) (minX, maxX, minY, maxY float64, ok bool) {
	for _, points := range series {
		if len(points) < 2 {
			continue
		}
		for _, p := range points {
			if !ok {
				minX, maxX, minY, maxY, ok = p.X, p.X, p.Y, p.Y, true
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	return
}

// TimeSeries pairs every state column with times, decimated to at most
// maxPoints vertices per path.
func TimeSeries(times []float64, states [][]float64, maxPoints int) [][]Point {
	if len(states) == 0 {
		return nil
	}
	stride := stride(len(states), maxPoints)
	series := make([][]Point, len(states[0]))
	for i := 0; i < len(states); i += stride {
		for k := range series {
			if k < len(states[i]) {
				series[k] = append(series[k], Point{times[i], states[i][k]})
			}
		}
	}
	return series
}

// Phase pairs columns a and b of states, e.g. x against z for a Lorenz run.
func Phase(states [][]float64, a, b, maxPoints int) []Point {
	stride := stride(len(states), maxPoints)
	points := make([]Point, 0, len(states)/stride+1)
	for i := 0; i < len(states); i += stride {
		if a < len(states[i]) && b < len(states[i]) {
			points = append(points, Point{states[i][a], states[i][b]})
		}
	}
	return points
}

func stride(n, maxPoints int) int {
	if maxPoints <= 0 || n <= maxPoints {
		return 1
	}
	return (n + maxPoints - 1) / maxPoints
}
