package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(12)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff00ff"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// Field is one label/value row of a summary panel.
type Field struct {
	Label string
	Value string
}

// Summary renders a titled panel of fields.
func Summary(title string, fields []Field) string {
	var b strings.Builder
	b.WriteString(Title.Render(title))
	for _, f := range fields {
		b.WriteString("\n")
		b.WriteString(MetricLabel.Render(f.Label))
		b.WriteString(MetricValue.Render(f.Value))
	}
	return Panel.Render(b.String())
}

// Values formats every sample as "%.4f " on one line.
func Values(data []float64) string {
	var b strings.Builder
	b.Grow(len(data) * 8)
	for _, v := range data {
		fmt.Fprintf(&b, "%.4f ", v)
	}
	return b.String()
}
