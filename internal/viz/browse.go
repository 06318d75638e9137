package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultPageSize = 20

// Browser is a bubbletea model that pages through a stored trajectory.
type Browser struct {
	title    string
	columns  []string
	times    []float64
	states   [][]float64
	offset   int
	cursor   int
	pageSize int
	column   int
}

// NewBrowser pages through states; columns names the state components.
func NewBrowser(title string, columns []string, times []float64, states [][]float64) Browser {
	return Browser{
		title:    title,
		columns:  columns,
		times:    times,
		states:   states,
		pageSize: defaultPageSize,
	}
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "down", "j":
			b.move(1)
		case "up", "k":
			b.move(-1)
		case "pgdown", "f", " ":
			b.move(b.pageSize)
		case "pgup", "b":
			b.move(-b.pageSize)
		case "home", "g":
			b.move(-len(b.states))
		case "end", "G":
			b.move(len(b.states))
		case "tab":
			if len(b.columns) > 0 {
				b.column = (b.column + 1) % len(b.columns)
			}
		}
	case tea.WindowSizeMsg:
		if rows := msg.Height - 6; rows > 0 {
			b.pageSize = rows
			b.move(0)
		}
	}
	return b, nil
}

func (b *Browser) move(delta int) {
	n := len(b.states)
	if n == 0 {
		return
	}
	b.cursor += delta
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor >= n {
		b.cursor = n - 1
	}
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+b.pageSize {
		b.offset = b.cursor - b.pageSize + 1
	}
}

// Cursor returns the selected step.
func (b Browser) Cursor() int { return b.cursor }

func (b Browser) View() string {
	var s strings.Builder
	s.WriteString(Title.Render(b.title))
	s.WriteString(Subtle.Render(fmt.Sprintf("  step %d/%d", b.cursor+1, len(b.states))))
	s.WriteString("\n\n")

	header := fmt.Sprintf("%8s  %12s", "step", "time")
	for i, c := range b.columns {
		cell := fmt.Sprintf("  %14s", c)
		if i == b.column {
			cell = Selected.Render(cell)
		}
		header += cell
	}
	s.WriteString(MetricLabel.UnsetWidth().Render(header))
	s.WriteString("\n")

	end := b.offset + b.pageSize
	if end > len(b.states) {
		end = len(b.states)
	}
	for i := b.offset; i < end; i++ {
		row := fmt.Sprintf("%8d  %12.6f", i, b.times[i])
		for _, v := range b.states[i] {
			row += fmt.Sprintf("  %14.6g", v)
		}
		if i == b.cursor {
			row = Selected.Render(row)
		}
		s.WriteString(row)
		s.WriteString("\n")
	}

	if len(b.states) > 0 && len(b.columns) > 0 {
		series := make([]float64, len(b.states))
		for i, st := range b.states {
			if b.column < len(st) {
				series[i] = st[b.column]
			}
		}
		s.WriteString("\n")
		s.WriteString(Plot(series, b.columns[b.column]+" vs time"))
		s.WriteString("\n")
	}

	s.WriteString(KeyHint.Render("\n↑/↓ step • pgup/pgdn page • g/G ends • tab column • q quit"))
	return s.String()
}

// RunBrowser starts the interactive viewer on the terminal.
func RunBrowser(b Browser) error {
	_, err := tea.NewProgram(b, tea.WithAltScreen()).Run()
	return err
}
