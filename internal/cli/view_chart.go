package cli

import (
	"fmt"

	"github.com/alexanderramin/ganttviz/internal/cli/formatter"
	"github.com/alexanderramin/ganttviz/internal/render"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chartModel is a minimal full-screen viewer: the rendered chart inside a
// scrollable viewport, re-laid-out on every terminal resize.
type chartModel struct {
	chart *render.Chart
	vp    viewport.Model
	ready bool
}

func newChartModel(chart *render.Chart) chartModel {
	return chartModel{chart: chart, vp: viewport.New(0, 0)}
}

func (m chartModel) Init() tea.Cmd {
	return nil
}

func (m chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 1 // leave a line for the help bar
		m.vp.SetContent(formatter.FormatChart(m.chart, msg.Width))
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m chartModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.vp.View() + "\n" + formatter.Dim("↑/↓ scroll · q quit")
}

// runChartView opens the chart in a full-screen interactive viewer.
func runChartView(chart *render.Chart) error {
	p := tea.NewProgram(newChartModel(chart), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running chart viewer: %w", err)
	}
	return nil
}
