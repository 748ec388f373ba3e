package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttviz/internal/render"
)

const (
	filledBlock = "█"

	minLaneWidth = 20
	gutterGap    = 2
)

// FormatChart renders chart primitives as a colored terminal Gantt view:
// one lane per employee with block bars scaled to the available width, a time
// ruler underneath, a color legend, and the precedence chains spelled out.
// Lanes are printed top-down with the highest employee row first, so row 0
// ends up at the bottom next to the time axis.
func FormatChart(c *render.Chart, width int) string {
	gutter := 0
	for _, row := range c.Rows {
		if len(row.Label) > gutter {
			gutter = len(row.Label)
		}
	}

	laneW := width - gutter - gutterGap
	if laneW < minLaneWidth {
		laneW = minLaneWidth
	}

	maxTime := c.MaxTime
	if maxTime <= 0 {
		maxTime = 1
	}
	// Map a time value onto a lane column. The last column is reserved so a
	// bar ending at maxTime stays inside the lane.
	xAt := func(t float64) int {
		x := int(t / maxTime * float64(laneW-1))
		if x < 0 {
			x = 0
		}
		if x > laneW-1 {
			x = laneW - 1
		}
		return x
	}

	var b strings.Builder
	b.WriteString(Bold(c.Title))
	b.WriteString("\n")
	b.WriteString(Dim(c.YLabel))
	b.WriteString("\n")

	for row := len(c.Rows) - 1; row >= 0; row-- {
		label := c.Rows[row].Label
		b.WriteString(StyleFg.Render(label))
		b.WriteString(strings.Repeat(" ", gutter-len(label)+gutterGap))
		b.WriteString(renderLane(c, row, laneW, xAt))
		b.WriteString("\n")
	}

	pad := strings.Repeat(" ", gutter+gutterGap)
	b.WriteString(pad)
	b.WriteString(Dim(strings.Repeat("─", laneW)))
	b.WriteString("\n")
	b.WriteString(pad)
	b.WriteString(Dim(renderRuler(maxTime, laneW, xAt)))
	b.WriteString("\n")
	b.WriteString(pad)
	b.WriteString(Dim(c.XLabel))
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(renderLegend(c))
	b.WriteString("\n")

	if chains := renderChains(c); chains != "" {
		b.WriteString("\n")
		b.WriteString(Header("Precedence"))
		b.WriteString("\n")
		b.WriteString(chains)
	}

	return b.String()
}

// laneCell is one column of a lane: which bar covers it, if any, and the
// label character overlaid on it.
type laneCell struct {
	color  render.Color
	char   rune
	filled bool
}

// renderLane draws every bar assigned to the given row. Bars are painted in
// task index order, so a later bar overwrites an earlier one where they
// overlap on a shared lane.
func renderLane(c *render.Chart, row, laneW int, xAt func(float64) int) string {
	cells := make([]laneCell, laneW)
	for i := range cells {
		cells[i] = laneCell{char: ' '}
	}

	for _, bar := range c.Bars {
		if bar.Row != row {
			continue
		}
		x0 := xAt(bar.Start)
		x1 := xAt(bar.End)
		for x := x0; x <= x1; x++ {
			cells[x] = laneCell{color: bar.Color, char: '█', filled: true}
		}
		overlayLabel(cells, bar.Label, x0, x1, bar.Color)
	}

	var b strings.Builder
	for i := 0; i < laneW; {
		j := i
		for j < laneW && cells[j].filled == cells[i].filled && cells[j].color == cells[i].color {
			j++
		}
		run := make([]rune, 0, j-i)
		for k := i; k < j; k++ {
			run = append(run, cells[k].char)
		}
		if cells[i].filled {
			b.WriteString(BarStyle(cells[i].color).Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		i = j
	}
	return b.String()
}

// overlayLabel writes the bar label into the bar's cells, centered, when it
// fits. Cells keep the bar's color so the label reads as part of the bar.
func overlayLabel(cells []laneCell, label string, x0, x1 int, color render.Color) {
	span := x1 - x0 + 1
	if len(label) > span {
		return
	}
	start := x0 + (span-len(label))/2
	for i, r := range label {
		cells[start+i] = laneCell{color: color, char: r, filled: true}
	}
}

// renderRuler places tick values along the lane at regular time steps.
func renderRuler(maxTime float64, laneW int, xAt func(float64) int) string {
	out := make([]rune, laneW)
	for i := range out {
		out[i] = ' '
	}

	step := rulerStep(maxTime)
	for t := 0.0; t <= maxTime+step/2; t += step {
		tick := fmt.Sprintf("%g", t)
		x := xAt(t)
		if x+len(tick) > laneW {
			x = laneW - len(tick)
		}
		for i, r := range tick {
			out[x+i] = r
		}
	}
	return string(out)
}

// rulerStep picks a 1/2/5-scaled step yielding roughly eight tick values.
func rulerStep(maxTime float64) float64 {
	steps := []float64{0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}
	for _, s := range steps {
		if maxTime/s <= 8 {
			return s
		}
	}
	return maxTime / 8
}

// renderLegend lists the priority color mapping using swatch blocks.
func renderLegend(c *render.Chart) string {
	entries := []struct {
		color render.Color
		label string
	}{
		{render.ColorRed, "priority 0"},
		{render.ColorBlue, "priority 1"},
		{render.ColorGreen, "priority 2"},
		{render.ColorGray, "other"},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, BarStyle(e.color).Render(filledBlock)+" "+Dim(e.label))
	}
	return strings.Join(parts, "  ")
}

// renderChains lists each bar label that records predecessors, one per line.
func renderChains(c *render.Chart) string {
	var b strings.Builder
	for _, bar := range c.Bars {
		if !strings.Contains(bar.Label, "->") {
			continue
		}
		b.WriteString("  ")
		b.WriteString(StyleFg.Render(bar.Label))
		b.WriteString("\n")
	}
	return b.String()
}
