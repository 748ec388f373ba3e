// Package render turns a validated schedule into a backend-independent chart:
// one horizontal bar lane per employee, priority-colored task bars, predecessor
// arrows and labels. Backends (SVG, terminal) draw the primitives; they never
// look at the schedule itself.
package render

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttviz/internal/domain"
)

// Color is a chart color category. The mapping from priority class to color is
// fixed: 0 red, 1 blue, 2 green, everything else gray.
type Color int

const (
	ColorGray Color = iota
	ColorRed
	ColorBlue
	ColorGreen
)

// PriorityColor returns the bar color for a priority class. Unknown or missing
// classes never error; they fall back to gray.
func PriorityColor(p domain.Priority) Color {
	switch p {
	case 0:
		return ColorRed
	case 1:
		return ColorBlue
	case 2:
		return ColorGreen
	default:
		return ColorGray
	}
}

// Row is a vertical axis category: one employee lane.
type Row struct {
	Employee int
	Label    string
}

// Bar is a task's horizontal extent on its employee's lane.
type Bar struct {
	Task  int
	Row   int // index into Chart.Rows
	Start float64
	End   float64
	Color Color
	Label string
}

// Arrow is a directed precedence annotation from the end of a predecessor's
// bar to the start of its successor's bar.
type Arrow struct {
	FromX   float64
	FromRow int
	ToX     float64
	ToRow   int
}

// Chart is the composed set of drawn primitives. Building it is deterministic:
// identical schedules produce identical charts, with bars in task index order.
type Chart struct {
	Title   string
	XLabel  string
	YLabel  string
	Rows    []Row
	Bars    []Bar
	Arrows  []Arrow
	MaxTime float64
}

// BuildChart lays out the schedule as a labeled bar chart. titlePrefix
// defaults to "Schedule" when empty. An empty schedule fails with
// domain.ErrMissingData; nothing partial is returned.
func BuildChart(s *domain.Schedule, titlePrefix string) (*Chart, error) {
	if len(s.Tasks) == 0 {
		return nil, fmt.Errorf("schedule has no tasks: %w", domain.ErrMissingData)
	}
	if titlePrefix == "" {
		titlePrefix = "Schedule"
	}

	employees := s.Employees()
	rowOf := make(map[int]int, len(employees))
	rows := make([]Row, len(employees))
	for i, emp := range employees {
		rowOf[emp] = i
		rows[i] = Row{Employee: emp, Label: fmt.Sprintf("Employee %d", emp)}
	}

	preds := s.Predecessors()

	chart := &Chart{
		Title:  fmt.Sprintf("%s Visualization (Makespan: %g, Priority Cost: %g)", titlePrefix, s.Makespan, s.PriorityCost),
		XLabel: "Time",
		YLabel: "Employees",
		Rows:   rows,
	}

	for i, t := range s.Tasks {
		row := rowOf[t.Employee]
		bar := Bar{
			Task:  i,
			Row:   row,
			Start: t.Start,
			End:   t.End(),
			Color: PriorityColor(t.Priority),
			Label: taskLabel(i, preds[i]),
		}
		chart.Bars = append(chart.Bars, bar)
		if bar.End > chart.MaxTime {
			chart.MaxTime = bar.End
		}

		// One arrow per predecessor; dangling indices are dropped from the
		// arrow layer only, the label still records them.
		for _, p := range preds[i] {
			if p < 0 || p >= len(s.Tasks) {
				continue
			}
			pred := s.Tasks[p]
			chart.Arrows = append(chart.Arrows, Arrow{
				FromX:   pred.End(),
				FromRow: rowOf[pred.Employee],
				ToX:     t.Start,
				ToRow:   row,
			})
		}
	}

	return chart, nil
}

// taskLabel builds "T3" or, with predecessors, "T0,T1 -> T3".
func taskLabel(i int, preds []int) string {
	if len(preds) == 0 {
		return fmt.Sprintf("T%d", i)
	}
	names := make([]string, len(preds))
	for j, p := range preds {
		names[j] = fmt.Sprintf("T%d", p)
	}
	return fmt.Sprintf("%s -> T%d", strings.Join(names, ","), i)
}
