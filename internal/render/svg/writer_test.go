package svg

import (
	"strings"
	"testing"

	"github.com/alexanderramin/ganttviz/internal/domain"
	"github.com/alexanderramin/ganttviz/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleChart(t *testing.T) *render.Chart {
	t.Helper()
	s := &domain.Schedule{
		Tasks: []domain.Task{
			{Employee: 0, Start: 0, Duration: 3, Priority: 0},
			{Employee: 1, Start: 3, Duration: 2, Priority: 1},
		},
		Edges:        []domain.PrecedenceEdge{{Predecessor: 0, Successor: 1}},
		Makespan:     5,
		PriorityCost: 1,
	}
	chart, err := render.BuildChart(s, "CP Schedule")
	require.NoError(t, err)
	return chart
}

func TestRender_BarsArrowsAndLabels(t *testing.T) {
	out := Render(exampleChart(t), DefaultTheme())

	// Background rect plus one rect per task bar.
	assert.Equal(t, 3, strings.Count(out, "<rect "), "expected background + 2 bars")
	assert.Equal(t, 1, strings.Count(out, `marker-end="url(#arrowhead)"`))

	assert.Contains(t, out, ">T0</text>")
	assert.Contains(t, out, ">T0 -&gt; T1</text>")
	assert.Contains(t, out, "Employee 0")
	assert.Contains(t, out, "Employee 1")
	assert.Contains(t, out, "Makespan: 5")
	assert.Contains(t, out, "Priority Cost: 1")
	assert.Contains(t, out, ">Time</text>")
	assert.Contains(t, out, ">Employees</text>")
}

func TestRender_PriorityFills(t *testing.T) {
	theme := DefaultTheme()
	out := Render(exampleChart(t), theme)

	assert.Contains(t, out, `fill="`+theme.Colors.Red+`"`)
	assert.Contains(t, out, `fill="`+theme.Colors.Blue+`"`)
	assert.NotContains(t, out, `fill="`+theme.Colors.Gray+`"`)
}

func TestRender_Deterministic(t *testing.T) {
	chart := exampleChart(t)
	assert.Equal(t, Render(chart, DefaultTheme()), Render(chart, DefaultTheme()))
}

func TestRender_DanglingEdgeDrawsNoArrow(t *testing.T) {
	s := &domain.Schedule{
		Tasks: []domain.Task{{Employee: 0, Start: 0, Duration: 2}},
		Edges: []domain.PrecedenceEdge{{Predecessor: 7, Successor: 0}},
	}
	chart, err := render.BuildChart(s, "")
	require.NoError(t, err)

	out := Render(chart, DefaultTheme())
	assert.NotContains(t, out, "marker-end", "dangling precedence must not produce an arrow")
	assert.Contains(t, out, ">T7 -&gt; T0</text>", "label still records the predecessor")
}

func TestRender_ZeroMaxTimeDoesNotDivideByZero(t *testing.T) {
	s := &domain.Schedule{Tasks: []domain.Task{{Employee: 0, Start: 0, Duration: 0}}}
	chart, err := render.BuildChart(s, "")
	require.NoError(t, err)

	out := Render(chart, DefaultTheme())
	assert.NotContains(t, out, "NaN")
	assert.NotContains(t, out, "Inf")
}

func TestTickStep(t *testing.T) {
	assert.Equal(t, 1.0, tickStep(8))
	assert.Equal(t, 2.0, tickStep(15))
	assert.Equal(t, 5.0, tickStep(42))
	assert.Equal(t, 0.5, tickStep(3.5))
}
