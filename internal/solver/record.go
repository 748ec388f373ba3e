package solver

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttviz/internal/domain"
)

// Record is the raw JSON shape of a solver result before validation. Field
// names follow the MiniZinc model output: `a` assigns each task an employee,
// `s` and `dur` are start times and durations, `task_priority` is optional,
// `P_out`/`P_raw` carry precedence pairs and `x` is the MIP formulation's 0/1
// employee-by-task assignment matrix.
type Record struct {
	Assignments   []int     `json:"a"`
	Starts        []float64 `json:"s"`
	Durations     []float64 `json:"dur"`
	Priorities    []int     `json:"task_priority"`
	Precedence    [][]int   `json:"P_out"`
	RawPrecedence [][]int   `json:"P_raw"`
	AssignMatrix  [][]int   `json:"x"`
	Makespan      float64   `json:"C_max"`
	PriorityCost  float64   `json:"c_p"`
}

// Schedule validates the record and converts it into the domain model. All
// "is this field present and well-shaped" concerns live here; the renderer
// only ever sees a validated Schedule.
func (r *Record) Schedule() (*domain.Schedule, error) {
	assignments := r.Assignments
	if len(assignments) == 0 && len(r.AssignMatrix) > 0 {
		assignments = deriveAssignments(r.AssignMatrix, len(r.Starts))
	}

	if missing := missingFields(assignments, r.Starts, r.Durations); len(missing) > 0 {
		return nil, fmt.Errorf("solver record field(s) %s: %w",
			strings.Join(missing, ", "), domain.ErrMissingData)
	}
	if len(assignments) != len(r.Starts) || len(r.Starts) != len(r.Durations) {
		return nil, fmt.Errorf("solver record lengths a=%d s=%d dur=%d differ: %w",
			len(assignments), len(r.Starts), len(r.Durations), domain.ErrMissingData)
	}

	tasks := make([]domain.Task, len(r.Starts))
	for i := range tasks {
		priority := domain.PriorityNone
		if i < len(r.Priorities) {
			priority = domain.Priority(r.Priorities[i])
		}
		tasks[i] = domain.Task{
			Employee: assignments[i],
			Start:    r.Starts[i],
			Duration: r.Durations[i],
			Priority: priority,
		}
	}

	return &domain.Schedule{
		Tasks:        tasks,
		Edges:        precedenceEdges(r.Precedence, r.RawPrecedence),
		Makespan:     r.Makespan,
		PriorityCost: r.PriorityCost,
	}, nil
}

func missingFields(assignments []int, starts, durations []float64) []string {
	var missing []string
	if len(assignments) == 0 {
		missing = append(missing, "a")
	}
	if len(starts) == 0 {
		missing = append(missing, "s")
	}
	if len(durations) == 0 {
		missing = append(missing, "dur")
	}
	return missing
}

// deriveAssignments recovers per-task employee assignments from a MIP 0/1
// matrix x[employee][task]. Tasks with no set bit fall back to employee 0.
func deriveAssignments(matrix [][]int, taskCount int) []int {
	assignments := make([]int, taskCount)
	for task := 0; task < taskCount; task++ {
		for emp := range matrix {
			if task < len(matrix[emp]) && matrix[emp][task] == 1 {
				assignments[task] = emp
				break
			}
		}
	}
	return assignments
}

// precedenceEdges converts raw pairs into edges, preferring P_out over P_raw.
// Pairs shorter than two elements are dropped; out-of-range indices are kept
// and tolerated downstream.
func precedenceEdges(out, raw [][]int) []domain.PrecedenceEdge {
	pairs := out
	if len(pairs) == 0 {
		pairs = raw
	}
	var edges []domain.PrecedenceEdge
	for _, p := range pairs {
		if len(p) < 2 {
			continue
		}
		edges = append(edges, domain.PrecedenceEdge{Predecessor: p[0], Successor: p[1]})
	}
	return edges
}
