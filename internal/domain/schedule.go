package domain

import "sort"

// Priority is the solver-assigned priority class of a task. The value space is
// open-ended: classes 0-2 have dedicated chart colors, anything else renders
// with the default color.
type Priority int

// PriorityNone marks a task the solver assigned no priority class.
const PriorityNone Priority = -1

// Task is a single scheduled unit of work: which employee it is assigned to,
// when it starts and how long it runs, on the solver's shared time axis.
type Task struct {
	Employee int
	Start    float64
	Duration float64
	Priority Priority
}

// End returns the task's finish time.
func (t Task) End() float64 {
	return t.Start + t.Duration
}

// PrecedenceEdge states that the task at index Predecessor must complete
// before the task at index Successor starts. Edges are used for visualization
// only; indices that reference no task are tolerated and skipped when drawing.
type PrecedenceEdge struct {
	Predecessor int
	Successor   int
}

// Schedule is a validated solver result: tasks in index order, precedence
// edges, and the two summary metrics. It is immutable once constructed; task
// position is the task's identity ("T0", "T1", ...).
type Schedule struct {
	Tasks        []Task
	Edges        []PrecedenceEdge
	Makespan     float64
	PriorityCost float64
}

// Employees returns the distinct employee identifiers present across all
// tasks, sorted ascending. One chart row per entry.
func (s *Schedule) Employees() []int {
	seen := make(map[int]bool, len(s.Tasks))
	var emps []int
	for _, t := range s.Tasks {
		if !seen[t.Employee] {
			seen[t.Employee] = true
			emps = append(emps, t.Employee)
		}
	}
	sort.Ints(emps)
	return emps
}

// Predecessors maps each successor task index to its predecessor indices,
// preserving edge insertion order. Indices are returned as recorded, including
// ones that reference no task; callers decide how to treat dangling entries.
func (s *Schedule) Predecessors() map[int][]int {
	preds := make(map[int][]int)
	for _, e := range s.Edges {
		preds[e.Successor] = append(preds[e.Successor], e.Predecessor)
	}
	return preds
}
