package testutil

import (
	"time"

	"github.com/alexanderramin/ganttviz/internal/domain"
	"github.com/google/uuid"
)

// NewTestSchedule returns a small two-employee schedule with one precedence
// edge, matching the shape a solver typically emits.
func NewTestSchedule() *domain.Schedule {
	return &domain.Schedule{
		Tasks: []domain.Task{
			{Employee: 0, Start: 0, Duration: 3, Priority: 0},
			{Employee: 1, Start: 3, Duration: 2, Priority: 1},
		},
		Edges:        []domain.PrecedenceEdge{{Predecessor: 0, Successor: 1}},
		Makespan:     5,
		PriorityCost: 1,
	}
}

// Run options
type RunOption func(*domain.Run)

func WithRunTitle(title string) RunOption {
	return func(r *domain.Run) {
		r.Title = title
	}
}

func WithRunSource(s domain.RunSource) RunOption {
	return func(r *domain.Run) {
		r.Source = s
	}
}

func WithCreatedAt(t time.Time) RunOption {
	return func(r *domain.Run) {
		r.CreatedAt = t
	}
}

// NewTestRun returns an archived run wrapping NewTestSchedule.
func NewTestRun(opts ...RunOption) *domain.Run {
	s := NewTestSchedule()
	r := &domain.Run{
		ID:           uuid.New().String(),
		Title:        "Test Schedule",
		Source:       domain.RunSourceStdin,
		Makespan:     s.Makespan,
		PriorityCost: s.PriorityCost,
		TaskCount:    len(s.Tasks),
		Schedule:     s,
		CreatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
