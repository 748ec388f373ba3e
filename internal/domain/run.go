package domain

import "time"

// RunSource records where an archived schedule came from.
type RunSource string

const (
	RunSourceSolve RunSource = "solve" // solver invoked by us
	RunSourceStdin RunSource = "stdin" // solver output piped in
	RunSourceFile  RunSource = "file"  // solver output read from a file
)

// Run is an archived render: the schedule that was drawn plus enough metadata
// to list and re-render it later.
type Run struct {
	ID           string
	Title        string
	Source       RunSource
	Makespan     float64
	PriorityCost float64
	TaskCount    int
	Schedule     *Schedule
	CreatedAt    time.Time
}
