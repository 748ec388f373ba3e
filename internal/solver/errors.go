package solver

import "errors"

var (
	// ErrNoSolution indicates no parseable schedule record was found in the
	// solver output (infeasible model or garbage stream).
	ErrNoSolution = errors.New("no schedule record found in solver output")

	// ErrSolverUnavailable indicates the solver binary could not be started.
	ErrSolverUnavailable = errors.New("solver binary unavailable")
)
