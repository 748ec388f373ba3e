package solver

import (
	"os"
	"strconv"
)

// Config holds settings for invoking the external MiniZinc solver.
type Config struct {
	Binary    string // minizinc executable
	Solver    string // backend solver passed via --solver
	TimeoutMs int
}

// DefaultConfig returns solver settings matching a stock MiniZinc install.
func DefaultConfig() Config {
	return Config{
		Binary:    "minizinc",
		Solver:    "gecode",
		TimeoutMs: 60000,
	}
}

// LoadConfig reads solver configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GANTTVIZ_MINIZINC"); v != "" {
		cfg.Binary = v
	}
	if v := os.Getenv("GANTTVIZ_SOLVER"); v != "" {
		cfg.Solver = v
	}
	if v := os.Getenv("GANTTVIZ_SOLVE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}
