package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GANTTVIZ_MINIZINC", "")
	t.Setenv("GANTTVIZ_SOLVER", "")
	t.Setenv("GANTTVIZ_SOLVE_TIMEOUT_MS", "")

	cfg := LoadConfig()
	assert.Equal(t, "minizinc", cfg.Binary)
	assert.Equal(t, "gecode", cfg.Solver)
	assert.Equal(t, 60000, cfg.TimeoutMs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GANTTVIZ_MINIZINC", "/opt/minizinc/bin/minizinc")
	t.Setenv("GANTTVIZ_SOLVER", "chuffed")
	t.Setenv("GANTTVIZ_SOLVE_TIMEOUT_MS", "5000")

	cfg := LoadConfig()
	assert.Equal(t, "/opt/minizinc/bin/minizinc", cfg.Binary)
	assert.Equal(t, "chuffed", cfg.Solver)
	assert.Equal(t, 5000, cfg.TimeoutMs)
}

func TestLoadConfig_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("GANTTVIZ_SOLVE_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 60000, cfg.TimeoutMs)
}
