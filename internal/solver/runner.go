package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/alexanderramin/ganttviz/internal/domain"
)

// Runner invokes the optimization solver as a black-box subprocess and parses
// its output stream into a validated Schedule. The solver itself is an
// external collaborator; Runner only shapes its input and output.
type Runner struct {
	cfg Config
}

// NewRunner creates a Runner with the given configuration.
func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg}
}

// Run solves the given model (optionally with a data file) and returns the
// resulting schedule. The subprocess is bounded by the configured timeout on
// top of any deadline already on ctx.
func (r *Runner) Run(ctx context.Context, modelPath, dataPath string) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	args := []string{"--solver", r.cfg.Solver, "--output-mode", "json", modelPath}
	if dataPath != "" {
		args = append(args, dataPath)
	}

	cmd := exec.CommandContext(ctx, r.cfg.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q not found in PATH", ErrSolverUnavailable, r.cfg.Binary)
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("solver timed out after %dms: %w", r.cfg.TimeoutMs, ctx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("running solver: %s: %w", msg, err)
		}
		return nil, fmt.Errorf("running solver: %w", err)
	}

	rec, err := ExtractRecord(&stdout)
	if err != nil {
		return nil, err
	}
	return rec.Schedule()
}
