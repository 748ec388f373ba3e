package solver

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// solutionSeparator is printed by MiniZinc between successive solutions;
// status footers like "==========" (optimality) follow the last one.
const solutionSeparator = "----------"

// ExtractRecord locates the schedule record inside a possibly multi-solution
// solver output stream. The stream is split on the solution separator and
// scanned from the end so the last (best) solution wins; blank parts and
// status lines are skipped.
func ExtractRecord(r io.Reader) (*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading solver output: %w", err)
	}

	parts := strings.Split(string(data), solutionSeparator)
	for i := len(parts) - 1; i >= 0; i-- {
		part := strings.TrimSpace(parts[i])
		if part == "" || strings.HasPrefix(part, "=") {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(part), &rec); err != nil {
			continue
		}
		return &rec, nil
	}

	return nil, ErrNoSolution
}
