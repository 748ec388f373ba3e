package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/ganttviz/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleRun() *domain.Run {
	return &domain.Run{
		ID:           "0d4f3c2b-1111-2222-3333-444455556666",
		Title:        "CP Schedule",
		Source:       domain.RunSourceStdin,
		Makespan:     5,
		PriorityCost: 1,
		TaskCount:    2,
		CreatedAt:    time.Now().Add(-2 * time.Hour),
	}
}

func TestFormatRunList_Table(t *testing.T) {
	out := stripANSI(FormatRunList([]*domain.Run{sampleRun()}))

	assert.Contains(t, out, "RUNS")
	assert.Contains(t, out, "0d4f3c2b")
	assert.NotContains(t, out, "444455556666", "IDs are truncated")
	assert.Contains(t, out, "CP Schedule")
	assert.Contains(t, out, "STDIN")
	assert.Contains(t, out, "2h ago")
}

func TestFormatRunList_Empty(t *testing.T) {
	out := stripANSI(FormatRunList(nil))
	assert.Contains(t, out, "No archived runs")
}

func TestFormatRunList_UntitledShowsPlaceholder(t *testing.T) {
	r := sampleRun()
	r.Title = ""
	out := stripANSI(FormatRunList([]*domain.Run{r}))
	assert.Contains(t, out, "--")
}

func TestFormatRunDetail(t *testing.T) {
	out := stripANSI(FormatRunDetail(sampleRun()))

	assert.Contains(t, out, "CP Schedule")
	assert.Contains(t, out, "STDIN")
	assert.Contains(t, out, "0d4f3c2b-1111-2222-3333-444455556666")
	assert.Contains(t, out, "MAKESPAN")
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "CREATED")
}

func TestSourceBadge(t *testing.T) {
	assert.Equal(t, "SOLVE", stripANSI(SourceBadge(domain.RunSourceSolve)))
	assert.Equal(t, "STDIN", stripANSI(SourceBadge(domain.RunSourceStdin)))
	assert.Equal(t, "FILE", stripANSI(SourceBadge(domain.RunSourceFile)))
	assert.Equal(t, "WEIRD", stripANSI(SourceBadge(domain.RunSource("weird"))))
}
