package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRecord_PlainJSON(t *testing.T) {
	input := `{"a": [0, 1], "s": [0, 3], "dur": [3, 2], "C_max": 5, "c_p": 1}`

	rec, err := ExtractRecord(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, rec.Assignments)
	assert.Equal(t, []float64{0, 3}, rec.Starts)
	assert.Equal(t, 5.0, rec.Makespan)
	assert.Equal(t, 1.0, rec.PriorityCost)
}

func TestExtractRecord_LastSolutionWins(t *testing.T) {
	input := `{"a": [0], "s": [0], "dur": [9], "C_max": 9}
----------
{"a": [0], "s": [0], "dur": [5], "C_max": 5}
----------
==========
`

	rec, err := ExtractRecord(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 5.0, rec.Makespan, "later solutions supersede earlier ones")
}

func TestExtractRecord_SkipsStatusFooter(t *testing.T) {
	input := `{"a": [1], "s": [2], "dur": [4]}
----------
=====UNSATISFIABLE=====
`

	rec, err := ExtractRecord(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, rec.Assignments)
}

func TestExtractRecord_SkipsUnparseableParts(t *testing.T) {
	input := `% solver chatter
not json at all
----------
{"a": [0], "s": [0], "dur": [1]}
----------
still not json
`

	rec, err := ExtractRecord(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, rec.Durations)
}

func TestExtractRecord_NoSolution(t *testing.T) {
	for name, input := range map[string]string{
		"empty":       "",
		"only status": "=====UNSATISFIABLE=====\n",
		"only noise":  "warning: something\n----------\nmore noise\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractRecord(strings.NewReader(input))
			assert.ErrorIs(t, err, ErrNoSolution)
		})
	}
}
