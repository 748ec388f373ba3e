package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/ganttviz/internal/domain"
	"github.com/alexanderramin/ganttviz/internal/repository"
	"github.com/alexanderramin/ganttviz/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solverOutput = `{"a": [0, 1], "s": [0, 3], "dur": [3, 2], "task_priority": [0, 1],
"P_out": [[0, 1]], "C_max": 5, "c_p": 1}
----------
==========
`

func newTestApp(t *testing.T, interactive bool) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &App{
		Runs:          repository.NewSQLiteRunRepo(database),
		IsInteractive: func() bool { return interactive },
	}
}

// execute runs the root command with the given stdin and args, returning
// captured stdout.
func execute(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderCmd_StdinToTerminalChart(t *testing.T) {
	app := newTestApp(t, true)

	out, err := execute(t, app, solverOutput, "render", "--width", "80")
	require.NoError(t, err)

	assert.Contains(t, out, "Schedule Visualization (Makespan: 5, Priority Cost: 1)")
	assert.Contains(t, out, "Employee 0")
	assert.Contains(t, out, "Employee 1")
}

func TestRenderCmd_PipedOutputIsSVG(t *testing.T) {
	app := newTestApp(t, false)

	out, err := execute(t, app, solverOutput, "render")
	require.NoError(t, err)

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Employee 0")
}

func TestRenderCmd_ArchivesRun(t *testing.T) {
	app := newTestApp(t, false)

	_, err := execute(t, app, solverOutput, "render", "--title", "CP Schedule")
	require.NoError(t, err)

	runs, err := app.Runs.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "CP Schedule", runs[0].Title)
	assert.Equal(t, domain.RunSourceStdin, runs[0].Source)
	assert.Equal(t, 2, runs[0].TaskCount)
}

func TestRenderCmd_NoArchiveSkipsRecording(t *testing.T) {
	app := newTestApp(t, false)

	_, err := execute(t, app, solverOutput, "render", "--no-archive")
	require.NoError(t, err)

	runs, err := app.Runs.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRenderCmd_FileSource(t *testing.T) {
	app := newTestApp(t, false)
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeFile(path, solverOutput))

	_, err := execute(t, app, "", "render", path)
	require.NoError(t, err)

	runs, err := app.Runs.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.RunSourceFile, runs[0].Source)
}

func TestRenderCmd_MissingFile(t *testing.T) {
	app := newTestApp(t, false)

	_, err := execute(t, app, "", "render", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRenderCmd_MissingDataAborts(t *testing.T) {
	app := newTestApp(t, false)

	_, err := execute(t, app, `{"a": [0], "s": [], "dur": [1], "C_max": 1, "c_p": 0}`, "render")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingData)

	// Nothing is archived on a failed render.
	runs, listErr := app.Runs.ListRecent(context.Background(), 10)
	require.NoError(t, listErr)
	assert.Empty(t, runs)
}

func TestRenderCmd_WritesSVGFile(t *testing.T) {
	app := newTestApp(t, false)
	path := filepath.Join(t.TempDir(), "chart.svg")

	out, err := execute(t, app, solverOutput, "render", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := readFile(path)
	require.NoError(t, err)
	assert.Contains(t, data, "<svg")
}

func TestRenderCmd_RefusesOverwriteWhenPiped(t *testing.T) {
	app := newTestApp(t, false)
	path := filepath.Join(t.TempDir(), "chart.svg")
	require.NoError(t, writeFile(path, "old"))

	_, err := execute(t, app, solverOutput, "render", "-o", path, "--no-archive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exists")

	data, readErr := readFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "old", data, "existing file must be untouched")
}

func TestRenderCmd_ForceOverwrites(t *testing.T) {
	app := newTestApp(t, false)
	path := filepath.Join(t.TempDir(), "chart.svg")
	require.NoError(t, writeFile(path, "old"))

	_, err := execute(t, app, solverOutput, "render", "-o", path, "--force", "--no-archive")
	require.NoError(t, err)

	data, readErr := readFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, data, "<svg")
}

func TestRenderCmd_ThemeOverridesSVGColors(t *testing.T) {
	app := newTestApp(t, false)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, writeFile(themePath, "colors:\n  background: \"#123456\"\n"))

	out, err := execute(t, app, solverOutput, "render", "--theme", themePath, "--no-archive")
	require.NoError(t, err)
	assert.Contains(t, out, "#123456")
}
