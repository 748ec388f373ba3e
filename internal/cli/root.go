package cli

import (
	"github.com/alexanderramin/ganttviz/internal/repository"
	"github.com/alexanderramin/ganttviz/internal/solver"
	"github.com/spf13/cobra"
)

// App holds references to all collaborators used by CLI commands.
type App struct {
	Runs   repository.RunRepo
	Solver *solver.Runner

	// IsInteractive reports whether stdout is attached to a terminal. It
	// decides between the colored terminal chart and plain SVG on stdout,
	// and gates confirmation prompts.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "ganttviz" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ganttviz",
		Short: "Render solver schedules as Gantt charts",
	}

	root.AddCommand(
		newRenderCmd(app),
		newSolveCmd(app),
		newRunsCmd(app),
	)

	return root
}
