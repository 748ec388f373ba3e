package cli

import (
	"github.com/alexanderramin/ganttviz/internal/domain"
	"github.com/spf13/cobra"
)

func newSolveCmd(app *App) *cobra.Command {
	var opts renderOptions
	var dataPath string

	cmd := &cobra.Command{
		Use:   "solve <model-file>",
		Short: "Run the solver on a model and render the result",
		Long: `Solve invokes the configured constraint solver on a model file, waits for
the best solution within the timeout, and renders it as a Gantt chart.
Solver binary, backend and timeout come from GANTTVIZ_MINIZINC,
GANTTVIZ_SOLVER and GANTTVIZ_SOLVE_TIMEOUT_MS.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := app.Solver.Run(cmd.Context(), args[0], dataPath)
			if err != nil {
				return err
			}
			return emitSchedule(app, cmd, schedule, domain.RunSourceSolve, opts)
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Data file passed to the solver")
	addRenderFlags(cmd, &opts)
	return cmd
}
