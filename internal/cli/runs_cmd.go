package cli

import (
	"fmt"

	"github.com/alexanderramin/ganttviz/internal/cli/formatter"
	"github.com/alexanderramin/ganttviz/internal/render"
	"github.com/spf13/cobra"
)

func newRunsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Browse archived render runs",
	}

	cmd.AddCommand(
		newRunsListCmd(app),
		newRunsShowCmd(app),
		newRunsDeleteCmd(app),
	)

	return cmd
}

func newRunsListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.Runs.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRunList(runs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	return cmd
}

func newRunsShowCmd(app *App) *cobra.Command {
	var width int
	var view bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a run and re-render its chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := app.Runs.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			chart, err := render.BuildChart(run.Schedule, run.Title)
			if err != nil {
				return err
			}

			if view && app.IsInteractive != nil && app.IsInteractive() {
				return runChartView(chart)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRunDetail(run))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChart(chart, terminalWidth(width)))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Terminal chart width (default: detected)")
	cmd.Flags().BoolVar(&view, "view", false, "Open the chart in an interactive viewer")
	return cmd
}

func newRunsDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Runs.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted "+args[0])
			return nil
		},
	}
	return cmd
}
