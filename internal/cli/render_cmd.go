package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/ganttviz/internal/cli/formatter"
	"github.com/alexanderramin/ganttviz/internal/domain"
	"github.com/alexanderramin/ganttviz/internal/render"
	"github.com/alexanderramin/ganttviz/internal/render/svg"
	"github.com/alexanderramin/ganttviz/internal/solver"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [solver-output-file]",
		Short: "Render solver output as a Gantt chart",
		Long: `Render reads solver output (JSON, possibly wrapped in a multi-solution
stream) from a file or stdin and draws the schedule as a Gantt chart.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := domain.RunSourceStdin
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening solver output: %w", err)
				}
				defer f.Close()
				in = f
				source = domain.RunSourceFile
			}

			rec, err := solver.ExtractRecord(in)
			if err != nil {
				return err
			}
			schedule, err := rec.Schedule()
			if err != nil {
				return err
			}

			return emitSchedule(app, cmd, schedule, source, opts)
		},
	}

	addRenderFlags(cmd, &opts)
	return cmd
}

// renderOptions are the output flags shared by render and solve.
type renderOptions struct {
	title     string
	theme     string
	out       string
	width     int
	view      bool
	force     bool
	noArchive bool
}

func addRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	cmd.Flags().StringVar(&opts.title, "title", "", "Title prefix for the chart")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "YAML theme file for SVG output")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the chart as SVG to this file")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Terminal chart width (default: detected)")
	cmd.Flags().BoolVar(&opts.view, "view", false, "Open the chart in an interactive viewer")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite the output file without asking")
	cmd.Flags().BoolVar(&opts.noArchive, "no-archive", false, "Do not record this run in the archive")
}

// emitSchedule builds the chart, archives the run, and sends the chart to the
// selected sink: an SVG file, the interactive viewer, the colored terminal
// chart, or plain SVG when stdout is piped.
func emitSchedule(app *App, cmd *cobra.Command, s *domain.Schedule, source domain.RunSource, opts renderOptions) error {
	chart, err := render.BuildChart(s, opts.title)
	if err != nil {
		return err
	}

	if !opts.noArchive && app.Runs != nil {
		run := &domain.Run{
			ID:           uuid.New().String(),
			Title:        opts.title,
			Source:       source,
			Makespan:     s.Makespan,
			PriorityCost: s.PriorityCost,
			TaskCount:    len(s.Tasks),
			Schedule:     s,
			CreatedAt:    time.Now().UTC(),
		}
		if err := app.Runs.Create(cmd.Context(), run); err != nil {
			return fmt.Errorf("archiving run: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("archived run "+run.ID[:8]))
	}

	if opts.out != "" {
		return writeSVGFile(app, cmd, chart, opts)
	}

	interactive := app.IsInteractive != nil && app.IsInteractive()
	if opts.view && interactive {
		return runChartView(chart)
	}
	if interactive {
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChart(chart, terminalWidth(opts.width)))
		return nil
	}

	theme, err := svg.LoadTheme(opts.theme)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), svg.Render(chart, theme))
	return nil
}

func writeSVGFile(app *App, cmd *cobra.Command, chart *render.Chart, opts renderOptions) error {
	theme, err := svg.LoadTheme(opts.theme)
	if err != nil {
		return err
	}

	if _, err := os.Stat(opts.out); err == nil && !opts.force {
		interactive := app.IsInteractive != nil && app.IsInteractive()
		if !interactive {
			return fmt.Errorf("output file %s exists (use --force to overwrite)", opts.out)
		}
		ok, err := confirmOverwrite(opts.out)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("aborted"))
			return nil
		}
	}

	if err := svg.WriteFile(opts.out, chart, theme); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote "+opts.out)
	return nil
}

// confirmOverwrite asks before clobbering an existing output file.
func confirmOverwrite(path string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite %s?", path)).
				Value(&ok),
		),
	).WithTheme(ganttvizHuhTheme())
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirming overwrite: %w", err)
	}
	return ok, nil
}

// terminalWidth resolves the width for the terminal chart: the flag value if
// set, the detected terminal width otherwise, with a sane fallback.
func terminalWidth(flag int) int {
	if flag > 0 {
		return flag
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 100
}
