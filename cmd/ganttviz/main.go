package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/ganttviz/internal/cli"
	"github.com/alexanderramin/ganttviz/internal/db"
	"github.com/alexanderramin/ganttviz/internal/repository"
	"github.com/alexanderramin/ganttviz/internal/solver"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath, err := db.DefaultPath()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Runs:   repository.NewSQLiteRunRepo(database),
		Solver: solver.NewRunner(solver.LoadConfig()),
	}

	// Detect interactive terminal to pick the output sink.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
