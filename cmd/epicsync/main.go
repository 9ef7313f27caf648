package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/epicsync/internal/cli"
	"github.com/alexanderramin/epicsync/internal/taskfile"
	"github.com/mattn/go-isatty"
)

func main() {
	app := &cli.App{
		LogOutput: os.Stderr,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		// The guidance for an empty task directory has already been printed.
		if !errors.Is(err, taskfile.ErrNoTaskFiles) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
