package cli

import (
	"io"
	"os"

	"github.com/alexanderramin/epicsync/internal/config"
	"github.com/alexanderramin/epicsync/internal/logging"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// App holds the process-level collaborators shared by all commands.
type App struct {
	// LogOutput receives diagnostic logs. Defaults to stderr.
	LogOutput io.Writer
	// IsInteractive reports whether stdout is a terminal. Nil means no.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "epicsync" command. Run without a
// subcommand it performs a sync.
func NewRootCmd(app *App) *cobra.Command {
	var dryRun bool

	root := &cobra.Command{
		Use:   "epicsync",
		Short: "Turn markdown task files into a project-management import structure",
		Long: "epicsync reads the phase-ordered task files produced by the decomposition\n" +
			"step, groups their epics into phases and execution waves, and writes a JSON\n" +
			"structure for manual import into ClickUp.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, app, dryRun)
		},
	}

	config.RegisterFlags(root.PersistentFlags())
	root.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and report without writing the JSON structure")

	root.AddCommand(
		newSyncCmd(app),
		newValidateCmd(app),
		newShowCmd(app),
	)

	return root
}

// loadRuntime resolves the configuration for cmd and builds its logger.
func loadRuntime(cmd *cobra.Command, app *App) (config.Config, *log.Logger, error) {
	cfg, err := config.LoadWithFlags(cmd.Flags())
	if err != nil {
		return cfg, nil, err
	}

	w := app.LogOutput
	if w == nil {
		w = os.Stderr
	}
	logger, err := logging.New(w, cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}
