package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/epicsync/internal/cli/formatter"
	"github.com/alexanderramin/epicsync/internal/export"
	"github.com/alexanderramin/epicsync/internal/taskfile"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Parse task files and write the sync structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, app, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and report without writing the JSON structure")

	return cmd
}

func runSync(cmd *cobra.Command, app *App, dryRun bool) error {
	cfg, logger, err := loadRuntime(cmd, app)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	epics, err := taskfile.NewLoader(cfg.TasksDir, cfg.Pattern, logger).Load()
	if errors.Is(err, taskfile.ErrNoTaskFiles) {
		fmt.Fprint(out, formatter.FormatNoTaskFiles(cfg.TasksDir))
		return err
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatFound(len(epics)))

	summary := taskfile.Aggregate(epics)
	warnings := taskfile.Validate(summary)
	logger.Debug("aggregated task files",
		"phases", len(summary.Phases),
		"waves", len(summary.Waves),
		"warnings", len(warnings))

	structure, err := export.Convert(summary, export.Space{Name: cfg.SpaceName, ID: cfg.SpaceID})
	if err != nil {
		return fmt.Errorf("building sync structure: %w", err)
	}

	fmt.Fprintln(out, formatter.FormatStructure(summary))
	fmt.Fprintln(out, formatter.FormatSummaryBox(cfg.SpaceName, summary))
	if w := formatter.FormatWarnings(warnings); w != "" {
		fmt.Fprintln(out, w)
	}

	if dryRun {
		data, err := export.Marshal(structure)
		if err != nil {
			return fmt.Errorf("encoding sync structure: %w", err)
		}
		if err := export.Validate(data); err != nil {
			return err
		}
	} else {
		if err := export.WriteFile(cfg.OutputPath, structure); err != nil {
			return err
		}
		logger.Info("wrote sync structure", "path", cfg.OutputPath, "fingerprint", structure.Fingerprint[:12])
	}

	fmt.Fprintln(out, formatter.FormatSaved(cfg.OutputPath, dryRun))
	fmt.Fprintln(out, formatter.FormatWaves(summary.Waves))
	fmt.Fprint(out, formatter.FormatNextSteps(cfg.OutputPath))
	return nil
}
