package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/epicsync/internal/cli/formatter"
	"github.com/alexanderramin/epicsync/internal/taskfile"
	"github.com/spf13/cobra"
)

// ErrWarnings is returned by validate --strict when any warning was found.
var ErrWarnings = errors.New("task files have warnings")

func newValidateCmd(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check task files without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			summary := taskfile.Aggregate(epics)
			warnings := taskfile.Validate(summary)

			fmt.Fprintln(out, formatter.FormatFound(len(epics)))
			fmt.Fprintln(out, formatter.FormatEpicTable(summary))

			if len(warnings) == 0 {
				fmt.Fprintln(out, formatter.StyleGreen.Render("✔ No problems found"))
				return nil
			}
			fmt.Fprint(out, formatter.FormatWarnings(warnings))
			if strict {
				return fmt.Errorf("%w (%d)", ErrWarnings, len(warnings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any warning is found")

	return cmd
}
