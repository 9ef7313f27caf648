package cli

import (
	"bytes"

	"github.com/alexanderramin/epicsync/internal/export"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Print the written sync structure or one value inside it",
		Long: "Print the sync structure written by the last sync. An optional path\n" +
			"selects one value, e.g. \"phases.0.epics.#.name\" or \"totals.hours\".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRuntime(cmd, app)
			if err != nil {
				return err
			}

			data, err := export.ReadFile(cfg.OutputPath)
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			logger.Debug("querying sync structure", "file", cfg.OutputPath, "path", path)

			out, err := export.Query(data, path)
			if err != nil {
				return err
			}
			if app.interactive() && isJSONContainer(out) {
				out = pretty.Color(out, nil)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	return cmd
}

func isJSONContainer(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && (b[0] == '{' || b[0] == '[')
}
