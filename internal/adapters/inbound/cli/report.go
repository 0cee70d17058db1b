package cli

import (
	"fmt"

	"github.com/partsdesk/partsdesk/internal/adapters/outbound/history"
	"github.com/partsdesk/partsdesk/internal/adapters/outbound/tui"
	"github.com/partsdesk/partsdesk/internal/application"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var (
		path        string
		jsonOutput  bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print statistics over the last saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolvePath(path)
			if err != nil {
				return err
			}

			svc := newSessionService()

			if showHistory {
				cfg, err := svc.Config(dir)
				if err != nil {
					return err
				}
				entries, err := history.New().Load(application.DataDir(dir, cfg))
				if err != nil {
					return fmt.Errorf("loading save history: %w", err)
				}
				if jsonOutput {
					return renderJSON(cmd, entries)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			sess, err := svc.OpenSaved(dir)
			if err != nil {
				return err
			}
			stats := sess.Stats.Compute()

			if jsonOutput {
				return renderJSON(cmd, stats)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderStatistics(stats))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Store directory holding .partsdesk.yaml (defaults to current working directory)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&showHistory, "history", false, "List previous saves instead of statistics")

	return cmd
}
