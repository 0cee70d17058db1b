package cli

import (
	"errors"
	"fmt"

	"github.com/partsdesk/partsdesk/internal/adapters/inbound/menu"
	"github.com/partsdesk/partsdesk/internal/adapters/outbound/history"
	"github.com/partsdesk/partsdesk/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive session",
		Long: "Load the catalog from the configured product feed and open the main menu. " +
			"Choosing Exit saves every collection under the data directory; closing the input discards the session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolvePath(path)
			if err != nil {
				return err
			}

			svc := newSessionService()
			sess, err := svc.Open(cmd.Context(), dir)
			if err != nil {
				return err
			}

			source := sess.Config.FeedURL
			if sess.Config.FeedPath != "" {
				source = sess.Config.FeedPath
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderBanner(len(sess.Store.Products), source))

			err = menu.New(sess, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
			if errors.Is(err, menu.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "input closed, session discarded without saving")
				return nil
			}
			if err != nil {
				return err
			}

			manifest, err := svc.Save(sess)
			if err != nil {
				return err
			}
			if err := history.New().Append(sess.DataDir(), *manifest); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: save history not updated:", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderManifest(sess.DataDir(), manifest))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Store directory holding .partsdesk.yaml (defaults to current working directory)")

	return cmd
}
