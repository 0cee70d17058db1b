package cli

import (
	"fmt"

	"github.com/partsdesk/partsdesk/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newFeedCmd() *cobra.Command {
	var (
		path       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Fetch the product feed and print the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolvePath(path)
			if err != nil {
				return err
			}

			svc := newSessionService()
			cfg, err := svc.Config(dir)
			if err != nil {
				return err
			}
			products, err := svc.FetchCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, products)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProducts(products))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Store directory holding .partsdesk.yaml (defaults to current working directory)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
