package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/partsdesk/partsdesk/internal/adapters/outbound/config"
	"github.com/partsdesk/partsdesk/internal/adapters/outbound/feed"
	"github.com/partsdesk/partsdesk/internal/adapters/outbound/gitinfo"
	"github.com/partsdesk/partsdesk/internal/adapters/outbound/records"
	"github.com/partsdesk/partsdesk/internal/application"
	"github.com/spf13/cobra"
)

func newSessionService() *application.SessionService {
	return application.NewSessionService(config.New(), feed.New, records.New(gitinfo.New()))
}

func resolvePath(path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
