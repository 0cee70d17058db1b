package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/partsdesk/partsdesk/internal/domain"
)

const historyFile = "history.json"

// FileHistory implements domain.SaveHistory as a JSON list kept next to the
// record files of a data directory.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Append(dataDir string, m domain.Manifest) error {
	entries, err := h.Load(dataDir)
	if err != nil {
		return err
	}

	entries = append(entries, m)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dataDir, historyFile), data, 0644)
}

// Load returns the manifests of every save, oldest first.
func (h *FileHistory) Load(dataDir string) ([]domain.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.Manifest
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
