package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/partsdesk/partsdesk/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".partsdesk.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .partsdesk.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .partsdesk.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before merging so typos in the user's raw input surface.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg.WithDefaults(), nil
}
