package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/featlint/featlint/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".featlint.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .featlint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .featlint.yaml from projectPath. Returns the default
// layout if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	merged := cfg.Merge(domain.DefaultConfig())
	if err := merged.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return merged, nil
}
