package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ProjectConfig holds project-level configuration loaded from .featlint.yaml.
// Zero values fall back to the fixed project layout the auditor assumes.
type ProjectConfig struct {
	FeaturesDir   string   `yaml:"features_dir"   json:"features_dir,omitempty"`
	DocsDir       string   `yaml:"docs_dir"       json:"docs_dir,omitempty"`
	Extensions    []string `yaml:"extensions"     json:"extensions,omitempty"`
	SharedFeature string   `yaml:"shared_feature" json:"shared_feature,omitempty"`
	ExcludeGlobs  []string `yaml:"exclude_globs"  json:"exclude_globs,omitempty"`
}

// DefaultConfig returns the conventional layout: features/ scanned for
// .ts/.tsx, reports under docs/documentation, "shared" always importable.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		FeaturesDir:   "features",
		DocsDir:       filepath.Join("docs", "documentation"),
		Extensions:    []string{".ts", ".tsx"},
		SharedFeature: "shared",
	}
}

// Merge overlays explicit (non-zero) values on top of the defaults.
func (c ProjectConfig) Merge(base ProjectConfig) ProjectConfig {
	result := base
	if c.FeaturesDir != "" {
		result.FeaturesDir = c.FeaturesDir
	}
	if c.DocsDir != "" {
		result.DocsDir = c.DocsDir
	}
	if len(c.Extensions) > 0 {
		result.Extensions = c.Extensions
	}
	if c.SharedFeature != "" {
		result.SharedFeature = c.SharedFeature
	}
	if len(c.ExcludeGlobs) > 0 {
		result.ExcludeGlobs = c.ExcludeGlobs
	}
	return result
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	for _, dir := range []struct{ name, value string }{
		{"features_dir", c.FeaturesDir},
		{"docs_dir", c.DocsDir},
	} {
		if filepath.IsAbs(dir.value) {
			return fmt.Errorf("%s must be relative to the project root (got %q)", dir.name, dir.value)
		}
	}

	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}

	for _, g := range c.ExcludeGlobs {
		if !doublestar.ValidatePattern(g) {
			return fmt.Errorf("invalid exclude glob %q", g)
		}
	}

	return nil
}

// MatchesExtension reports whether the file name carries one of the
// configured source extensions.
func (c ProjectConfig) MatchesExtension(name string) bool {
	for _, ext := range c.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Excluded reports whether the rel path matches any exclude glob.
func (c ProjectConfig) Excluded(relPath string) bool {
	normalized := filepath.ToSlash(relPath)
	for _, g := range c.ExcludeGlobs {
		if ok, err := doublestar.Match(g, normalized); err == nil && ok {
			return true
		}
	}
	return false
}
