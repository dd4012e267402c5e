package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/featlint/featlint/internal/domain"
	"github.com/featlint/featlint/internal/logging"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
}

// FeatureScanner implements domain.FeatureScanner by walking the
// feature directory on disk.
type FeatureScanner struct{}

func New() *FeatureScanner {
	return &FeatureScanner{}
}

// ScanFeature collects every source file under features/<feature>/ that
// matches the configured extensions. A missing feature directory is
// fatal; nothing downstream runs on a partial file set.
func (s *FeatureScanner) ScanFeature(projectPath, feature string, cfg domain.ProjectConfig) ([]domain.SourceFile, error) {
	root, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	featurePath := filepath.Join(root, cfg.FeaturesDir, feature)
	info, err := os.Stat(featurePath)
	if err != nil {
		return nil, fmt.Errorf("feature directory %s: %w", filepath.Join(cfg.FeaturesDir, feature), err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("feature path %s is not a directory", featurePath)
	}

	var files []domain.SourceFile
	err = filepath.WalkDir(featurePath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !cfg.MatchesExtension(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if cfg.Excluded(rel) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, domain.NewSourceFile(path, rel, d.Name(), string(data)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	// WalkDir is already lexical, but the report contract requires a
	// deterministic order regardless of walk implementation.
	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })

	logging.Debugw("feature scanned", "feature", feature, "files", len(files))
	return files, nil
}

// ListFeatures enumerates the feature directories under the configured
// features dir.
func (s *FeatureScanner) ListFeatures(projectPath string, cfg domain.ProjectConfig) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(projectPath, cfg.FeaturesDir))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.FeaturesDir, err)
	}

	var features []string
	for _, e := range entries {
		if e.IsDir() && !skipDirs[e.Name()] {
			features = append(features, e.Name())
		}
	}
	sort.Strings(features)
	return features, nil
}
