package application

import (
	"fmt"

	"github.com/featlint/featlint/internal/domain"
	"github.com/featlint/featlint/internal/domain/audit"
	"github.com/featlint/featlint/internal/logging"
)

// AuditService orchestrates the audit pipeline:
// load config → collect files → run checks → aggregate report.
type AuditService struct {
	scanner      domain.FeatureScanner
	configLoader domain.ConfigLoader
}

func NewAuditService(scanner domain.FeatureScanner, configLoader domain.ConfigLoader) *AuditService {
	return &AuditService{
		scanner:      scanner,
		configLoader: configLoader,
	}
}

// AuditFeature runs the full single-pass audit of one feature. Any
// file-system error is fatal; there is no partial report.
func (s *AuditService) AuditFeature(projectPath, feature string) (*domain.AuditReport, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	files, err := s.scanner.ScanFeature(projectPath, feature, cfg)
	if err != nil {
		return nil, fmt.Errorf("collecting feature files: %w", err)
	}

	report := audit.Run(files, feature, cfg.SharedFeature)
	logging.Debugw("audit complete",
		"feature", feature,
		"files", len(report.Files),
		"findings", len(report.Findings),
		"result", report.Result(),
	)
	return report, nil
}

// ListFeatures enumerates auditable features under the project root.
func (s *AuditService) ListFeatures(projectPath string) ([]string, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return s.scanner.ListFeatures(projectPath, cfg)
}

// Config exposes the effective project configuration, needed by callers
// that resolve output paths.
func (s *AuditService) Config(projectPath string) (domain.ProjectConfig, error) {
	return s.configLoader.Load(projectPath)
}
