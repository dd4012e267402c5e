package markdown

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/featlint/featlint/internal/domain"
)

// FileWriter implements domain.ReportWriter, placing the rendered
// document under the configured docs directory.
type FileWriter struct{}

func NewWriter() *FileWriter { return &FileWriter{} }

// Write renders the report and writes docs/documentation/audit-<name>.md.
// An unwritable docs directory is fatal; no partial document is left behind.
func (w *FileWriter) Write(projectPath string, report *domain.AuditReport, cfg domain.ProjectConfig) (string, error) {
	dir := filepath.Join(projectPath, cfg.DocsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating docs directory: %w", err)
	}

	outPath := filepath.Join(dir, fmt.Sprintf("audit-%s.md", report.Feature))
	if err := os.WriteFile(outPath, []byte(Render(report)), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return outPath, nil
}
