package domain

// FeatureScanner collects the source files of one feature.
type FeatureScanner interface {
	ScanFeature(projectPath, feature string, cfg ProjectConfig) ([]SourceFile, error)
	ListFeatures(projectPath string, cfg ProjectConfig) ([]string, error)
}

// ConfigLoader loads the project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// GitInfo provides repository metadata for report headers.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// AuditHistory persists audit records across runs.
type AuditHistory interface {
	Save(projectPath string, entry AuditEntry) error
	Load(projectPath string) ([]AuditEntry, error)
}

// ReportWriter renders and persists the Markdown report, returning the
// written path.
type ReportWriter interface {
	Write(projectPath string, report *AuditReport, cfg ProjectConfig) (string, error)
}
