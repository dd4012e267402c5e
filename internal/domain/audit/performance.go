package audit

import (
	"fmt"
	"strings"

	"github.com/featlint/featlint/internal/domain"
)

const formLibrary = "react-hook-form"

// CheckWatchUsage flags form files that call the imperative watch() API
// instead of the useWatch hook, which defeats fine-grained re-render
// optimization. Only files referencing the form library are considered.
func CheckWatchUsage(files []domain.SourceFile) (domain.Verdict, []domain.Finding) {
	var violations []domain.Finding

	for _, file := range files {
		if !strings.Contains(file.Content, "watch(") || strings.Contains(file.Content, "useWatch") {
			continue
		}
		if strings.Contains(file.Content, formLibrary) {
			violations = append(violations, domain.Finding{
				Check:   domain.CheckWatchUsage,
				File:    file.RelPath,
				Message: fmt.Sprintf("Usage of watch() instead of useWatch in %s", file.RelPath),
			})
		}
	}

	if len(violations) > 0 {
		return domain.VerdictFail, violations
	}
	return domain.VerdictPass, nil
}
