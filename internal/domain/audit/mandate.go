package audit

import (
	"fmt"
	"strings"

	"github.com/featlint/featlint/internal/domain"
)

var financialTerms = []string{"balance", "amount", "price"}

// CheckIntegerCents flags files that pair financial vocabulary with a
// generic numeric type and a float/double mention. Co-occurrence inside
// one file, not type-level proof. N/A when the feature has no financial
// vocabulary at all.
func CheckIntegerCents(files []domain.SourceFile) (domain.Verdict, []domain.Finding) {
	applicable := false
	var violations []domain.Finding

	for _, file := range files {
		lower := strings.ToLower(file.Content)
		if !containsAny(lower, financialTerms) {
			continue
		}
		applicable = true
		if strings.Contains(file.Content, "number") &&
			(strings.Contains(lower, "float") || strings.Contains(lower, "double")) {
			violations = append(violations, domain.Finding{
				Check:   domain.CheckIntegerCents,
				File:    file.RelPath,
				Message: fmt.Sprintf("Potential float usage in %s", file.RelPath),
			})
		}
	}

	if !applicable {
		return domain.VerdictNotApplicable, nil
	}
	if len(violations) > 0 {
		return domain.VerdictFail, violations
	}
	return domain.VerdictPass, nil
}

// CheckSoftDeletes audits repository-path files that mention deletion
// for a soft-delete marker. A miss is a WARNING, deliberately softer
// than FAIL: the heuristic cannot distinguish a hard delete from a
// delegated one. N/A when no repository file mentions deletion.
func CheckSoftDeletes(files []domain.SourceFile) (domain.Verdict, []domain.Finding) {
	applicable := false
	var violations []domain.Finding

	for _, file := range files {
		if !strings.Contains(file.RelPath, "repository") {
			continue
		}
		if !strings.Contains(strings.ToLower(file.Content), "delete") {
			continue
		}
		applicable = true
		if !strings.Contains(file.Content, "deleted_at") && !strings.Contains(file.Content, "deletedAt") {
			violations = append(violations, domain.Finding{
				Check:   domain.CheckSoftDeletes,
				File:    file.RelPath,
				Message: fmt.Sprintf("Potential hard delete verification needed in %s", file.RelPath),
			})
		}
	}

	if !applicable {
		return domain.VerdictNotApplicable, nil
	}
	if len(violations) > 0 {
		return domain.VerdictWarning, violations
	}
	return domain.VerdictPass, nil
}

// CheckAuthAbstraction flags direct auth-provider client calls outside
// the auth feature itself. Every other feature must go through the
// abstraction layer. Always applicable.
func CheckAuthAbstraction(files []domain.SourceFile, feature string) (domain.Verdict, []domain.Finding) {
	var violations []domain.Finding

	for _, file := range files {
		if !strings.Contains(file.Content, "supabase.auth.") {
			continue
		}
		if feature != "auth" {
			violations = append(violations, domain.Finding{
				Check:   domain.CheckAuthAbstraction,
				File:    file.RelPath,
				Message: fmt.Sprintf("Direct supabase.auth usage in %s", file.RelPath),
			})
		}
	}

	if len(violations) > 0 {
		return domain.VerdictFail, violations
	}
	return domain.VerdictPass, nil
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
