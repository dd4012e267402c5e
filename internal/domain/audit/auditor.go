package audit

import (
	"sort"
	"time"

	"github.com/featlint/featlint/internal/domain"
)

// Run executes every check against the same immutable file set and
// aggregates verdicts and findings into one report. Checks are mutually
// independent; their fixed order (naming, dependencies, mandates,
// performance) determines report presentation only. Files are sorted by
// rel path first so output is reproducible regardless of walk order.
func Run(files []domain.SourceFile, feature, shared string) *domain.AuditReport {
	sorted := make([]domain.SourceFile, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].RelPath < sorted[j].RelPath })

	report := &domain.AuditReport{
		Feature:     feature,
		GeneratedAt: time.Now(),
		Digest:      domain.Fingerprint(sorted),
		Files:       sorted,
	}

	entities, naming := RegisterEntities(sorted)
	report.Entities = entities
	report.Naming = verdictFromViolations(naming)
	report.Findings = append(report.Findings, naming...)

	bleed, transformers := CheckDependencies(sorted, feature, shared)
	report.Bleed = bleed
	report.Transformers = transformers
	report.DependencyManifest = verdictFromViolations(bleed)
	report.Findings = append(report.Findings, bleed...)

	var cents, deletes, auth []domain.Finding
	report.Mandates.IntegerCents, cents = CheckIntegerCents(sorted)
	report.Mandates.SoftDeletes, deletes = CheckSoftDeletes(sorted)
	report.Mandates.AuthAbstraction, auth = CheckAuthAbstraction(sorted, feature)
	report.SacredMandate = mandateVerdict(report.Mandates)
	report.Findings = append(report.Findings, cents...)
	report.Findings = append(report.Findings, deletes...)
	report.Findings = append(report.Findings, auth...)

	var watch []domain.Finding
	report.Performance, watch = CheckWatchUsage(sorted)
	report.Findings = append(report.Findings, watch...)

	return report
}

func verdictFromViolations(violations []domain.Finding) domain.Verdict {
	if len(violations) > 0 {
		return domain.VerdictFail
	}
	return domain.VerdictPass
}

// mandateVerdict merges the three sub-checks into the category verdict:
// any FAIL dominates, then WARNING, then PASS. Auth abstraction is
// always applicable, so the category is never N/A.
func mandateVerdict(m domain.MandateVerdicts) domain.Verdict {
	verdicts := []domain.Verdict{m.IntegerCents, m.SoftDeletes, m.AuthAbstraction}
	for _, v := range verdicts {
		if v == domain.VerdictFail {
			return domain.VerdictFail
		}
	}
	for _, v := range verdicts {
		if v == domain.VerdictWarning {
			return domain.VerdictWarning
		}
	}
	return domain.VerdictPass
}
