package tui_test

import (
	"testing"
	"time"

	"github.com/featlint/featlint/internal/adapters/outbound/tui"
	"github.com/featlint/featlint/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeCheck(t *testing.T) {
	assert.Equal(t, "Integer Cents", tui.HumanizeCheck(domain.CheckIntegerCents))
	assert.Equal(t, "Feature Bleed", tui.HumanizeCheck(domain.CheckFeatureBleed))
	assert.Equal(t, "Naming", tui.HumanizeCheck(domain.CheckNaming))
}

func TestRenderSummary_FailingReport(t *testing.T) {
	report := &domain.AuditReport{
		Feature:            "billing",
		GeneratedAt:        time.Now(),
		Naming:             domain.VerdictFail,
		DependencyManifest: domain.VerdictPass,
		SacredMandate:      domain.VerdictPass,
		Performance:        domain.VerdictPass,
		Mandates: domain.MandateVerdicts{
			IntegerCents:    domain.VerdictNotApplicable,
			SoftDeletes:     domain.VerdictPass,
			AuthAbstraction: domain.VerdictPass,
		},
		Findings: []domain.Finding{
			{Check: domain.CheckNaming, File: "features/billing/domain/invoice.ts",
				Message: "Snake_case property 'user_id' in domain file features/billing/domain/invoice.ts"},
		},
	}

	out := tui.RenderSummary(report)
	assert.Contains(t, out, "featlint")
	assert.Contains(t, out, "features/billing")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "Variable & Entity Registry")
	assert.Contains(t, out, "Integer Cents")
	assert.Contains(t, out, "Snake_case property 'user_id'")
}

func TestRenderSummary_CleanReport(t *testing.T) {
	report := &domain.AuditReport{
		Feature:            "profile",
		GeneratedAt:        time.Now(),
		Naming:             domain.VerdictPass,
		DependencyManifest: domain.VerdictPass,
		SacredMandate:      domain.VerdictPass,
		Performance:        domain.VerdictPass,
	}

	out := tui.RenderSummary(report)
	assert.Contains(t, out, "No findings.")
}

func TestRenderHistory(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No audit history found.")

	out := tui.RenderHistory([]domain.AuditEntry{
		{
			Timestamp:  "2026-08-30T10:00:00Z",
			CommitHash: "0f9d8c7b6a543210deadbeefcafef00d12345678",
			Feature:    "billing",
			Result:     "FAIL",
			Findings:   7,
		},
	})
	assert.Contains(t, out, "2026-08-30")
	assert.Contains(t, out, "0f9d8c7")
	assert.Contains(t, out, "billing")
	assert.Contains(t, out, "7 findings")
}
