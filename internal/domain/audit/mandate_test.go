package audit_test

import (
	"testing"

	"github.com/featlint/featlint/internal/domain"
	"github.com/featlint/featlint/internal/domain/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIntegerCents_FloatUsageFails(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/billing/domain/money.ts",
			"// balance kept as float\nexport interface Wallet {\n  balance: number;\n}\n"),
	}

	verdict, violations := audit.CheckIntegerCents(files)
	assert.Equal(t, domain.VerdictFail, verdict)
	require.Len(t, violations, 1)
	assert.Equal(t, domain.CheckIntegerCents, violations[0].Check)
	assert.Equal(t, "Potential float usage in features/billing/domain/money.ts", violations[0].Message)
}

func TestCheckIntegerCents_NotApplicableWithoutFinancialTerms(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/profile/domain/profile.ts",
			"export interface Profile {\n  weight: number; // stored as float\n}\n"),
	}

	verdict, violations := audit.CheckIntegerCents(files)
	assert.Equal(t, domain.VerdictNotApplicable, verdict)
	assert.Empty(t, violations)
}

func TestCheckIntegerCents_PassWithoutFloatMention(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/billing/domain/money.ts",
			"export interface Wallet {\n  balanceCents: number;\n}\n"),
	}

	verdict, violations := audit.CheckIntegerCents(files)
	assert.Equal(t, domain.VerdictPass, verdict)
	assert.Empty(t, violations)
}

func TestCheckSoftDeletes_HardDeleteWarns(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/billing/data/repository/invoice-repository.ts",
			"export class InvoiceRepository {\n  async deleteInvoice(id: string) {}\n}\n"),
	}

	verdict, violations := audit.CheckSoftDeletes(files)
	assert.Equal(t, domain.VerdictWarning, verdict, "a missing soft-delete marker warns, it does not fail")
	require.Len(t, violations, 1)
	assert.Equal(t,
		"Potential hard delete verification needed in features/billing/data/repository/invoice-repository.ts",
		violations[0].Message)
}

func TestCheckSoftDeletes_MarkerPasses(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/billing/data/repository/invoice-repository.ts",
			"export class InvoiceRepository {\n  async deleteInvoice(id: string) {\n    update(id, { deletedAt: now() });\n  }\n}\n"),
	}

	verdict, violations := audit.CheckSoftDeletes(files)
	assert.Equal(t, domain.VerdictPass, verdict)
	assert.Empty(t, violations)
}

func TestCheckSoftDeletes_NotApplicable(t *testing.T) {
	// Deletion outside a repository path does not trigger the guard.
	files := []domain.SourceFile{
		sourceFile("features/billing/hooks/use-delete.ts",
			"export function useDelete() {}\n"),
	}

	verdict, violations := audit.CheckSoftDeletes(files)
	assert.Equal(t, domain.VerdictNotApplicable, verdict)
	assert.Empty(t, violations)
}

func TestCheckAuthAbstraction_DirectUsageFails(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/billing/data/session.ts",
			"const session = await supabase.auth.getSession();\n"),
	}

	verdict, violations := audit.CheckAuthAbstraction(files, "billing")
	assert.Equal(t, domain.VerdictFail, verdict)
	require.Len(t, violations, 1)
	assert.Equal(t, "Direct supabase.auth usage in features/billing/data/session.ts", violations[0].Message)
}

func TestCheckAuthAbstraction_AuthFeatureExempt(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/auth/data/auth-service.ts",
			"return supabase.auth.signInWithPassword({ email, password });\n"),
	}

	verdict, violations := audit.CheckAuthAbstraction(files, "auth")
	assert.Equal(t, domain.VerdictPass, verdict)
	assert.Empty(t, violations)
}

func TestCheckAuthAbstraction_AlwaysApplicable(t *testing.T) {
	verdict, violations := audit.CheckAuthAbstraction(nil, "billing")
	assert.Equal(t, domain.VerdictPass, verdict, "never N/A, even on an empty file set")
	assert.Empty(t, violations)
}
