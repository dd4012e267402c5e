package audit_test

import (
	"testing"

	"github.com/featlint/featlint/internal/domain"
	"github.com/featlint/featlint/internal/domain/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDependencies_FeatureBleed(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/billing/hooks/use-account.ts",
			"import { Account } from \"@/features/accounts/domain/account\";\n\nexport function useAccount() {}\n"),
	}

	bleed, transformers := audit.CheckDependencies(files, "billing", "shared")
	require.Len(t, bleed, 1)
	assert.Empty(t, transformers)

	assert.Equal(t, domain.CheckFeatureBleed, bleed[0].Check)
	assert.Equal(t, 1, bleed[0].Line, "line numbers are 1-based")
	assert.Equal(t, "Import from accounts in features/billing/hooks/use-account.ts:1", bleed[0].Message)
}

func TestCheckDependencies_SelfAndSharedAllowed(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/billing/index.ts",
			"import { Invoice } from \"@/features/billing/domain/invoice\";\n"+
				"import { formatMoney } from \"@/features/shared/lib/money\";\n"+
				"import { Button } from \"../../features/shared/components/button\";\n"),
	}

	bleed, _ := audit.CheckDependencies(files, "billing", "shared")
	assert.Empty(t, bleed)
}

func TestCheckDependencies_RelativeCrossFeature(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/billing/index.ts",
			"import { report } from \"../../features/reports/domain/report\";\n"),
	}

	bleed, _ := audit.CheckDependencies(files, "billing", "shared")
	require.Len(t, bleed, 1)
	assert.Equal(t, "Import from reports in features/billing/index.ts:1", bleed[0].Message)
}

func TestCheckDependencies_AlternateImportStylesPassSilently(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/billing/index.ts",
			"import { a } from \"~/features/accounts/a\";\n"+
				"import { b } from \"../../../features/accounts/b\";\n"+
				"import { c } from \"accounts/c\";\n"),
	}

	bleed, _ := audit.CheckDependencies(files, "billing", "shared")
	assert.Empty(t, bleed, "unrecognized import styles produce no finding")
}

func TestCheckDependencies_NonImportLinesIgnored(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/billing/index.ts",
			"// import { Account } from \"@/features/accounts/domain/account\";\n"+
				"const s = 'from \"@/features/accounts/x\"';\n"),
	}

	bleed, _ := audit.CheckDependencies(files, "billing", "shared")
	assert.Empty(t, bleed)
}

func TestCheckDependencies_TransformerUsage(t *testing.T) {
	files := []domain.SourceFile{
		sourceFile("features/billing/hooks/use-invoice.ts",
			"import { toModel } from \"@/shared/types/data-transformers/invoice\";\n"+
				"import { fromRow } from \"@/shared/data/data-transformers/row\";\n"),
	}

	bleed, transformers := audit.CheckDependencies(files, "billing", "shared")
	assert.Empty(t, bleed, "transformer imports never affect the verdict")
	require.Len(t, transformers, 2)
	assert.Equal(t, domain.CheckTransformers, transformers[0].Check)
	assert.Equal(t, "Uses data-transformers in features/billing/hooks/use-invoice.ts:1", transformers[0].Message)
	assert.Equal(t, 2, transformers[1].Line)
}
