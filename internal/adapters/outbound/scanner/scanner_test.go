package scanner_test

import (
	"testing"

	"github.com/featlint/featlint/internal/adapters/outbound/scanner"
	"github.com/featlint/featlint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureProject = "../../../../testdata/webapp"

func TestScanFeature_CollectsSortedSources(t *testing.T) {
	files, err := scanner.New().ScanFeature(fixtureProject, "billing", domain.DefaultConfig())
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rels = append(rels, f.RelPath)
	}
	assert.Equal(t, []string{
		"features/billing/components/invoice-form.tsx",
		"features/billing/data/repository/invoice-repository.ts",
		"features/billing/domain/invoice.ts",
		"features/billing/hooks/use-invoice.ts",
	}, rels)

	for _, f := range files {
		assert.NotEmpty(t, f.Content)
		assert.Equal(t, len(f.Lines), f.LineCount)
	}
}

func TestScanFeature_SkipsNonMatchingExtensions(t *testing.T) {
	files, err := scanner.New().ScanFeature(fixtureProject, "empty", domain.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, files, "markdown files are not audited")
}

func TestScanFeature_MissingFeature(t *testing.T) {
	_, err := scanner.New().ScanFeature(fixtureProject, "checkout", domain.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "features/checkout")
}

func TestScanFeature_HonorsConfiguredDirsAndExcludes(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.FeaturesDir = "modules"
	cfg.Extensions = []string{".ts"}
	cfg.ExcludeGlobs = []string{"**/*.stories.ts"}

	files, err := scanner.New().ScanFeature("../../../../testdata/configured", "catalog", cfg)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "modules/catalog/domain/product.ts", files[0].RelPath)
	assert.Equal(t, "product.ts", files[0].Name)
}

func TestListFeatures(t *testing.T) {
	features, err := scanner.New().ListFeatures(fixtureProject, domain.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"auth", "billing", "empty", "profile"}, features)
}

func TestListFeatures_MissingDir(t *testing.T) {
	_, err := scanner.New().ListFeatures(t.TempDir(), domain.DefaultConfig())
	require.Error(t, err)
}
