package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/featlint/featlint/internal/adapters/outbound/history"
	"github.com/featlint/featlint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyWhenNoHistory(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveAndLoad_AppendsEntries(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	first := domain.AuditEntry{
		Timestamp: "2026-08-30T10:00:00Z",
		Feature:   "billing",
		Digest:    "a1b2c3d4e5f60718",
		Result:    "FAIL",
		Findings:  7,
	}
	second := domain.AuditEntry{
		Timestamp:  "2026-08-30T11:00:00Z",
		CommitHash: "0f9d8c7b6a543210deadbeefcafef00d12345678",
		Feature:    "billing",
		Digest:     "a1b2c3d4e5f60718",
		Result:     "PASS",
	}

	require.NoError(t, h.Save(dir, first))
	require.NoError(t, h.Save(dir, second))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []domain.AuditEntry{first, second}, entries)
}

func TestLoad_CorruptHistoryFails(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".featlint", "history", "audits.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0o755))
	require.NoError(t, os.WriteFile(fp, []byte("not json"), 0o644))

	_, err := history.New().Load(dir)
	require.Error(t, err)
}
