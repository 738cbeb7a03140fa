package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/addonlint/internal/domain"
)

func TestSaveAndLoad(t *testing.T) {
	h := NewAt(t.TempDir())

	entries, err := h.Load()
	require.NoError(t, err)
	assert.Empty(t, entries, "fresh store is empty")

	first := domain.HistoryEntry{
		Source:    "manifest.json",
		Kind:      domain.SourceFile,
		Status:    domain.StatusValid,
		Timestamp: time.Now().UTC(),
	}
	require.NoError(t, h.Save(first))
	require.NoError(t, h.Save(domain.HistoryEntry{
		Source:   "https://example.com/manifest.json",
		Kind:     domain.SourceURL,
		Status:   domain.StatusInvalid,
		Errors:   3,
	}))

	entries, err = h.Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].ID, "ids are assigned on save")
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.Equal(t, domain.StatusValid, entries[0].Status)
	assert.Equal(t, 3, entries[1].Errors)
}

func TestSave_KeepsExplicitID(t *testing.T) {
	h := NewAt(t.TempDir())
	require.NoError(t, h.Save(domain.HistoryEntry{ID: "fixed", Status: domain.StatusWarnings}))

	entries, err := h.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fixed", entries[0].ID)
}
