package journal

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

func newTestJournal(t *testing.T) *FileJournal {
	t.Helper()
	cfg := &config.RuntimeConfig{DataDir: filepath.Join(t.TempDir(), ".deptgov")}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewFileJournal(cfg, log)
}

func TestAppendCreatesFile(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	entry := usecase.JournalEntry{
		Action:    "vote",
		Reference: "proposal 7",
		TxHash:    "0xabc",
		Block:     120,
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, j.Append(ctx, entry))

	entries, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestAppendPreservesOrder(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	for i, action := range []string{"register", "vote", "execute"} {
		require.NoError(t, j.Append(ctx, usecase.JournalEntry{
			Action: action,
			Block:  uint64(i + 1),
		}))
	}

	entries, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "register", entries[0].Action)
	assert.Equal(t, "execute", entries[2].Action)
}

func TestEntriesWithoutFile(t *testing.T) {
	j := newTestJournal(t)

	entries, err := j.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
