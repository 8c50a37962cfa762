package history_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxproxy/cx/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	s, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// ===== APPEND / RECENT =====

func TestAppend_FillsIDAndTimestamp(t *testing.T) {
	s := openStore(t)

	err := s.Append(history.Record{Tool: "git", Sub: "status"})
	require.NoError(t, err)

	records, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotEmpty(t, records[0].ID)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestRecent_NewestFirst(t *testing.T) {
	s := openStore(t)

	for i, sub := range []string{"build", "test", "clippy"} {
		require.NoError(t, s.Append(history.Record{
			Tool: "cargo", Sub: sub, ExitCode: i,
		}))
	}

	records, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "clippy", records[0].Sub)
	assert.Equal(t, "test", records[1].Sub)
}

func TestRecent_EmptyStore(t *testing.T) {
	s := openStore(t)

	records, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// ===== SAVINGS =====

func TestTokensSaved_FlooredAtZero(t *testing.T) {
	r := history.Record{RawTokens: 10, CompactTokens: 25}
	assert.Equal(t, 0, r.TokensSaved())

	r = history.Record{RawTokens: 100, CompactTokens: 30}
	assert.Equal(t, 70, r.TokensSaved())
}

func TestTotals_Aggregates(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.Append(history.Record{
		Tool: "git", Sub: "log",
		RawBytes: 5000, CompactBytes: 500,
		RawTokens: 1200, CompactTokens: 120,
	}))
	require.NoError(t, s.Append(history.Record{
		Tool: "grep", Sub: "",
		RawBytes: 2000, CompactBytes: 300,
		RawTokens: 100, CompactTokens: 150, // compressor lost on this one
	}))

	totals, err := s.Totals()
	require.NoError(t, err)
	assert.Equal(t, 2, totals.Invocations)
	assert.Equal(t, int64(7000), totals.RawBytes)
	assert.Equal(t, int64(800), totals.CompactBytes)
	// Negative savings on the second record do not subtract.
	assert.Equal(t, int64(1080), totals.TokensSaved)
}

func TestOpen_Reopens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.db")

	s, err := history.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Append(history.Record{Tool: "docker", Sub: "ps"}))
	require.NoError(t, s.Close())

	s, err = history.Open(path)
	require.NoError(t, err)
	defer s.Close()

	records, err := s.Recent(10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "docker", records[0].Tool)
}
