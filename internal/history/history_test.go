package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StarNumber12046/rocket/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := storage.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestRecordFillsIDAndTime(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	fixed := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	e, err := s.Record(context.Background(), Entry{Line: "show", Source: SourceIPC, Output: "OK"})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, fixed, e.CreatedAt)

	got, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, e.ID, got[0].ID)
	assert.Equal(t, "show", got[0].Line)
	assert.Equal(t, SourceIPC, got[0].Source)
	assert.Equal(t, "OK", got[0].Output)
	assert.True(t, got[0].OK())
	assert.True(t, fixed.Equal(got[0].CreatedAt))
}

func TestRecordRequiresSource(t *testing.T) {
	t.Parallel()

	_, err := newTestStore(t).Record(context.Background(), Entry{Line: "show"})
	require.Error(t, err)
}

func TestRecentNewestFirstWithLimit(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	lines := []string{"launch Notes", "switch next", "bogus", "hide"}
	for i, line := range lines {
		e := Entry{Line: line, Source: SourceDialog, CreatedAt: base.Add(time.Duration(i) * time.Second)}
		if line == "bogus" {
			e.Error = "Command bogus not found"
		}
		_, err := s.Record(context.Background(), e)
		require.NoError(t, err)
	}

	got, err := s.Recent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "hide", got[0].Line)
	assert.Equal(t, "bogus", got[1].Line)
	assert.False(t, got[1].OK())
	assert.Equal(t, "Command bogus not found", got[1].Error)
	assert.Equal(t, "switch next", got[2].Line)
}

func TestRecentOrdersSubSecondTimes(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	base := time.Date(2026, 5, 1, 9, 0, 5, 0, time.UTC)
	// 0.1s would sort after 0.12s if fractional digits were trimmed.
	for _, offset := range []time.Duration{100 * time.Millisecond, 120 * time.Millisecond} {
		_, err := s.Record(context.Background(), Entry{Line: offset.String(), Source: SourceIPC, CreatedAt: base.Add(offset)})
		require.NoError(t, err)
	}

	got, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "120ms", got[0].Line)
}

func TestRecordKeepsDuration(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	_, err := s.Record(context.Background(), Entry{Line: "show", Source: SourceCLI, Duration: 1500 * time.Microsecond})
	require.NoError(t, err)

	got, err := s.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1500*time.Microsecond, got[0].Duration)
}

func TestPrune(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	now := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	for _, age := range []time.Duration{72 * time.Hour, 36 * time.Hour, time.Hour} {
		_, err := s.Record(context.Background(), Entry{Line: age.String(), Source: SourceStartup, CreatedAt: now.Add(-age)})
		require.NoError(t, err)
	}

	n, err := s.Prune(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.Prune(context.Background(), 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1h0m0s", got[0].Line)
}

func TestExecRecordsOutcome(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	out, err := s.Exec(ctx, SourceDialog, "show", func(line string) (string, error) { return "OK", nil })
	require.NoError(t, err)
	assert.Equal(t, "OK", out)

	failure := errors.New("Command bogus not found")
	_, err = s.Exec(ctx, SourceDialog, "bogus", func(line string) (string, error) { return "", failure })
	assert.ErrorIs(t, err, failure)

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	byLine := map[string]Entry{got[0].Line: got[0], got[1].Line: got[1]}
	assert.Equal(t, "OK", byLine["show"].Output)
	assert.Equal(t, "Command bogus not found", byLine["bogus"].Error)
}

func TestExecNilStore(t *testing.T) {
	t.Parallel()

	var s *Store
	out, err := s.Exec(context.Background(), SourceCLI, "x", func(line string) (string, error) { return line + "!", nil })
	require.NoError(t, err)
	assert.Equal(t, "x!", out)
}
