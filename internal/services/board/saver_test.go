package board

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/database"
)

// Snapshots queued behind an in-flight write collapse to the newest one
func TestSaver_CoalescesPendingSnapshots(t *testing.T) {
	t.Parallel()

	store := newGatedStore()
	metrics := NewMetrics()
	s := newSaver(store, "k", time.Second, slog.Default(), metrics, nil)
	defer s.close()

	s.submit("v1")
	<-store.started

	s.submit("v2")
	s.submit("v3")
	s.submit("v4")
	close(store.release)
	s.flush()

	assert.Equal(t, []string{"v1", "v4"}, store.Writes())
	assert.Equal(t, int64(2), metrics.Coalesced.Load())
	assert.Equal(t, int64(2), metrics.Saved.Load())
}

func TestSaver_CloseWritesPending(t *testing.T) {
	t.Parallel()

	store := database.NewMemoryStore()
	s := newSaver(store, "k", time.Second, slog.Default(), NewMetrics(), nil)

	s.submit("last")
	s.close()

	assert.Equal(t, 1, store.Writes())

	// Submissions after close are dropped, and close is idempotent
	s.submit("late")
	s.close()
	assert.Equal(t, 1, store.Writes())
}

func TestSaver_ReportsFailures(t *testing.T) {
	t.Parallel()

	store := newFailingStore()
	store.setErr = assert.AnError
	metrics := NewMetrics()

	var reported []*PersistenceError
	s := newSaver(store, "k", time.Second, slog.Default(), metrics, func(perr *PersistenceError) {
		reported = append(reported, perr)
	})
	s.submit("v1")
	s.flush()
	s.close()

	require.Len(t, reported, 1)
	assert.Equal(t, "save", reported[0].Op)
	assert.Equal(t, "k", reported[0].Key)
	assert.ErrorIs(t, reported[0], assert.AnError)
	assert.Equal(t, int64(1), metrics.Failed.Load())
	assert.Equal(t, int64(0), metrics.Saved.Load())
}

func TestSaver_FlushWhenIdle(t *testing.T) {
	t.Parallel()

	s := newSaver(database.NewMemoryStore(), "k", time.Second, slog.Default(), NewMetrics(), nil)
	defer s.close()

	done := make(chan struct{})
	go func() {
		s.flush()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("flush on an idle saver should return immediately")
	}
}
