package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/taskflow/internal/database"
)

// saver writes serialized snapshots from a single goroutine.
// It holds at most one unwritten snapshot; a newer submission replaces it,
// so writes land in submission order and the last write is the newest state.
type saver struct {
	store   database.Store
	key     string
	timeout time.Duration
	logger  *slog.Logger
	metrics *Metrics
	onError func(*PersistenceError)

	mu         sync.Mutex
	idle       *sync.Cond
	pending    string
	hasPending bool
	writing    bool
	closed     bool

	wake chan struct{}
	done chan struct{}
}

func newSaver(store database.Store, key string, timeout time.Duration, logger *slog.Logger, metrics *Metrics, onError func(*PersistenceError)) *saver {
	s := &saver{
		store:   store,
		key:     key,
		timeout: timeout,
		logger:  logger,
		metrics: metrics,
		onError: onError,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	s.idle = sync.NewCond(&s.mu)
	go s.run()
	return s
}

// submit hands a snapshot to the writer. It never blocks on I/O.
func (s *saver) submit(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.logger.Warn("snapshot submitted after close, discarding", "key", s.key)
		return
	}
	if s.hasPending {
		s.metrics.IncCoalesced()
	}
	s.pending = raw
	s.hasPending = true

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// flush blocks until every submitted snapshot has been written or has failed
func (s *saver) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.hasPending || s.writing {
		s.idle.Wait()
	}
}

// close writes any pending snapshot and stops the writer
func (s *saver) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	close(s.wake)
	s.mu.Unlock()

	<-s.done
}

func (s *saver) run() {
	defer close(s.done)

	for range s.wake {
		for {
			s.mu.Lock()
			if !s.hasPending {
				s.mu.Unlock()
				break
			}
			raw := s.pending
			s.pending = ""
			s.hasPending = false
			s.writing = true
			s.mu.Unlock()

			s.write(raw)

			s.mu.Lock()
			s.writing = false
			s.idle.Broadcast()
			s.mu.Unlock()
		}
	}
}

func (s *saver) write(raw string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.store.Set(ctx, s.key, raw); err != nil {
		perr := &PersistenceError{Op: "save", Key: s.key, Err: err}
		s.metrics.IncFailed()
		s.logger.Error("failed to save snapshot", "key", s.key, "error", err)
		if s.onError != nil {
			s.onError(perr)
		}
		return
	}

	s.metrics.IncSaved(time.Now())
	s.logger.Debug("snapshot saved", "key", s.key, "bytes", len(raw))
}
