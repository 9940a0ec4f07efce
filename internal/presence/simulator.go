package presence

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/thenoetrevino/taskflow/internal/events"
)

const (
	// DefaultInterval is how often the active set may change
	DefaultInterval = 5 * time.Second

	// ChangeProbability is the chance that a tick re-draws the active set
	ChangeProbability = 0.3

	// KeepProbability is the chance an online collaborator survives a re-draw
	KeepProbability = 0.7
)

// Snapshot is a point-in-time view of presence
type Snapshot struct {
	Collaborators []Collaborator
	Active        []string // Collaborator ids, in collaborator order
}

// IsActive reports whether the collaborator with id is active
func (s Snapshot) IsActive(id string) bool {
	return slices.Contains(s.Active, id)
}

// ActiveCollaborators returns the active collaborators in list order
func (s Snapshot) ActiveCollaborators() []Collaborator {
	var out []Collaborator
	for _, c := range s.Collaborators {
		if s.IsActive(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// Option is a functional option for configuring a Simulator
type Option func(*Simulator)

// WithInterval sets the tick interval
func WithInterval(d time.Duration) Option {
	return func(s *Simulator) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithRand sets the source of uniform values in [0, 1)
func WithRand(f func() float64) Option {
	return func(s *Simulator) {
		s.rand = f
	}
}

// WithPublisher sets where presence changes are announced
func WithPublisher(p events.Publisher) Option {
	return func(s *Simulator) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Simulator periodically changes which online collaborators appear active
type Simulator struct {
	mu            sync.RWMutex
	collaborators []Collaborator
	active        []string

	interval  time.Duration
	rand      func() float64
	publisher events.Publisher
	logger    *slog.Logger
}

// NewSimulator creates a simulator whose initial active set is every online collaborator
func NewSimulator(collaborators []Collaborator, opts ...Option) *Simulator {
	s := &Simulator{
		collaborators: Normalize(collaborators),
		interval:      DefaultInterval,
		rand:          rand.Float64,
		publisher:     events.Nop{},
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "presence")
	s.active = s.online()
	return s
}

// Primary returns the first collaborator, the local user
func (s *Simulator) Primary() Collaborator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collaborators[0]
}

// Snapshot returns the current presence state
func (s *Simulator) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Collaborators: slices.Clone(s.collaborators),
		Active:        slices.Clone(s.active),
	}
}

// Run ticks until ctx is cancelled
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug("presence simulation started", "interval", s.interval)
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("presence simulation stopped")
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick performs one simulation step and reports whether the active set changed.
// With probability ChangeProbability the active set is re-drawn from online
// collaborators, keeping each with probability KeepProbability. An empty draw
// falls back to the first collaborator.
func (s *Simulator) Tick() bool {
	s.mu.Lock()

	if s.rand() >= ChangeProbability {
		s.mu.Unlock()
		return false
	}

	var next []string
	for _, id := range s.online() {
		if s.rand() < KeepProbability {
			next = append(next, id)
		}
	}
	if len(next) == 0 {
		next = []string{s.collaborators[0].ID}
	}

	changed := !slices.Equal(next, s.active)
	s.active = next
	s.mu.Unlock()

	if changed {
		s.logger.Debug("active collaborators changed", "active", next)
		s.publisher.Publish(events.Event{
			Type:      events.EventPresenceChanged,
			Op:        "tick",
			Timestamp: time.Now(),
		})
	}
	return changed
}

// online returns the ids of online collaborators. Caller holds s.mu or owns s.
func (s *Simulator) online() []string {
	var ids []string
	for _, c := range s.collaborators {
		if c.Online {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
