package board

import (
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// DefaultAssignee is used when no default identity is configured
const DefaultAssignee = "You"

// DefaultSaveTimeout bounds a single snapshot write
const DefaultSaveTimeout = 5 * time.Second

// Option is a functional option for configuring the store and engine
type Option func(*config)

// config holds the configuration shared by TaskStore and Engine
type config struct {
	columns         []models.ColumnSpec
	defaultAssignee string
	now             func() time.Time
	newID           func() string
	logger          *slog.Logger
	publisher       events.Publisher
	saveTimeout     time.Duration
}

func newConfig(opts []Option) config {
	cfg := config{
		columns:         models.DefaultColumns(),
		defaultAssignee: DefaultAssignee,
		now:             time.Now,
		newID:           func() string { return ulid.Make().String() },
		logger:          slog.Default(),
		publisher:       events.Nop{},
		saveTimeout:     DefaultSaveTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithColumns sets the fixed column layout. Blank and repeated ids are dropped;
// a layout with no usable column keeps the default.
func WithColumns(specs []models.ColumnSpec) Option {
	return func(cfg *config) {
		if len(specs) == 0 {
			return
		}
		valid, dropped := models.SanitizeColumns(specs)
		if dropped > 0 {
			cfg.logger.Warn("ignoring invalid column definitions", "dropped", dropped)
		}
		cfg.columns = valid
	}
}

// WithDefaultAssignee sets the identity assigned to tasks created without an assignee
func WithDefaultAssignee(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.defaultAssignee = name
		}
	}
}

// WithClock sets the time source for createdAt and movedAt
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		cfg.now = now
	}
}

// WithIDGenerator sets the task id source
func WithIDGenerator(newID func() string) Option {
	return func(cfg *config) {
		cfg.newID = newID
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithPublisher sets where change notifications are sent
func WithPublisher(p events.Publisher) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.publisher = p
		}
	}
}

// WithSaveTimeout bounds each snapshot write
func WithSaveTimeout(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.saveTimeout = d
		}
	}
}
