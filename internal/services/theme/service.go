// Package theme manages the persisted theme preference.
package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/thenoetrevino/taskflow/internal/config/colors"
	"github.com/thenoetrevino/taskflow/internal/converters"
	"github.com/thenoetrevino/taskflow/internal/database"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// Option is a functional option for configuring the Service
type Option func(*Service)

// WithPublisher sets where theme changes are announced
func WithPublisher(p events.Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOverrides sets colors that replace the active preset's values
func WithOverrides(c colors.ColorScheme) Option {
	return func(s *Service) {
		s.overrides = c
	}
}

// Service holds the selected theme and persists every change
type Service struct {
	mu        sync.RWMutex
	saveMu    sync.Mutex
	current   string
	store     database.Store
	overrides colors.ColorScheme
	publisher events.Publisher
	logger    *slog.Logger
}

// NewService creates a service with the default theme selected
func NewService(store database.Store, opts ...Option) *Service {
	s := &Service{
		current:   colors.DefaultPreset,
		store:     store,
		publisher: events.Nop{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "theme")
	return s
}

// Load restores the persisted theme. A missing, unreadable or unknown value
// selects the default theme. Returns the selected theme name.
func (s *Service) Load(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = colors.DefaultPreset

	raw, err := s.store.Get(ctx, models.ThemeKey)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			s.logger.Warn("failed to load theme, using default", "error", err)
		}
		return s.current
	}

	name, err := converters.DecodeTheme(raw)
	if err != nil {
		s.logger.Warn("failed to decode theme, using default", "error", err)
		return s.current
	}
	if !colors.IsPreset(name) {
		s.logger.Warn("unknown saved theme, using default", "theme", name)
		return s.current
	}

	s.current = name
	return s.current
}

// Current returns the selected theme name
func (s *Service) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set selects a theme and persists it. The selection applies even when the
// write fails; the write error is returned for reporting.
func (s *Service) Set(ctx context.Context, name string) error {
	if err := s.Select(name); err != nil {
		return err
	}
	_, err := s.Save(ctx)
	return err
}

// Select switches the current theme in memory and announces it. Nothing is
// written; call Save to persist the selection.
func (s *Service) Select(name string) error {
	if !colors.IsPreset(name) {
		return fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}

	s.mu.Lock()
	s.current = name
	s.mu.Unlock()

	s.publisher.Publish(events.Event{
		Type:      events.EventThemeChanged,
		Op:        name,
		Timestamp: time.Now(),
	})
	return nil
}

// Save persists the theme selected at the time of the write and returns its
// name. Writes are serialized, so the last Save always stores the latest
// selection even when saves overlap.
func (s *Service) Save(ctx context.Context) (string, error) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	name := s.Current()
	raw, err := converters.EncodeTheme(name)
	if err != nil {
		return name, err
	}
	if err := s.store.Set(ctx, models.ThemeKey, raw); err != nil {
		s.logger.Error("failed to save theme", "theme", name, "error", err)
		return name, fmt.Errorf("failed to save theme: %w", err)
	}
	return name, nil
}

// Next returns the theme after the current one in display order
func (s *Service) Next() string {
	names := colors.Names()
	idx := slices.Index(names, s.Current())
	return names[(idx+1)%len(names)]
}

// Cycle selects the next theme in display order and returns its name
func (s *Service) Cycle(ctx context.Context) (string, error) {
	next := s.Next()
	return next, s.Set(ctx, next)
}

// List returns every available theme in display order
func (s *Service) List() []colors.ColorScheme {
	return colors.Presets()
}

// IsDark reports whether the selected theme is a dark one
func (s *Service) IsDark() bool {
	return colors.GetPreset(s.Current()).Dark
}

// Palette returns the selected theme's colors with configured overrides applied
func (s *Service) Palette() colors.ColorScheme {
	p := *colors.GetPreset(s.Current())
	p.MergeFrom(s.overrides)
	return p
}
