package app

import (
	"log/slog"

	"github.com/thenoetrevino/taskflow/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	store  database.Store
	logger *slog.Logger
}

// WithStore uses the given store instead of opening the SQLite database
func WithStore(store database.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
