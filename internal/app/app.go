package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/database"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/presence"
	"github.com/thenoetrevino/taskflow/internal/services/board"
	"github.com/thenoetrevino/taskflow/internal/services/theme"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config   *config.Config
	Events   *events.Bus
	Board    *board.Engine
	Theme    *theme.Service
	Presence *presence.Simulator

	store  database.Store
	closer func() error
	logger *slog.Logger

	stopPresence context.CancelFunc
	presenceDone sync.WaitGroup
}

// New creates the application container, restores persisted board and theme
// state, and returns it ready for use. Unless WithStore is given, the SQLite
// database at cfg.DBPath (or the default path) is opened.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}

	a := &App{
		Config: cfg,
		logger: ac.logger,
		store:  ac.store,
	}

	if a.store == nil {
		store, err := openSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		a.store = store
		a.closer = store.Close
	}

	a.Events = events.NewBus(a.logger)

	a.Board = board.NewEngine(a.store,
		board.WithColumns(cfg.Columns),
		board.WithDefaultAssignee(cfg.DefaultAssignee),
		board.WithSaveTimeout(cfg.SaveTimeout),
		board.WithLogger(a.logger),
		board.WithPublisher(a.Events),
	)

	a.Theme = theme.NewService(a.store,
		theme.WithOverrides(cfg.Colors),
		theme.WithLogger(a.logger),
		theme.WithPublisher(a.Events),
	)

	a.Presence = presence.NewSimulator(cfg.Collaborators,
		presence.WithInterval(cfg.PresenceInterval),
		presence.WithLogger(a.logger),
		presence.WithPublisher(a.Events),
	)

	res := a.Board.Load(ctx)
	if res.Err != nil {
		a.logger.Warn("starting with an empty board", "error", res.Err)
	}
	a.Theme.Load(ctx)

	return a, nil
}

func openSQLite(ctx context.Context, path string) (*database.SQLiteStore, error) {
	if path == "" {
		var err error
		path, err = database.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
	}
	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database.NewSQLiteStore(db), nil
}

// StartPresence runs the presence simulation in the background until Close
func (a *App) StartPresence(ctx context.Context) {
	if a.stopPresence != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	a.stopPresence = cancel
	a.presenceDone.Add(1)
	go func() {
		defer a.presenceDone.Done()
		a.Presence.Run(ctx)
	}()
}

// Close stops background work, writes pending state and releases the store
func (a *App) Close() error {
	if a.stopPresence != nil {
		a.stopPresence()
		a.presenceDone.Wait()
	}

	var errs []error
	if err := a.Board.Close(); err != nil {
		errs = append(errs, err)
	}
	a.Events.Close()
	if a.closer != nil {
		if err := a.closer(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
