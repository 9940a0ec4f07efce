// Package launcher runs the interactive board
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/tui"
)

// Launch opens the application for cfg and runs the TUI until the user quits
// or the process receives SIGINT/SIGTERM. Pending saves are flushed on exit.
func Launch(parent context.Context, cfg *config.Config, opts ...tea.ProgramOption) error {
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	return Run(ctx, application, opts...)
}

// Run drives the TUI against an already opened application
func Run(ctx context.Context, application *app.App, opts ...tea.ProgramOption) error {
	application.StartPresence(ctx)

	model := tui.InitialModel(ctx, application)
	defer model.Close()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
