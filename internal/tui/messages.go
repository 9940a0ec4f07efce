package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/events"
	themesvc "github.com/thenoetrevino/taskflow/internal/services/theme"
)

// busEventMsg carries one event from the bus into the update loop
type busEventMsg struct {
	event events.Event
}

// themeSavedMsg reports the outcome of a background theme save
type themeSavedMsg struct {
	name string
	err  error
}

// waitForEvent blocks on the subscription and returns the next event.
// A closed subscription yields nil, which bubbletea ignores.
func waitForEvent(sub *events.Subscription) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-sub.C
		if !ok {
			return nil
		}
		return busEventMsg{event: ev}
	}
}

// saveTheme persists the selected theme off the update loop
func saveTheme(ctx context.Context, themes *themesvc.Service) tea.Cmd {
	return func() tea.Msg {
		name, err := themes.Save(ctx)
		return themeSavedMsg{name: name, err: err}
	}
}
