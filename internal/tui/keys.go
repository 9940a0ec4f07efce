package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/taskflow/internal/config"
)

// keyMap holds the bindings built from the configured key mappings
type keyMap struct {
	PrevColumn    key.Binding
	NextColumn    key.Binding
	PrevTask      key.Binding
	NextTask      key.Binding
	AddTask       key.Binding
	EditTask      key.Binding
	DeleteTask    key.Binding
	CyclePriority key.Binding
	ViewTask      key.Binding
	StartDrag     key.Binding
	Drop          key.Binding
	CancelDrag    key.Binding
	CycleTheme    key.Binding
	ShowHelp      key.Binding
	Quit          key.Binding
}

func newKeyMap(k config.KeyMappings) keyMap {
	bind := func(help, desc string, keys ...string) key.Binding {
		for i, k := range keys {
			keys[i] = keyLabel(k)
		}
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
	}
	return keyMap{
		PrevColumn:    bind(keyLabel(k.PrevColumn)+"/←", "prev column", k.PrevColumn, "left"),
		NextColumn:    bind(keyLabel(k.NextColumn)+"/→", "next column", k.NextColumn, "right"),
		PrevTask:      bind(keyLabel(k.PrevTask)+"/↑", "prev task", k.PrevTask, "up"),
		NextTask:      bind(keyLabel(k.NextTask)+"/↓", "next task", k.NextTask, "down"),
		AddTask:       bind(keyLabel(k.AddTask), "add task", k.AddTask),
		EditTask:      bind(keyLabel(k.EditTask), "edit task", k.EditTask),
		DeleteTask:    bind(keyLabel(k.DeleteTask), "delete task", k.DeleteTask),
		CyclePriority: bind(keyLabel(k.CyclePriority), "cycle priority", k.CyclePriority),
		ViewTask:      bind(keyLabel(k.ViewTask), "task details", k.ViewTask),
		StartDrag:     bind(keyLabel(k.StartDrag), "drag task", k.StartDrag),
		Drop:          bind(keyLabel(k.Drop), "drop", k.Drop),
		CancelDrag:    bind(keyLabel(k.CancelDrag), "cancel drag", k.CancelDrag),
		CycleTheme:    bind(keyLabel(k.CycleTheme), "next theme", k.CycleTheme),
		ShowHelp:      bind(keyLabel(k.ShowHelp), "help", k.ShowHelp),
		Quit:          bind(keyLabel(k.Quit), "quit", k.Quit),
	}
}

// ShortHelp is shown in the status bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.EditTask, k.StartDrag, k.ViewTask, k.ShowHelp, k.Quit}
}

// FullHelp is shown on the help screen
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask},
		{k.AddTask, k.EditTask, k.DeleteTask, k.CyclePriority, k.ViewTask},
		{k.StartDrag, k.Drop, k.CancelDrag},
		{k.CycleTheme, k.ShowHelp, k.Quit},
	}
}

// keyLabel names a configured key the way key presses report it
func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
