package models

// ============================================================================
// TASK DEFAULTS
// ============================================================================

// DefaultPriority is assigned to tasks created without an explicit priority
const DefaultPriority = PriorityMedium

// ============================================================================
// COLUMN IDS
// ============================================================================

// Column ids of the default board layout
const (
	ColumnTodo       = "todo"
	ColumnInProgress = "inProgress"
	ColumnDone       = "done"
)

// ============================================================================
// PERSISTENCE KEYS
// ============================================================================

// Keys under which the board snapshot and theme preference are stored
const (
	BoardKey = "taskflow-boards"
	ThemeKey = "taskflow-theme"
)
