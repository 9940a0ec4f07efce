package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	DragMode                      // A task is armed; column keys choose the drop target
	TaskFormMode                  // Filling in the add or edit task form
	DeleteConfirmMode             // Confirming task deletion
	DetailMode                    // Showing the selected task's details
	HelpMode                      // Displaying help screen
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), viewport scrolling,
// terminal dimensions, the drop target while dragging and the current mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	// dropTarget is the column index a drag would resolve into
	dropTarget int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// taskScrollOffsets tracks the vertical scroll offset for each column
	// Key: columnID, Value: scroll offset (index of first visible task)
	taskScrollOffsets map[string]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1, // Recalculated when width is set
		taskScrollOffsets: make(map[string]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// DropTarget returns the column index a drag would resolve into.
func (s *UIState) DropTarget() int {
	return s.dropTarget
}

// SetDropTarget updates the drop target column index.
func (s *UIState) SetDropTarget(index int) {
	s.dropTarget = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the board.
// This is terminal height minus header and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 3    // title/presence + stats + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns can fit in the terminal width.
//
// Column layout:
//   - Content width: 30 characters
//   - Padding: 2 characters (1 on each side)
//   - Border: 2 characters (1 on each side)
//   - Spacing: 2 characters (between columns)
//   - Total per column: 36 characters
//
// The calculation reserves 4 characters for margins and scroll indicators,
// and ensures at least 1 column is always visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const columnWidth = 36  // 30 content + 2 padding + 2 border + 2 spacing
	const reservedWidth = 4 // margins and scroll indicators

	availableWidth := s.width - reservedWidth

	// Calculate how many columns fit, with minimum of 1
	s.viewportSize = max(1, availableWidth/columnWidth)
}

// EnsureColumnVisible adjusts the viewport so the given column is on screen.
// This should be called after navigation or when the drop target changes.
func (s *UIState) EnsureColumnVisible(column int) {
	// If the column is off-screen to the left, scroll left
	if column < s.viewportOffset {
		s.viewportOffset = column
	}

	// If the column is off-screen to the right, scroll right
	if column >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = column - s.viewportSize + 1
	}
}

// ClampSelection keeps the selection inside the board after tasks were
// added or removed elsewhere.
//
// Parameters:
//   - columnsLen: the total number of columns
//   - taskCount: number of tasks in the selected column after clamping the column
func (s *UIState) ClampSelection(columnsLen int, taskCount func(column int) int) {
	if columnsLen == 0 {
		s.selectedColumn, s.selectedTask, s.viewportOffset = 0, 0, 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), columnsLen-1)
	s.selectedTask = min(s.selectedTask, taskCount(s.selectedColumn)-1)
	s.selectedTask = max(s.selectedTask, 0)
}

// TaskScrollOffset returns the vertical scroll offset for a given column.
// Returns 0 if the column has no scroll offset set.
func (s *UIState) TaskScrollOffset(columnID string) int {
	if offset, ok := s.taskScrollOffsets[columnID]; ok {
		return offset
	}
	return 0
}

// EnsureTaskVisible adjusts the scroll offset to ensure the selected task is visible.
// This should be called after task navigation within a column.
//
// Parameters:
//   - columnID: the column containing the task
//   - selectedTaskIdx: index of the selected task within the column
//   - visibleCount: number of tasks that can be displayed at once
func (s *UIState) EnsureTaskVisible(columnID string, selectedTaskIdx int, visibleCount int) {
	offset := s.TaskScrollOffset(columnID)

	// If selection is above visible area, scroll up
	if selectedTaskIdx < offset {
		s.taskScrollOffsets[columnID] = selectedTaskIdx
	}

	// If selection is below visible area, scroll down
	if selectedTaskIdx >= offset+visibleCount {
		s.taskScrollOffsets[columnID] = selectedTaskIdx - visibleCount + 1
	}
}
