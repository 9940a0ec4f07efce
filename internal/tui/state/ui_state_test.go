package state

import "testing"

func TestUIState_ViewportSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{20, 1},
		{76, 2},
		{112, 3},
	}

	for _, tt := range tests {
		s := NewUIState()
		s.SetWidth(tt.width)
		if got := s.ViewportSize(); got != tt.want {
			t.Errorf("width %d: ViewportSize() = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestUIState_EnsureColumnVisible(t *testing.T) {
	t.Parallel()
	s := NewUIState()
	s.SetWidth(40) // one column at a time

	s.EnsureColumnVisible(2)
	if s.ViewportOffset() != 2 {
		t.Errorf("Expected offset 2, got %d", s.ViewportOffset())
	}

	s.EnsureColumnVisible(0)
	if s.ViewportOffset() != 0 {
		t.Errorf("Expected offset 0, got %d", s.ViewportOffset())
	}
}

func TestUIState_ClampSelection(t *testing.T) {
	t.Parallel()
	counts := []int{2, 0, 5}
	count := func(c int) int { return counts[c] }

	s := NewUIState()
	s.SetSelectedColumn(7)
	s.SetSelectedTask(9)
	s.ClampSelection(len(counts), count)
	if s.SelectedColumn() != 2 || s.SelectedTask() != 4 {
		t.Errorf("Expected (2, 4), got (%d, %d)", s.SelectedColumn(), s.SelectedTask())
	}

	s.SetSelectedColumn(1)
	s.ClampSelection(len(counts), count)
	if s.SelectedTask() != 0 {
		t.Errorf("Empty column should clamp task to 0, got %d", s.SelectedTask())
	}
}

func TestUIState_EnsureTaskVisible(t *testing.T) {
	t.Parallel()
	s := NewUIState()

	s.EnsureTaskVisible("todo", 5, 3)
	if got := s.TaskScrollOffset("todo"); got != 3 {
		t.Errorf("Expected offset 3, got %d", got)
	}

	s.EnsureTaskVisible("todo", 1, 3)
	if got := s.TaskScrollOffset("todo"); got != 1 {
		t.Errorf("Expected offset 1, got %d", got)
	}

	if got := s.TaskScrollOffset("done"); got != 0 {
		t.Errorf("Unknown column should have offset 0, got %d", got)
	}
}

func TestNotificationState_Cap(t *testing.T) {
	t.Parallel()
	s := NewNotificationState()

	for _, m := range []string{"a", "b", "c", "d"} {
		s.Add(LevelInfo, m)
	}
	all := s.All()
	if len(all) != MaxNotifications || all[0].Message != "b" {
		t.Errorf("Expected the oldest to be dropped, got %v", all)
	}

	s.Add(LevelError, "save failed")
	s.ClearLevel(LevelInfo)
	if len(s.All()) != 1 || s.All()[0].Level != LevelError {
		t.Errorf("ClearLevel left %v", s.All())
	}

	s.Clear()
	if s.HasAny() {
		t.Error("Expected no notifications after Clear")
	}
}
