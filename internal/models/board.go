package models

// Board is the full set of columns in display order.
// Column ids are fixed when the board is created.
type Board struct {
	Columns []Column
}

// ColumnStats holds the task count of one column
type ColumnStats struct {
	ColumnID string
	Title    string
	Count    int
}

// BoardStats summarizes a board for headers and reports
type BoardStats struct {
	Columns []ColumnStats
	Total   int
}

// NewBoard creates an empty board with one column per spec.
// Specs are sanitized first, so column ids are always unique.
func NewBoard(specs []ColumnSpec) *Board {
	specs, _ = SanitizeColumns(specs)
	b := &Board{Columns: make([]Column, len(specs))}
	for i, s := range specs {
		b.Columns[i] = Column{ID: s.ID, Title: s.Title, Color: s.Color, Tasks: []Task{}}
	}
	return b
}

// Column returns the column with the given id
func (b *Board) Column(id string) (*Column, bool) {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return &b.Columns[i], true
		}
	}
	return nil, false
}

// Find locates a task anywhere on the board and returns it with its column id
func (b *Board) Find(taskID string) (Task, string, bool) {
	for _, c := range b.Columns {
		if i := c.IndexOf(taskID); i >= 0 {
			return c.Tasks[i], c.ID, true
		}
	}
	return Task{}, "", false
}

// TaskCount returns the number of tasks across all columns
func (b *Board) TaskCount() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Tasks)
	}
	return n
}

// Specs returns the column specs in display order
func (b *Board) Specs() []ColumnSpec {
	specs := make([]ColumnSpec, len(b.Columns))
	for i, c := range b.Columns {
		specs[i] = c.Spec()
	}
	return specs
}

// Stats returns per-column task counts
func (b *Board) Stats() BoardStats {
	stats := BoardStats{Columns: make([]ColumnStats, len(b.Columns))}
	for i, c := range b.Columns {
		stats.Columns[i] = ColumnStats{ColumnID: c.ID, Title: c.Title, Count: len(c.Tasks)}
		stats.Total += len(c.Tasks)
	}
	return stats
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	out := &Board{Columns: make([]Column, len(b.Columns))}
	for i := range b.Columns {
		out.Columns[i] = b.Columns[i].Clone()
	}
	return out
}
