package converters

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// BoardRecord is the persisted snapshot: column id -> column
type BoardRecord map[string]ColumnRecord

// EncodeBoard serializes the full board
func EncodeBoard(b *models.Board) (string, error) {
	rec := make(BoardRecord, len(b.Columns))
	for _, c := range b.Columns {
		rec[c.ID] = ColumnToRecord(c)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("failed to encode board: %w", err)
	}
	return string(data), nil
}

// DecodeReport lists what DecodeBoard left out of the restored board
type DecodeReport struct {
	// UnknownColumns holds the sorted ids of snapshot columns with tasks
	// that no spec names
	UnknownColumns []string

	// Skipped holds one error per task record that could not be converted
	Skipped []error
}

// DecodeBoard parses a snapshot into a board laid out by specs.
// Columns in specs missing from the snapshot come back empty. Snapshot
// columns not named by any spec and task records that fail to convert are
// left out and listed in the report so the caller can warn about them.
// Only a snapshot that is not a JSON object of columns is an error.
func DecodeBoard(raw string, specs []models.ColumnSpec) (*models.Board, DecodeReport, error) {
	var report DecodeReport

	var rec BoardRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, report, fmt.Errorf("failed to decode board: %w", err)
	}
	if rec == nil {
		return nil, report, fmt.Errorf("failed to decode board: snapshot is null")
	}

	specs, _ = models.SanitizeColumns(specs)
	board := &models.Board{Columns: make([]models.Column, len(specs))}
	known := make(map[string]bool, len(specs))
	for i, spec := range specs {
		known[spec.ID] = true
		col, skipped := ColumnFromRecord(spec, rec[spec.ID])
		report.Skipped = append(report.Skipped, skipped...)
		board.Columns[i] = col
	}

	for id, c := range rec {
		if !known[id] && len(c.Tasks) > 0 {
			report.UnknownColumns = append(report.UnknownColumns, id)
		}
	}
	sort.Strings(report.UnknownColumns)

	return board, report, nil
}
