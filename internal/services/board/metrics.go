package board

import (
	"sync/atomic"
	"time"
)

// Metrics tracks persistence statistics using atomic operations for thread-safety
type Metrics struct {
	Saved       atomic.Int64
	Failed      atomic.Int64
	Coalesced   atomic.Int64
	Skipped     atomic.Int64
	LoadFailed  atomic.Int64
	LastSavedAt atomic.Int64 // unix nanoseconds, 0 if never
	StartTime   time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncSaved records a completed snapshot write
func (m *Metrics) IncSaved(at time.Time) {
	m.Saved.Add(1)
	m.LastSavedAt.Store(at.UnixNano())
}

// IncFailed increments the failed write counter
func (m *Metrics) IncFailed() {
	m.Failed.Add(1)
}

// IncCoalesced counts snapshots replaced before they were written
func (m *Metrics) IncCoalesced() {
	m.Coalesced.Add(1)
}

// IncSkipped counts snapshots not written because the board was empty
func (m *Metrics) IncSkipped() {
	m.Skipped.Add(1)
}

// IncLoadFailed increments the failed load counter
func (m *Metrics) IncLoadFailed() {
	m.LoadFailed.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Saved       int64      `json:"saved"`
	Failed      int64      `json:"failed"`
	Coalesced   int64      `json:"coalesced"`
	Skipped     int64      `json:"skipped"`
	LoadFailed  int64      `json:"load_failed"`
	LastSavedAt *time.Time `json:"last_saved_at,omitempty"`
	Uptime      string     `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		Saved:      m.Saved.Load(),
		Failed:     m.Failed.Load(),
		Coalesced:  m.Coalesced.Load(),
		Skipped:    m.Skipped.Load(),
		LoadFailed: m.LoadFailed.Load(),
		Uptime:     time.Since(m.StartTime).String(),
	}
	if ns := m.LastSavedAt.Load(); ns != 0 {
		t := time.Unix(0, ns)
		snap.LastSavedAt = &t
	}
	return snap
}
