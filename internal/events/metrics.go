package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks bus statistics using atomic operations for thread-safety
type Metrics struct {
	Published   atomic.Int64
	Delivered   atomic.Int64
	Dropped     atomic.Int64
	Subscribers atomic.Int32
	StartTime   time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncPublished increments the published counter
func (m *Metrics) IncPublished() {
	m.Published.Add(1)
}

// IncDelivered increments the delivered counter
func (m *Metrics) IncDelivered() {
	m.Delivered.Add(1)
}

// IncDropped increments the dropped counter
func (m *Metrics) IncDropped() {
	m.Dropped.Add(1)
}

// SetSubscribers sets the current subscriber count
func (m *Metrics) SetSubscribers(count int32) {
	m.Subscribers.Store(count)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Published   int64  `json:"published"`
	Delivered   int64  `json:"delivered"`
	Dropped     int64  `json:"dropped"`
	Subscribers int32  `json:"subscribers"`
	Uptime      string `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Published:   m.Published.Load(),
		Delivered:   m.Delivered.Load(),
		Dropped:     m.Dropped.Load(),
		Subscribers: m.Subscribers.Load(),
		Uptime:      time.Since(m.StartTime).String(),
	}
}
