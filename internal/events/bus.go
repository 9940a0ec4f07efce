// Package events is the in-process notification bus between the board engine,
// the presence simulator and the presentation layers.
package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBuffer is the per-subscriber queue size used when none is given
const DefaultBuffer = 16

// Subscription is one subscriber's event stream
type Subscription struct {
	C <-chan Event

	bus       *Bus
	ch        chan Event
	closeOnce sync.Once // Ensures ch is closed only once
}

// Close unsubscribes and closes C
func (s *Subscription) Close() {
	s.bus.remove(s)
}

// Bus fans events out to subscribers. A slow subscriber never blocks the
// publisher: when its queue is full the event is dropped for that subscriber.
type Bus struct {
	mu              sync.RWMutex
	subs            map[*Subscription]struct{}
	sequenceCounter atomic.Int64
	metrics         *Metrics
	logger          *slog.Logger
	closed          bool
}

// NewBus creates an empty bus
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:    make(map[*Subscription]struct{}),
		metrics: NewMetrics(),
		logger:  logger,
	}
}

// Subscribe registers a new subscriber with the given queue size
func (b *Bus) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan Event, buffer)
	sub := &Subscription{C: ch, bus: b, ch: ch}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		sub.closeOnce.Do(func() { close(ch) })
		return sub
	}
	b.subs[sub] = struct{}{}
	b.metrics.SetSubscribers(int32(len(b.subs)))
	return sub
}

// Publish stamps the event with a sequence number and delivers it to every subscriber
func (b *Bus) Publish(event Event) {
	event.SequenceID = b.sequenceCounter.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	b.metrics.IncPublished()

	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.subs {
		select {
		case sub.ch <- event:
			b.metrics.IncDelivered()
		default:
			// Non-blocking send - if the subscriber is slow, skip
			b.metrics.IncDropped()
			b.logger.Debug("subscriber queue full, event dropped",
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}
}

// Close closes every subscription. Later subscriptions are closed immediately.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for sub := range b.subs {
		sub.closeOnce.Do(func() { close(sub.ch) })
		delete(b.subs, sub)
	}
	b.metrics.SetSubscribers(0)
}

// Metrics returns the bus counters
func (b *Bus) Metrics() *Metrics {
	return b.metrics
}

func (b *Bus) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, sub)
	b.metrics.SetSubscribers(int32(len(b.subs)))
	sub.closeOnce.Do(func() { close(sub.ch) })
}
