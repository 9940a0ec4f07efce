package events

import (
	"sync"
	"testing"
	"time"
)

func receive(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.C:
		if !ok {
			t.Fatal("Subscription closed unexpectedly")
		}
		return ev
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for event")
	}
	return Event{}
}

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	bus := NewBus(nil)
	a := bus.Subscribe(1)
	b := bus.Subscribe(1)

	bus.Publish(Event{Type: EventBoardChanged, Op: "create", TaskID: "t1"})

	for _, sub := range []*Subscription{a, b} {
		ev := receive(t, sub)
		if ev.Type != EventBoardChanged || ev.TaskID != "t1" {
			t.Errorf("Unexpected event: %+v", ev)
		}
		if ev.Timestamp.IsZero() {
			t.Error("Expected timestamp to be stamped")
		}
	}
}

func TestBus_SequenceIDsIncrease(t *testing.T) {
	bus := NewBus(nil)
	sub := bus.Subscribe(4)

	bus.Publish(Event{Type: EventBoardChanged})
	bus.Publish(Event{Type: EventPresenceChanged})
	bus.Publish(Event{Type: EventThemeChanged})

	var last int64
	for i := 0; i < 3; i++ {
		ev := receive(t, sub)
		if ev.SequenceID <= last {
			t.Errorf("SequenceID %d not greater than %d", ev.SequenceID, last)
		}
		last = ev.SequenceID
	}
}

func TestBus_SlowSubscriberDoesNotBlock(t *testing.T) {
	bus := NewBus(nil)
	slow := bus.Subscribe(1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			bus.Publish(Event{Type: EventBoardChanged})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber queue")
	}

	snap := bus.Metrics().GetSnapshot()
	if snap.Published != 10 {
		t.Errorf("Expected 10 published, got %d", snap.Published)
	}
	if snap.Delivered != 1 || snap.Dropped != 9 {
		t.Errorf("Expected 1 delivered / 9 dropped, got %d / %d", snap.Delivered, snap.Dropped)
	}
	receive(t, slow)
}

func TestSubscription_Close(t *testing.T) {
	bus := NewBus(nil)
	sub := bus.Subscribe(1)
	sub.Close()
	sub.Close() // idempotent

	if _, ok := <-sub.C; ok {
		t.Error("Expected closed channel")
	}
	if got := bus.Metrics().GetSnapshot().Subscribers; got != 0 {
		t.Errorf("Expected 0 subscribers, got %d", got)
	}

	// Publishing after unsubscribe must not panic
	bus.Publish(Event{Type: EventBoardChanged})
}

func TestBus_Close(t *testing.T) {
	bus := NewBus(nil)
	sub := bus.Subscribe(1)
	bus.Close()

	if _, ok := <-sub.C; ok {
		t.Error("Expected subscription closed by bus Close")
	}
	sub.Close() // must not double close

	late := bus.Subscribe(1)
	if _, ok := <-late.C; ok {
		t.Error("Expected subscription on closed bus to be closed")
	}
}

func TestBus_ConcurrentPublishAndSubscribe(t *testing.T) {
	bus := NewBus(nil)
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				bus.Publish(Event{Type: EventBoardChanged})
			}
		}()
		go func() {
			defer wg.Done()
			sub := bus.Subscribe(2)
			sub.Close()
		}()
	}
	wg.Wait()

	if got := bus.Metrics().GetSnapshot().Published; got != 400 {
		t.Errorf("Expected 400 published, got %d", got)
	}
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	p.Publish(Event{Type: EventBoardChanged})
}
