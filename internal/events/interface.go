package events

// Publisher sends change notifications.
// Publish never blocks the caller.
type Publisher interface {
	Publish(event Event)
}

// Subscriber hands out event streams
type Subscriber interface {
	Subscribe(buffer int) *Subscription
}

// Compile-time verification that *Bus implements both sides
var (
	_ Publisher  = (*Bus)(nil)
	_ Subscriber = (*Bus)(nil)
)

// Nop is a Publisher that discards every event
type Nop struct{}

// Publish discards the event
func (Nop) Publish(Event) {}
