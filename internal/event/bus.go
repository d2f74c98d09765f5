package event

// Handler receives published events.
type Handler func(Event)

// subscription ties a handler to an optional type filter.
type subscription struct {
	id      int
	kind    Type // "" matches every type
	handler Handler
}

// Bus delivers events to subscribed handlers synchronously, in
// subscription order. A Bus belongs to one editing surface and is not
// safe for concurrent use; the editing core is single-threaded.
type Bus struct {
	subs   []subscription
	nextID int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers handler for events of kind t. The returned
// function removes the subscription.
func (b *Bus) Subscribe(t Type, handler Handler) (unsubscribe func()) {
	return b.add(t, handler)
}

// SubscribeAll registers handler for every event type.
func (b *Bus) SubscribeAll(handler Handler) (unsubscribe func()) {
	return b.add("", handler)
}

func (b *Bus) add(t Type, handler Handler) func() {
	if handler == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, kind: t, handler: handler})

	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e to every matching handler.
func (b *Bus) Publish(e Event) {
	// Snapshot so handlers may unsubscribe during delivery.
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)

	for _, s := range subs {
		if s.kind == "" || s.kind == e.Type {
			s.handler(e)
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (b *Bus) SubscriberCount() int {
	return len(b.subs)
}
