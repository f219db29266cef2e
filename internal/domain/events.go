package domain

// EventKind names a state change emitted by the engine.
type EventKind string

// Emitted event kinds.
const (
	EventAnchorCreated   EventKind = "anchor-created"
	EventAnchorDeleted   EventKind = "anchor-deleted"
	EventBufferChanged   EventKind = "buffer-changed"
	EventLinkCreated     EventKind = "link-created"
	EventLinkStatusSet   EventKind = "link-status-set"
	EventLinkDeleted     EventKind = "link-deleted"
	EventRunReplaced     EventKind = "run-replaced"
	EventDocumentUpdated EventKind = "document-updated"
)

// Event is one engine state change. IDs are entity ids of the kind's
// subject; subscribers query the engine for details rather than receiving
// live references.
type Event struct {
	Kind       EventKind
	TestCaseID string
	ID         string
}

// Bus is a single-directional event channel from the engine to its
// consumers: the engine publishes, the UI subscribes, nothing reaches back
// into engine internals.
type Bus struct {
	subs []func(Event)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all subsequent events. Handlers run
// synchronously on the publishing goroutine.
func (b *Bus) Subscribe(fn func(Event)) {
	b.subs = append(b.subs, fn)
}

// Publish delivers the event to every subscriber in registration order.
func (b *Bus) Publish(evt Event) {
	for _, fn := range b.subs {
		fn(evt)
	}
}
