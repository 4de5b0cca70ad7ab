package realtime

import (
	"sync"

	"github.com/google/uuid"

	"giglance/pkg/logger"
)

// EventKind is the change-event type delivered to subscribers.
type EventKind string

const EventInsert EventKind = "INSERT"

// Event is one change notification. Payload is the inserted record;
// fields holds the filterable columns used for subscription matching.
type Event struct {
	Table   string
	Kind    EventKind
	Payload interface{}
	fields  map[string]string
}

// NewInsertEvent builds an insert event for table carrying payload.
// fields lists the columns a subscription filter may match against.
func NewInsertEvent(table string, payload interface{}, fields map[string]string) Event {
	return Event{
		Table:   table,
		Kind:    EventInsert,
		Payload: payload,
		fields:  fields,
	}
}

// Field returns a filterable column value from the event.
func (e Event) Field(name string) (string, bool) {
	v, ok := e.fields[name]
	return v, ok
}

// Subscription is a finite stream of change events for one table and
// filter. The Events channel is closed when the subscription ends;
// resubscribing starts a fresh stream.
type Subscription struct {
	ID     string
	Table  string
	Kind   EventKind
	Filter map[string]string
	Events chan Event

	hub *Hub

	mu     sync.Mutex
	closed bool
}

// Unsubscribe ends the stream and closes the Events channel.
func (s *Subscription) Unsubscribe() {
	s.hub.Unsubscribe(s.ID)
}

// send delivers event without blocking. The closed flag and the close
// itself are serialized on s.mu, so a concurrent Unsubscribe can never
// close the channel between the check and the send. Reports false only
// when the subscriber's buffer is full.
func (s *Subscription) send(event Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return true
	}

	select {
	case s.Events <- event:
		return true
	default:
		return false
	}
}

func (s *Subscription) closeEvents() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.Events)
	}
}

func (s *Subscription) matches(event Event) bool {
	if s.Table != event.Table || s.Kind != event.Kind {
		return false
	}
	for field, want := range s.Filter {
		got, ok := event.Field(field)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Hub fans change events out to matching subscriptions. It is the
// in-process stand-in for the backend platform's realtime notifier.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]*Subscription
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]*Subscription),
	}
}

// subscriptionBuffer bounds how far a consumer may lag before it is
// dropped.
const subscriptionBuffer = 32

// Subscribe opens a stream of kind events on table. A nil or empty
// filter matches every event on the table.
func (h *Hub) Subscribe(table string, kind EventKind, filter map[string]string) *Subscription {
	sub := &Subscription{
		ID:     uuid.New().String(),
		Table:  table,
		Kind:   kind,
		Filter: filter,
		Events: make(chan Event, subscriptionBuffer),
		hub:    h,
	}

	h.mu.Lock()
	h.subs[sub.ID] = sub
	h.mu.Unlock()

	return sub
}

// Unsubscribe removes the subscription and closes its Events channel.
// Unknown IDs are ignored, so unsubscribing twice is safe.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	sub, ok := h.subs[id]
	if ok {
		delete(h.subs, id)
	}
	h.mu.Unlock()

	if ok {
		sub.closeEvents()
	}
}

// Publish delivers event to every matching subscription. A subscriber
// whose buffer is full is dropped rather than allowed to block the
// publisher.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	var matched []*Subscription
	for _, sub := range h.subs {
		if sub.matches(event) {
			matched = append(matched, sub)
		}
	}
	h.mu.RUnlock()

	for _, sub := range matched {
		if !sub.send(event) {
			logger.Warn("Dropping slow realtime subscriber %s on table %s", sub.ID, sub.Table)
			h.Unsubscribe(sub.ID)
		}
	}
}

// SubscriberCount reports the number of live subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
