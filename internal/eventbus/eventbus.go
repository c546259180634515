package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"listslider/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSlideStart = domain.EventSlideStart
	EventSlideEnd   = domain.EventSlideEnd
)

// Re-export domain event types
type SlideStartEvent = domain.SlideStartEvent
type SlideEndEvent = domain.SlideEndEvent

// EventHandler is a function that handles slider events
type EventHandler func(DomainEvent)

// Subscription is returned by Register and Subscribe
type Subscription interface {
	// Dispose removes the handler. Calling it more than once is harmless.
	Dispose()
}

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Register(handler EventHandler) Subscription
	Subscribe(eventType EventType, handler EventHandler) Subscription
	Len() int
	Clear()
}

// Option configures a bus
type Option func(*bus)

// WithLogger sets the logger used to report panicking handlers
func WithLogger(l *zap.Logger) Option {
	return func(b *bus) {
		if l != nil {
			b.logger = l
		}
	}
}

type subscriber struct {
	id        uint64
	eventType EventType // empty means every event
	handler   EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu          sync.RWMutex
	subscribers []subscriber
	nextID      uint64
	logger      *zap.Logger
}

// New creates a new event bus
func New(opts ...Option) EventBus {
	b := &bus{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish delivers an event synchronously to every matching subscriber in
// registration order. A panicking handler does not stop later handlers.
func (b *bus) Publish(event DomainEvent) {
	// Copy so handlers may register or dispose while being called
	b.mu.RLock()
	subs := make([]subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.RUnlock()

	for _, s := range subs {
		if s.eventType != "" && s.eventType != event.Type() {
			continue
		}
		b.call(s, event)
	}
}

func (b *bus) call(s subscriber, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				zap.String("event", string(event.Type())),
				zap.Uint64("subscriber", s.id),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	s.handler(event)
}

// Register adds a handler for every event. Duplicates are not detected.
func (b *bus) Register(handler EventHandler) Subscription {
	return b.add("", handler)
}

// Subscribe adds a handler for events of a specific type
func (b *bus) Subscribe(eventType EventType, handler EventHandler) Subscription {
	return b.add(eventType, handler)
}

func (b *bus) add(eventType EventType, handler EventHandler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subscribers = append(b.subscribers, subscriber{
		id:        b.nextID,
		eventType: eventType,
		handler:   handler,
	})
	return &subscription{bus: b, id: b.nextID}
}

func (b *bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subscribers {
		if s.id == id {
			b.subscribers = append(b.subscribers[:i:i], b.subscribers[i+1:]...)
			return
		}
	}
}

// Len returns the number of live subscriptions
func (b *bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Clear drops every subscription
func (b *bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = nil
}

type subscription struct {
	bus  *bus
	id   uint64
	once sync.Once
}

func (s *subscription) Dispose() {
	s.once.Do(func() { s.bus.remove(s.id) })
}
