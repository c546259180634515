package domain

// EventType represents the type of slider event
type EventType string

// Event types
const (
	EventSlideStart EventType = "slide-start"
	EventSlideEnd   EventType = "slide-end"
)

// DomainEvent is the interface for all slider events
type DomainEvent interface {
	Type() EventType
	Args() []any
}

// SlideStartEvent is emitted before the board starts moving to a new index
type SlideStartEvent struct {
	Index int
}

func (e SlideStartEvent) Type() EventType { return EventSlideStart }
func (e SlideStartEvent) Args() []any     { return []any{e.Index} }

// SlideEndEvent is emitted once the board has settled on the new index
type SlideEndEvent struct {
	Index int
}

func (e SlideEndEvent) Type() EventType { return EventSlideEnd }
func (e SlideEndEvent) Args() []any     { return []any{e.Index} }
