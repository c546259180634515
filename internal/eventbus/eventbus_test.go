package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublishInRegistrationOrder(t *testing.T) {
	b := New()
	var calls []string

	b.Register(func(e DomainEvent) { calls = append(calls, "first") })
	b.Register(func(e DomainEvent) { calls = append(calls, "second") })
	b.Register(func(e DomainEvent) { calls = append(calls, "third") })

	b.Publish(SlideStartEvent{Index: 2})

	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestPublishPassesNameAndArgs(t *testing.T) {
	b := New()
	var got DomainEvent
	b.Register(func(e DomainEvent) { got = e })

	b.Publish(SlideEndEvent{Index: 4})

	require.NotNil(t, got)
	assert.Equal(t, EventSlideEnd, got.Type())
	assert.Equal(t, []any{4}, got.Args())
}

func TestDuplicateRegistrationIsDeliveredTwice(t *testing.T) {
	b := New()
	count := 0
	h := func(e DomainEvent) { count++ }
	b.Register(h)
	b.Register(h)

	b.Publish(SlideStartEvent{})

	assert.Equal(t, 2, count)
}

func TestSubscribeFiltersByType(t *testing.T) {
	b := New()
	var starts, ends int
	b.Subscribe(EventSlideStart, func(e DomainEvent) { starts++ })
	b.Subscribe(EventSlideEnd, func(e DomainEvent) { ends++ })

	b.Publish(SlideStartEvent{Index: 1})
	b.Publish(SlideStartEvent{Index: 2})
	b.Publish(SlideEndEvent{Index: 2})

	assert.Equal(t, 2, starts)
	assert.Equal(t, 1, ends)
}

func TestPanickingHandlerIsIsolated(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	b := New(WithLogger(zap.New(core)))

	reached := false
	b.Register(func(e DomainEvent) { panic("boom") })
	b.Register(func(e DomainEvent) { reached = true })

	assert.NotPanics(t, func() { b.Publish(SlideStartEvent{Index: 0}) })
	assert.True(t, reached)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "event handler panic", logs.All()[0].Message)
}

func TestDispose(t *testing.T) {
	b := New()
	var calls []string
	first := b.Register(func(e DomainEvent) { calls = append(calls, "first") })
	b.Register(func(e DomainEvent) { calls = append(calls, "second") })
	require.Equal(t, 2, b.Len())

	first.Dispose()
	first.Dispose()
	b.Publish(SlideStartEvent{})

	assert.Equal(t, []string{"second"}, calls)
	assert.Equal(t, 1, b.Len())
}

func TestDisposeDuringPublish(t *testing.T) {
	b := New()
	var calls []string
	var second Subscription
	b.Register(func(e DomainEvent) {
		calls = append(calls, "first")
		second.Dispose()
	})
	second = b.Register(func(e DomainEvent) { calls = append(calls, "second") })

	b.Publish(SlideStartEvent{})
	b.Publish(SlideStartEvent{})

	assert.Equal(t, []string{"first", "second", "first"}, calls)
}

func TestClear(t *testing.T) {
	b := New()
	called := false
	b.Register(func(e DomainEvent) { called = true })

	b.Clear()
	b.Publish(SlideEndEvent{})

	assert.False(t, called)
	assert.Equal(t, 0, b.Len())
}
