package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribersOfType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []EventType
	d.Subscribe(EventBookSaved, func(_ context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})

	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventBookSaved}))
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventBookDeleted}))
	assert.Equal(t, []EventType{EventBookSaved}, got)
}

func TestDispatcherRunsAllHandlersAndJoinsErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")

	calls := 0
	d.Subscribe(EventUserDeleted, func(context.Context, Event) error {
		calls++
		return boom
	})
	d.Subscribe(EventUserDeleted, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventUserDeleted})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestDispatcherContainsPanickingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	delivered := false
	d.Subscribe(EventMessageUpserted, func(context.Context, Event) error {
		panic("nil payload")
	})
	d.Subscribe(EventMessageUpserted, func(context.Context, Event) error {
		delivered = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventMessageUpserted})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message_upserted handler 0: panic: nil payload")
	assert.True(t, delivered)
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "catalog.message_upserted", Subject("catalog", EventMessageUpserted))
	assert.Equal(t, "author_deleted", Subject("", EventAuthorDeleted))
}
