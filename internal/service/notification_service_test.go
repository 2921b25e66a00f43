package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/events"
)

type capturingForwarder struct {
	forwarded []events.Event
	err       error
}

func (f *capturingForwarder) Forward(_ context.Context, e events.Event) error {
	f.forwarded = append(f.forwarded, e)
	return f.err
}

func (f *capturingForwarder) Close() error { return nil }

func TestNotificationServiceForwardsEveryEventType(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	forwarder := &capturingForwarder{}
	NewNotificationService(dispatcher, forwarder, zap.NewNop()).RegisterHandlers()

	for _, eventType := range events.AllEventTypes {
		assert.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: eventType}))
	}
	assert.Len(t, forwarder.forwarded, len(events.AllEventTypes))
}

func TestNotificationServiceReportsForwardFailure(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	forwarder := &capturingForwarder{err: errors.New("nats down")}
	NewNotificationService(dispatcher, forwarder, zap.NewNop()).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventBookSaved})
	assert.ErrorContains(t, err, "nats down")
}
