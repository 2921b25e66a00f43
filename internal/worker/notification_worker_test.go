package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/catalog-service/internal/config"
	"github.com/spec-kit/catalog-service/internal/events"
)

func TestStartNotificationWorkerLogsEventsWithoutBroker(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()

	stop := StartNotificationWorker(dispatcher, config.EventsConfig{SubjectPrefix: "catalog"}, zap.New(core))
	defer stop()

	err := dispatcher.Publish(context.Background(), events.Event{ID: "e-1", Type: events.EventAuthorDeleted, ResourceID: 4})
	assert.NoError(t, err)

	entries := logs.FilterMessage(string(events.EventAuthorDeleted)).All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, int64(4), entries[0].ContextMap()["resource_id"])
	}
}
