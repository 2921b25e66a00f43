package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/events"
)

// NotificationService logs domain events and forwards them to a broker when
// one is configured.
type NotificationService struct {
	dispatcher events.Dispatcher
	forwarder  events.Forwarder
	logger     *zap.Logger
}

// NewNotificationService creates the service. forwarder may be nil.
func NewNotificationService(dispatcher events.Dispatcher, forwarder events.Forwarder, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		forwarder:  forwarder,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for _, eventType := range events.AllEventTypes {
		n.dispatcher.Subscribe(eventType, n.handle)
	}
}

func (n *NotificationService) handle(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.Int64("resource_id", event.ResourceID),
		zap.Any("payload", event.Payload))

	if n.forwarder == nil {
		return nil
	}
	if err := n.forwarder.Forward(ctx, event); err != nil {
		n.logger.Warn("event forwarding failed",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		return err
	}
	return nil
}
