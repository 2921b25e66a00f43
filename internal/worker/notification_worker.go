package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/config"
	"github.com/spec-kit/catalog-service/internal/events"
	"github.com/spec-kit/catalog-service/internal/service"
)

// StartNotificationWorker wires event logging and, when NATS is configured,
// event forwarding onto the dispatcher. The returned func releases the broker
// connection.
func StartNotificationWorker(dispatcher events.Dispatcher, cfg config.EventsConfig, logger *zap.Logger) func() {
	var forwarder events.Forwarder
	if cfg.NATSURL != "" {
		natsForwarder, err := events.NewNATSForwarder(cfg.NATSURL, cfg.SubjectPrefix)
		if err != nil {
			logger.Warn("event forwarding disabled", zap.Error(err))
		} else {
			logger.Info("forwarding events to nats", zap.String("subject_prefix", cfg.SubjectPrefix))
			forwarder = natsForwarder
		}
	}

	service.NewNotificationService(dispatcher, forwarder, logger).RegisterHandlers()

	return func() {
		if forwarder == nil {
			return
		}
		if err := forwarder.Close(); err != nil {
			logger.Warn("closing event forwarder", zap.Error(err))
		}
	}
}
