package events

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/nats-io/nats.go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Forwarder sends events to an external broker.
type Forwarder interface {
	Forward(ctx context.Context, event Event) error
	Close() error
}

// NATSForwarder publishes JSON-encoded events on "<prefix>.<event type>".
type NATSForwarder struct {
	conn   *nats.Conn
	prefix string
}

// NewNATSForwarder connects to NATS with automatic reconnection.
func NewNATSForwarder(url, prefix string) (*NATSForwarder, error) {
	nc, err := nats.Connect(url,
		nats.Name("catalog-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return &NATSForwarder{conn: nc, prefix: prefix}, nil
}

// Subject returns the NATS subject an event type is published on.
func Subject(prefix string, eventType EventType) string {
	if prefix == "" {
		return string(eventType)
	}
	return prefix + "." + string(eventType)
}

func (f *NATSForwarder) Forward(_ context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	return f.conn.Publish(Subject(f.prefix, event.Type), data)
}

func (f *NATSForwarder) Close() error {
	if err := f.conn.Drain(); err != nil {
		f.conn.Close()
		return err
	}
	return nil
}
