package ports

import (
	"context"
)

// EventPublisher delivers a serialized integration event to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, messageID string, body []byte) error
}
