package ports

import (
	"context"

	"warehouse/internal/core/domain/model/outbox"
)

// OutboxRepository stores integration events until the relay delivers them.
type OutboxRepository interface {
	// Add enqueues a message in the current transaction.
	Add(ctx context.Context, message *outbox.Message) error

	// ListPending locks up to limit pending messages, oldest first. Rows
	// locked by a concurrent relay are skipped.
	ListPending(ctx context.Context, limit int) ([]*outbox.Message, error)

	// Update stores the delivery state of message.
	Update(ctx context.Context, message *outbox.Message) error
}
