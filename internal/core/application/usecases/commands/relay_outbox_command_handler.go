package commands

import (
	"context"
	"log/slog"

	"warehouse/internal/core/ports"
)

// RelayOutboxResult counts what one relay run did.
type RelayOutboxResult struct {
	Published int
	Failed    int
}

// RelayOutboxCommandHandler publishes pending outbox messages to the broker.
//
// Pending rows are locked for the duration of the run, so concurrent relays
// work on disjoint batches. Delivery is at least once: a crash between publish
// and commit republishes the batch on the next run, and consumers deduplicate
// by message ID.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "outbox_relay"),
	}
}

// Handle publishes one batch. A failed publish does not abort the batch; the
// message keeps its pending status with an incremented retry counter.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayOutboxResult, error) {
	if err := cmd.Validate(); err != nil {
		return RelayOutboxResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()

	messages, err := repo.ListPending(ctx, cmd.BatchSize())
	if err != nil {
		return RelayOutboxResult{}, err
	}
	if len(messages) == 0 {
		return RelayOutboxResult{}, nil
	}

	var result RelayOutboxResult
	for _, m := range messages {
		if pubErr := h.publisher.Publish(ctx, m.EventType(), m.ID().String(), m.Payload()); pubErr != nil {
			m.MarkFailed(pubErr)
			result.Failed++
			h.logger.WarnContext(ctx, "outbox message publish failed",
				"messageId", m.ID().String(),
				"eventType", m.EventType(),
				"retries", m.Retries(),
				"error", pubErr,
			)
		} else {
			m.MarkProcessed()
			result.Published++
		}

		if err = repo.Update(ctx, m); err != nil {
			return RelayOutboxResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	return result, nil
}
