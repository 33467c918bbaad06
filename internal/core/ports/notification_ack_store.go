package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
)

// NotificationAckStore remembers which notifications each user has read.
// It lives outside the relational store and outside the lifecycle engine.
type NotificationAckStore interface {
	// MarkRead adds notificationIDs to the read set of userID.
	MarkRead(ctx context.Context, userID kernel.UUID, notificationIDs []kernel.UUID) error

	// ReadSet returns the identifiers userID has read.
	ReadSet(ctx context.Context, userID kernel.UUID) (map[kernel.UUID]struct{}, error)
}
