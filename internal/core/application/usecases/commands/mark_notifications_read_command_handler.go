package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// MarkNotificationsReadCommandHandler writes read acknowledgements to the
// notification ack store. Acknowledgements never touch product state.
type MarkNotificationsReadCommandHandler struct {
	store ports.NotificationAckStore
}

func NewMarkNotificationsReadCommandHandler(store ports.NotificationAckStore) MarkNotificationsReadCommandHandler {
	return MarkNotificationsReadCommandHandler{store: store}
}

func (h MarkNotificationsReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationsReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.MarkRead(ctx, cmd.UserID(), cmd.NotificationIDs())
}
