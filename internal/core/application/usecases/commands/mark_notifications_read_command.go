package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrMarkNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkNotificationsReadCommand must be created via NewMarkNotificationsReadCommand constructor",
)

// MarkNotificationsReadCommand acknowledges notifications for one user.
type MarkNotificationsReadCommand struct {
	userID          kernel.UUID
	notificationIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkNotificationsReadCommand(userID kernel.UUID, notificationIDs []kernel.UUID) (MarkNotificationsReadCommand, error) {
	if err := userID.Validate(); err != nil {
		return MarkNotificationsReadCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if len(notificationIDs) == 0 {
		return MarkNotificationsReadCommand{}, errs.NewValueIsRequiredError("notificationIds")
	}
	for _, id := range notificationIDs {
		if err := id.Validate(); err != nil {
			return MarkNotificationsReadCommand{}, err
		}
	}

	return MarkNotificationsReadCommand{
		userID:          userID,
		notificationIDs: append([]kernel.UUID(nil), notificationIDs...),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationsReadCommandIsNotConstructed)
}

func (c MarkNotificationsReadCommand) UserID() kernel.UUID {
	return c.userID
}

func (c MarkNotificationsReadCommand) NotificationIDs() []kernel.UUID {
	return c.notificationIDs
}
