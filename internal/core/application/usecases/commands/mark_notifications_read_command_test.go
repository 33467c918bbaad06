package commands_test

import (
	"errors"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkNotificationsReadCommand(t *testing.T) {
	userID := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		cmd, err := commands.NewMarkNotificationsReadCommand(userID, ids)

		require.NoError(t, err)
		assert.Equal(t, userID, cmd.UserID())
		assert.Equal(t, ids, cmd.NotificationIDs())
	})

	t.Run("empty ids", func(t *testing.T) {
		_, err := commands.NewMarkNotificationsReadCommand(userID, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := commands.NewMarkNotificationsReadCommand(kernel.UUID{}, []kernel.UUID{kernel.NewUUID()})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMarkNotificationsReadCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	store := new(MockNotificationAckStore)
	userID := kernel.NewUUID()
	ids := []kernel.UUID{kernel.NewUUID()}
	cmd, err := commands.NewMarkNotificationsReadCommand(userID, ids)
	require.NoError(t, err)

	store.On("MarkRead", ctx, userID, ids).Return(nil).Once()

	handler := commands.NewMarkNotificationsReadCommandHandler(store)
	require.NoError(t, handler.Handle(ctx, cmd))
	store.AssertExpectations(t)

	t.Run("store error is returned", func(t *testing.T) {
		failing := new(MockNotificationAckStore)
		failing.On("MarkRead", ctx, userID, ids).Return(errors.New("redis unavailable")).Once()

		err := commands.NewMarkNotificationsReadCommandHandler(failing).Handle(ctx, cmd)

		require.EqualError(t, err, "redis unavailable")
	})

	t.Run("unconstructed command", func(t *testing.T) {
		err := handler.Handle(ctx, commands.MarkNotificationsReadCommand{})

		require.ErrorIs(t, err, commands.ErrMarkNotificationsReadCommandIsNotConstructed)
	})
}
