package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeProductStatusCommand_ValidInput(t *testing.T) {
	productID := kernel.NewUUID()
	actor := services.Actor{UserID: kernel.NewUUID(), Capabilities: lifecycle.RoleAdmin.Capabilities()}
	expected := lifecycle.InAnalysis
	payload := map[string]any{"reason": "ok"}

	cmd, err := commands.NewChangeProductStatusCommand(productID, lifecycle.Approved, actor, payload, &expected)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, lifecycle.Approved, cmd.To())
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, lifecycle.InAnalysis, *cmd.ExpectedStatus())

	payload["reason"] = "changed later"
	assert.Equal(t, "ok", cmd.Payload()["reason"], "payload is copied")
}

func TestNewChangeProductStatusCommand_InvalidInput(t *testing.T) {
	unknown := lifecycle.Unknown

	_, err := commands.NewChangeProductStatusCommand(kernel.UUID{}, lifecycle.Unknown, services.Actor{}, nil, &unknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestChangeProductStatusCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.ChangeProductStatusCommand{}

	assert.ErrorIs(t, cmd.Validate(), commands.ErrChangeProductStatusCommandIsNotConstructed)
}
