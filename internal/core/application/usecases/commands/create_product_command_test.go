package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand(t *testing.T) {
	tenantID := kernel.NewUUID()
	userID := kernel.NewUUID()

	t.Run("trims text and parses location", func(t *testing.T) {
		cmd, err := commands.NewCreateProductCommand(tenantID, userID, "  SKU-9 ", " Mesa ", 2, "DOCK-1")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "SKU-9", cmd.SKU())
		assert.Equal(t, "Mesa", cmd.Name())
		assert.Equal(t, 2, cmd.Quantity())
		require.NotNil(t, cmd.Location())
		assert.Equal(t, "DOCK-1", cmd.Location().String())
	})

	t.Run("location is optional", func(t *testing.T) {
		cmd, err := commands.NewCreateProductCommand(tenantID, userID, "SKU-9", "Mesa", 0, "   ")

		require.NoError(t, err)
		assert.Nil(t, cmd.Location())
	})

	t.Run("tenant and user are required", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand(kernel.UUID{}, kernel.UUID{}, "SKU-9", "Mesa", 1, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "tenantId")
		assert.Contains(t, err.Error(), "userId")
	})
}

func TestCreateProductCommand_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, commands.CreateProductCommand{}.Validate(), commands.ErrCreateProductCommandIsNotConstructed)
}
