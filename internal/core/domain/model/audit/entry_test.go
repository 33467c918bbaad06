package audit_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	tenant, user, entity := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("should marshal details", func(t *testing.T) {
		e, err := audit.NewEntry(tenant, user, audit.ActionStatusChange, audit.EntityProduct, entity,
			map[string]string{"from": "RECEIVED", "to": "IN_ANALYSIS"}, at)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, audit.ActionStatusChange, e.Action())
		assert.Equal(t, entity, e.EntityID())
		assert.JSONEq(t, `{"from":"RECEIVED","to":"IN_ANALYSIS"}`, string(e.Details()))
		assert.Equal(t, at, e.CreatedAt())
	})

	t.Run("nil details become an empty object", func(t *testing.T) {
		e, err := audit.NewEntry(tenant, user, audit.ActionProductCreate, audit.EntityProduct, entity, nil, at)

		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(e.Details()))
	})

	t.Run("should reject unknown actions", func(t *testing.T) {
		_, err := audit.NewEntry(tenant, user, audit.Action("DELETE"), audit.EntityProduct, entity, nil, at)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject missing ids", func(t *testing.T) {
		_, err := audit.NewEntry(tenant, kernel.UUID{}, audit.ActionStatusChange, audit.EntityProduct, entity, nil, at)

		assert.Error(t, err)
	})
}
