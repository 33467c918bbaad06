package lifecycle_test

import (
	"errors"
	"testing"

	"warehouse/internal/core/domain/model/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_Messages(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "no-op",
			err:      lifecycle.NewNoOpTransitionError(lifecycle.Received),
			sentinel: lifecycle.ErrNoOpTransition,
			message:  "already in this status: RECEIVED",
		},
		{
			name: "illegal",
			err: lifecycle.NewIllegalTransitionError(lifecycle.Received, lifecycle.Approved,
				[]lifecycle.Status{lifecycle.InAnalysis, lifecycle.Cancelled}),
			sentinel: lifecycle.ErrIllegalTransition,
			message:  "transition not permitted from RECEIVED to APPROVED (allowed: [IN_ANALYSIS, CANCELLED])",
		},
		{
			name:     "permission",
			err:      lifecycle.NewPermissionDeniedError(lifecycle.InAnalysis, lifecycle.Approved, "requires administrator role"),
			sentinel: lifecycle.ErrPermissionDenied,
			message:  "permission denied: requires administrator role",
		},
		{
			name:     "missing fields",
			err:      lifecycle.NewMissingRequiredFieldsError([]string{"location", "reason"}),
			sentinel: lifecycle.ErrMissingRequiredFields,
			message:  "missing required fields: location, reason",
		},
		{
			name:     "conflict",
			err:      lifecycle.NewCommitConflictError("p-1", lifecycle.InStorage),
			sentinel: lifecycle.ErrCommitConflict,
			message:  "commit conflict: product p-1 is no longer in status IN_STORAGE",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}

func TestPersistenceFailureError(t *testing.T) {
	cause := errors.New("connection reset")
	err := lifecycle.NewPersistenceFailureError(cause)

	assert.Equal(t, "persistence failure: connection reset", err.Error())
	require.ErrorIs(t, err, lifecycle.ErrPersistenceFailure)
	require.ErrorIs(t, err, cause)
	assert.False(t, lifecycle.IsRetryable(err))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, lifecycle.IsRetryable(lifecycle.NewCommitConflictError("p", lifecycle.Received)))
	assert.False(t, lifecycle.IsRetryable(lifecycle.NewNoOpTransitionError(lifecycle.Received)))
	assert.False(t, lifecycle.IsRetryable(nil))
}
