package pgerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"warehouse/internal/adapters/out/postgres/pgerrors"
	"warehouse/internal/core/domain/model/lifecycle"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		conflict bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgerrors.SerializationFailure}, true},
		{"deadlock", &pgconn.PgError{Code: pgerrors.DeadlockDetected}, true},
		{"wrapped deadlock", fmt.Errorf("commit: %w", &pgconn.PgError{Code: pgerrors.DeadlockDetected}), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("connection refused"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			translated := pgerrors.Translate(tc.err)

			assert.Equal(t, tc.conflict, pgerrors.IsConflict(tc.err))
			assert.Equal(t, tc.conflict, errors.Is(translated, lifecycle.ErrCommitConflict))
			require.ErrorIs(t, translated, tc.err)
		})
	}

	assert.NoError(t, pgerrors.Translate(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, pgerrors.IsUniqueViolation(&pgconn.PgError{Code: pgerrors.UniqueViolation}))
	assert.False(t, pgerrors.IsUniqueViolation(&pgconn.PgError{Code: pgerrors.DeadlockDetected}))
	assert.False(t, pgerrors.IsUniqueViolation(errors.New("boom")))
}
