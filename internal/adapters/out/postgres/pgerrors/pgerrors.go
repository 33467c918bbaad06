// Package pgerrors maps PostgreSQL failures onto the error taxonomy of the
// lifecycle domain.
package pgerrors

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/lifecycle"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes raised when concurrent transactions step on each other.
const (
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
	UniqueViolation      = "23505"
)

// IsConflict reports whether err was raised because a concurrent transaction
// won a race against the current one.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == SerializationFailure || pgErr.Code == DeadlockDetected
}

// IsUniqueViolation reports whether err was raised by a unique constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// Translate wraps conflicts so that errors.Is(err, lifecycle.ErrCommitConflict)
// holds. Any other error is returned unchanged.
func Translate(err error) error {
	if err == nil || !IsConflict(err) {
		return err
	}
	return fmt.Errorf("%w: %w", lifecycle.ErrCommitConflict, err)
}
