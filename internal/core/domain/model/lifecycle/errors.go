package lifecycle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoOpTransition        = errors.New("already in this status")
	ErrIllegalTransition     = errors.New("transition not permitted")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrCommitConflict        = errors.New("commit conflict")
	ErrPersistenceFailure    = errors.New("persistence failure")
)

// NoOpTransitionError reports a request to move a product to the status it already has.
type NoOpTransitionError struct {
	Status Status
}

func NewNoOpTransitionError(status Status) *NoOpTransitionError {
	return &NoOpTransitionError{Status: status}
}

func (e *NoOpTransitionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNoOpTransition, e.Status)
}

func (e *NoOpTransitionError) Unwrap() error {
	return ErrNoOpTransition
}

// IllegalTransitionError reports a (from, to) pair that is not an edge.
// Allowed carries the legal next states as remediation data.
type IllegalTransitionError struct {
	From    Status
	To      Status
	Allowed []Status
}

func NewIllegalTransitionError(from, to Status, allowed []Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to, Allowed: allowed}
}

func (e *IllegalTransitionError) Error() string {
	names := make([]string, 0, len(e.Allowed))
	for _, s := range e.Allowed {
		names = append(names, s.String())
	}
	return fmt.Sprintf("%s from %s to %s (allowed: [%s])",
		ErrIllegalTransition, e.From, e.To, strings.Join(names, ", "))
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// PermissionDeniedError reports a legal edge the actor may not take.
type PermissionDeniedError struct {
	From   Status
	To     Status
	Reason string
}

func NewPermissionDeniedError(from, to Status, reason string) *PermissionDeniedError {
	return &PermissionDeniedError{From: from, To: to, Reason: reason}
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPermissionDenied, e.Reason)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// MissingRequiredFieldsError lists exactly the evidence fields that were not supplied.
type MissingRequiredFieldsError struct {
	Fields []string
}

func NewMissingRequiredFieldsError(fields []string) *MissingRequiredFieldsError {
	return &MissingRequiredFieldsError{Fields: fields}
}

func (e *MissingRequiredFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredFields, strings.Join(e.Fields, ", "))
}

func (e *MissingRequiredFieldsError) Unwrap() error {
	return ErrMissingRequiredFields
}

// CommitConflictError reports that the stored status moved away from the
// value validation was based on. Retrying with freshly read state may succeed.
type CommitConflictError struct {
	ProductID string
	Expected  Status
}

func NewCommitConflictError(productID string, expected Status) *CommitConflictError {
	return &CommitConflictError{ProductID: productID, Expected: expected}
}

func (e *CommitConflictError) Error() string {
	return fmt.Sprintf("%s: product %s is no longer in status %s", ErrCommitConflict, e.ProductID, e.Expected)
}

func (e *CommitConflictError) Unwrap() error {
	return ErrCommitConflict
}

// PersistenceFailureError wraps an infrastructure failure during the atomic commit.
type PersistenceFailureError struct {
	Cause error
}

func NewPersistenceFailureError(cause error) *PersistenceFailureError {
	return &PersistenceFailureError{Cause: cause}
}

func (e *PersistenceFailureError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPersistenceFailure, e.Cause)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is/As.
func (e *PersistenceFailureError) Unwrap() []error {
	return []error{ErrPersistenceFailure, e.Cause}
}

// IsRetryable reports whether retrying with fresh state may change the outcome.
// Only commit conflicts qualify; validation errors are deterministic.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrCommitConflict)
}
