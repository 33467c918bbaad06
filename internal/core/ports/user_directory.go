package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
)

// User is the public identity of an operator as the user directory knows it.
type User struct {
	ID       kernel.UUID
	TenantID kernel.UUID
	Name     string
	Email    string
	Role     lifecycle.Role
}

// UserDirectory resolves users. Accounts themselves are managed elsewhere.
type UserDirectory interface {
	// Get returns errs.ObjectNotFoundError for unknown users.
	Get(ctx context.Context, id kernel.UUID) (User, error)
}
