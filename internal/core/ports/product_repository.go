package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a newly registered product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by identifier.
	// Returns errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// UpdateStatus writes the lifecycle fields of aggregate, but only if the
	// stored status still equals expected. A lost race is reported as
	// lifecycle.CommitConflictError.
	UpdateStatus(ctx context.Context, aggregate *product.Product, expected lifecycle.Status) error
}
