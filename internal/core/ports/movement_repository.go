package ports

import (
	"context"

	"warehouse/internal/core/domain/model/product"
)

// MovementRepository appends to the movement ledger. Rows are never updated.
type MovementRepository interface {
	Add(ctx context.Context, movement *product.Movement) error
}
