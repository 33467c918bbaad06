package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery reads one product by id.
//
// Example:
//
//	query, err := NewGetProductQuery(productID)
//	if err != nil {
//	    return err
//	}
//	p, err := NewGetProductQueryHandler(db).Handle(ctx, query)
type GetProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}

	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}

// GetProductQueryResponse is the read model of a product.
type GetProductQueryResponse struct {
	ID          kernel.UUID
	TenantID    kernel.UUID
	SKU         string
	Name        string
	Quantity    int
	Status      lifecycle.Status
	Location    *string
	LastMovedAt *time.Time
	ShippedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
