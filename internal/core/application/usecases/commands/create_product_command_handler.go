package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
)

// CreateProductCommandHandler registers products in RECEIVED status. The
// product, its registration movement and a PRODUCT_CREATE audit entry are
// written in one transaction.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	now        func() time.Time
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle registers the product and returns it.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.now()
	p, err := product.NewProduct(kernel.NewUUID(), cmd.TenantID(), cmd.SKU(), cmd.Name(), cmd.Quantity(),
		cmd.Location(), now)
	if err != nil {
		return nil, err
	}

	movement, err := product.NewMovement(p, nil, product.RegistrationReason, cmd.UserID(), now)
	if err != nil {
		return nil, err
	}

	entry, err := audit.NewEntry(cmd.TenantID(), cmd.UserID(), audit.ActionProductCreate, audit.EntityProduct, p.ID(),
		map[string]any{
			"sku":      p.SKU(),
			"name":     p.Name(),
			"quantity": p.Quantity(),
		}, now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}
	if err = uow.MovementRepository().Add(ctx, movement); err != nil {
		return nil, err
	}
	if err = uow.AuditLogRepository().Add(ctx, entry); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
