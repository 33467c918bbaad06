package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand registers a product arriving at the warehouse.
//
// Example:
//
//	cmd, err := NewCreateProductCommand(tenantID, userID, "SKU-001", "Cadeira", 4, "DOCK-1")
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//	p, err := handler.Handle(ctx, cmd)
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	userID   kernel.UUID
	sku      string
	name     string
	quantity int
	location *kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateProductCommand validates the registration data. location may be empty.
func NewCreateProductCommand(
	tenantID kernel.UUID,
	userID kernel.UUID,
	sku string,
	name string,
	quantity int,
	location string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		sku:      strings.TrimSpace(sku),
		name:     strings.TrimSpace(name),
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setUserID(userID),
		cmd.setLocation(location),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) TenantID() kernel.UUID      { return c.tenantID }
func (c CreateProductCommand) UserID() kernel.UUID        { return c.userID }
func (c CreateProductCommand) SKU() string                { return c.sku }
func (c CreateProductCommand) Name() string               { return c.name }
func (c CreateProductCommand) Quantity() int              { return c.quantity }
func (c CreateProductCommand) Location() *kernel.Location { return c.location }

func (c *CreateProductCommand) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tenantId", err)
	}
	c.tenantID = id
	return nil
}

func (c *CreateProductCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.userID = id
	return nil
}

func (c *CreateProductCommand) setLocation(code string) error {
	if strings.TrimSpace(code) == "" {
		return nil
	}
	loc, err := kernel.NewLocation(code)
	if err != nil {
		return err
	}
	c.location = &loc
	return nil
}
