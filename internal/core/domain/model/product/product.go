package product

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/pkg/errs"
)

const (
	// SKUMaxLength bounds the stock keeping unit code.
	SKUMaxLength = 64
	// NameMaxLength bounds the display name.
	NameMaxLength = 255
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created through
	// NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is the aggregate root of the warehouse. It owns the current lifecycle
// status together with the facts that move with it: where the product is and
// when it last moved.
//
// Product follows these invariants:
//   - Must have a valid identifier and tenant
//   - SKU and name are non-blank and bounded in length
//   - Quantity is never negative
//   - Status is a member of lifecycle.Status and only changes along a legal edge
//   - shippedAt, once set, is never cleared
type Product struct {
	id       kernel.UUID
	tenantID kernel.UUID
	sku      string
	name     string
	quantity int
	status   lifecycle.Status

	// location is nil until the product is first placed somewhere
	location *kernel.Location

	lastMovedAt *time.Time
	shippedAt   *time.Time
	createdAt   time.Time

	isConstructed bool
}

// NewProduct registers a product in RECEIVED status.
//
// Example:
//
//	dock, _ := kernel.NewLocation("DOCK-1")
//	p, err := product.NewProduct(kernel.NewUUID(), tenantID, "SKU-001", "Cadeira", 4, &dock, time.Now())
//	if err != nil {
//	    return err
//	}
func NewProduct(
	id kernel.UUID,
	tenantID kernel.UUID,
	sku string,
	name string,
	quantity int,
	location *kernel.Location,
	now time.Time,
) (*Product, error) {
	p := &Product{
		status:        lifecycle.Received,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTenantID(tenantID),
		p.setSKU(sku),
		p.setName(name),
		p.setQuantity(quantity),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rehydrates a product from storage. The same field rules as
// NewProduct apply, plus the stored status must be a known one.
func RestoreProduct(
	id kernel.UUID,
	tenantID kernel.UUID,
	sku string,
	name string,
	quantity int,
	status lifecycle.Status,
	location *kernel.Location,
	lastMovedAt *time.Time,
	shippedAt *time.Time,
	createdAt time.Time,
) (*Product, error) {
	p := &Product{
		lastMovedAt:   lastMovedAt,
		shippedAt:     shippedAt,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTenantID(tenantID),
		p.setSKU(sku),
		p.setName(name),
		p.setQuantity(quantity),
		p.setStatus(status),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) TenantID() kernel.UUID {
	return p.tenantID
}

func (p *Product) SKU() string {
	return p.sku
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) Status() lifecycle.Status {
	return p.status
}

// Location returns the current location, or nil when none was recorded yet.
func (p *Product) Location() *kernel.Location {
	return p.location
}

func (p *Product) LastMovedAt() *time.Time {
	return p.lastMovedAt
}

// ShippedAt is set when the product reaches DELIVERED or ELIMINATED.
func (p *Product) ShippedAt() *time.Time {
	return p.shippedAt
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// ApplyTransition moves the product to status to.
//
// The edge must be legal in engine's graph, lifecycle.Default() when engine is
// nil; authorization and field requirements are checked by the caller before
// this point. A nil location keeps the current one. Reaching DELIVERED or
// ELIMINATED stamps shippedAt.
func (p *Product) ApplyTransition(
	engine *lifecycle.Engine,
	to lifecycle.Status,
	location *kernel.Location,
	at time.Time,
) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if engine == nil {
		engine = lifecycle.Default()
	}
	if p.status == to {
		return lifecycle.NewNoOpTransitionError(to)
	}
	if !engine.IsLegal(p.status, to) {
		return lifecycle.NewIllegalTransitionError(p.status, to, engine.NextPossibleStates(p.status))
	}

	if location != nil {
		if err := p.setLocation(location); err != nil {
			return err
		}
	}

	at = at.UTC()
	p.status = to
	p.lastMovedAt = &at
	if to == lifecycle.Delivered || to == lifecycle.Eliminated {
		p.shippedAt = &at
	}

	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tenantId", err)
	}
	p.tenantID = id
	return nil
}

func (p *Product) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if n := utf8.RuneCountInString(sku); n > SKUMaxLength {
		return errs.NewValueIsOutOfRangeError("sku length", n, 1, SKUMaxLength)
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > NameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, NameMaxLength)
	}
	p.name = name
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	p.quantity = quantity
	return nil
}

func (p *Product) setStatus(status lifecycle.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Product) setLocation(location *kernel.Location) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	p.location = &loc
	return nil
}
