package product

import (
	"errors"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/pkg/errs"
)

// RegistrationReason is recorded on the first movement of every product.
const RegistrationReason = "Product received"

var ErrMovementIsNotConstructed = errors.New("Movement must be created via NewMovement constructor")

// Movement is one row of the append-only ledger of status changes. It
// snapshots the product quantity and location at the moment of the change.
type Movement struct {
	id             kernel.UUID
	productID      kernel.UUID
	tenantID       kernel.UUID
	previousStatus *lifecycle.Status
	newStatus      lifecycle.Status
	quantity       int
	location       *kernel.Location
	reason         string
	userID         kernel.UUID
	createdAt      time.Time

	isConstructed bool
}

// NewMovement records a change of p to its current status. previous is nil
// for the registration movement.
func NewMovement(
	p *Product,
	previous *lifecycle.Status,
	reason string,
	userID kernel.UUID,
	at time.Time,
) (*Movement, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if previous != nil {
		if err := previous.Validate(); err != nil {
			return nil, err
		}
		prev := *previous
		previous = &prev
	}

	return &Movement{
		id:             kernel.NewUUID(),
		productID:      p.ID(),
		tenantID:       p.TenantID(),
		previousStatus: previous,
		newStatus:      p.Status(),
		quantity:       p.Quantity(),
		location:       p.Location(),
		reason:         reason,
		userID:         userID,
		createdAt:      at.UTC(),
		isConstructed:  true,
	}, nil
}

func (m *Movement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMovementIsNotConstructed
	}
	return nil
}

func (m *Movement) ID() kernel.UUID                   { return m.id }
func (m *Movement) ProductID() kernel.UUID            { return m.productID }
func (m *Movement) TenantID() kernel.UUID             { return m.tenantID }
func (m *Movement) PreviousStatus() *lifecycle.Status { return m.previousStatus }
func (m *Movement) NewStatus() lifecycle.Status       { return m.newStatus }
func (m *Movement) Quantity() int                     { return m.quantity }
func (m *Movement) Location() *kernel.Location        { return m.location }
func (m *Movement) Reason() string                    { return m.reason }
func (m *Movement) UserID() kernel.UUID               { return m.userID }
func (m *Movement) CreatedAt() time.Time              { return m.createdAt }
