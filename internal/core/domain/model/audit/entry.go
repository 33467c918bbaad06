// Package audit holds the append-only audit trail written next to every
// state-changing operation on a product.
package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// Action is the persisted audit action code.
type Action string

const (
	ActionProductCreate Action = "PRODUCT_CREATE"
	ActionStatusChange  Action = "STATUS_CHANGE"
)

// EntityProduct is the entity type recorded for product entries.
const EntityProduct = "Product"

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry answers who did what to which entity, and when. Details is a free
// JSON document describing the change.
type Entry struct {
	id         kernel.UUID
	tenantID   kernel.UUID
	userID     kernel.UUID
	action     Action
	entityType string
	entityID   kernel.UUID
	details    json.RawMessage
	createdAt  time.Time

	isConstructed bool
}

// NewEntry builds an audit entry. details is marshalled to JSON; nil yields "{}".
func NewEntry(
	tenantID kernel.UUID,
	userID kernel.UUID,
	action Action,
	entityType string,
	entityID kernel.UUID,
	details any,
	at time.Time,
) (*Entry, error) {
	if action != ActionProductCreate && action != ActionStatusChange {
		return nil, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unknown audit action %q", action))
	}
	if entityType == "" {
		return nil, errs.NewValueIsRequiredError("entityType")
	}
	if err := errors.Join(tenantID.Validate(), userID.Validate(), entityID.Validate()); err != nil {
		return nil, err
	}

	raw := json.RawMessage("{}")
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("details", err)
		}
		raw = b
	}

	return &Entry{
		id:            kernel.NewUUID(),
		tenantID:      tenantID,
		userID:        userID,
		action:        action,
		entityType:    entityType,
		entityID:      entityID,
		details:       raw,
		createdAt:     at.UTC(),
		isConstructed: true,
	}, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID          { return e.id }
func (e *Entry) TenantID() kernel.UUID    { return e.tenantID }
func (e *Entry) UserID() kernel.UUID      { return e.userID }
func (e *Entry) Action() Action           { return e.action }
func (e *Entry) EntityType() string       { return e.entityType }
func (e *Entry) EntityID() kernel.UUID    { return e.entityID }
func (e *Entry) Details() json.RawMessage { return e.details }
func (e *Entry) CreatedAt() time.Time     { return e.createdAt }
