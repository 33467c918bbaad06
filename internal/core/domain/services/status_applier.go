package services

import (
	"fmt"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/core/domain/model/outbox"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
)

// Actor is the user a transition is performed on behalf of. Capabilities are
// resolved from the role once, before the request reaches the applier.
type Actor struct {
	UserID       kernel.UUID
	TenantID     kernel.UUID
	Capabilities lifecycle.Capabilities
}

// TransitionRequest asks for product p to move to To. Payload carries the
// free-form fields of the request; "reason" and "location" are interpreted.
type TransitionRequest struct {
	To      lifecycle.Status
	Actor   Actor
	Payload map[string]any
}

// StatusChange is everything a successful transition produced. Nothing in it
// has been persisted yet.
type StatusChange struct {
	Product  *product.Product
	From     lifecycle.Status
	To       lifecycle.Status
	Movement *product.Movement
	Audit    *audit.Entry
	Outbox   *outbox.Message
}

// StatusApplier is the domain service that decides whether a status change
// may happen and, if so, applies it to the in-memory aggregate.
//
// Checks run in a fixed order and the first failure wins:
//  1. no-op (target equals current status)
//  2. legality against the lifecycle graph
//  3. authorization against the edge policy
//  4. required payload fields
//
// Example:
//
//	applier := services.NewStatusApplier(lifecycle.Default())
//	change, err := applier.Apply(p, services.TransitionRequest{
//	    To:      lifecycle.Rejected,
//	    Actor:   actor,
//	    Payload: map[string]any{"reason": "damaged on arrival"},
//	}, time.Now())
type StatusApplier struct {
	engine *lifecycle.Engine
}

// NewStatusApplier creates an applier over engine. A nil engine means lifecycle.Default().
func NewStatusApplier(engine *lifecycle.Engine) StatusApplier {
	if engine == nil {
		engine = lifecycle.Default()
	}
	return StatusApplier{engine: engine}
}

// Apply validates req against the current status of p and mutates p on success.
func (a StatusApplier) Apply(p *product.Product, req TransitionRequest, now time.Time) (StatusChange, error) {
	if err := p.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := req.Actor.UserID.Validate(); err != nil {
		return StatusChange{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	from, to := p.Status(), req.To

	if from == to {
		return StatusChange{}, lifecycle.NewNoOpTransitionError(from)
	}

	if !a.engine.IsLegal(from, to) {
		return StatusChange{}, lifecycle.NewIllegalTransitionError(from, to, a.engine.NextPossibleStates(from))
	}

	if decision := a.engine.Authorize(from, to, req.Actor.Capabilities); !decision.Allowed {
		return StatusChange{}, lifecycle.NewPermissionDeniedError(from, to, decision.Reason)
	}

	if result := a.engine.ValidateFields(from, to, req.Payload); !result.Valid() {
		return StatusChange{}, lifecycle.NewMissingRequiredFieldsError(result.MissingFields)
	}

	var location *kernel.Location
	if code, ok := stringField(req.Payload, lifecycle.FieldLocation); ok {
		loc, err := kernel.NewLocation(code)
		if err != nil {
			return StatusChange{}, err
		}
		location = &loc
	}

	reason, ok := stringField(req.Payload, lifecycle.FieldReason)
	if !ok {
		reason = DefaultReason(from, to)
	}

	if err := p.ApplyTransition(a.engine, to, location, now); err != nil {
		return StatusChange{}, err
	}

	movement, err := product.NewMovement(p, &from, reason, req.Actor.UserID, now)
	if err != nil {
		return StatusChange{}, err
	}

	entry, err := audit.NewEntry(p.TenantID(), req.Actor.UserID, audit.ActionStatusChange, audit.EntityProduct, p.ID(),
		map[string]string{
			"from":   from.String(),
			"to":     to.String(),
			"reason": reason,
		}, now)
	if err != nil {
		return StatusChange{}, err
	}

	message, err := outbox.NewMessage(product.EventStatusChanged, p.ID(),
		product.NewStatusChangedEvent(p, from, movement), now)
	if err != nil {
		return StatusChange{}, err
	}

	return StatusChange{
		Product:  p,
		From:     from,
		To:       to,
		Movement: movement,
		Audit:    entry,
		Outbox:   message,
	}, nil
}

// DefaultReason is the movement reason recorded when the caller gave none.
func DefaultReason(from, to lifecycle.Status) string {
	return fmt.Sprintf("%s → %s", from, to)
}

// stringField returns the trimmed value of a textual payload field.
func stringField(payload map[string]any, key string) (string, bool) {
	var s string
	switch v := payload[key].(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return "", false
		}
		s = *v
	default:
		return "", false
	}

	s = strings.TrimSpace(s)
	return s, s != ""
}
