package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrChangeProductStatusCommandIsNotConstructed = errors.New(
	"ChangeProductStatusCommand must be created via NewChangeProductStatusCommand constructor",
)

// ChangeProductStatusCommand asks to move one product to a new lifecycle status.
//
// ExpectedStatus is optional: when set, it is the status the caller last saw,
// and the command fails with a commit conflict if the product has moved since.
//
// Example:
//
//	cmd, err := NewChangeProductStatusCommand(productID, lifecycle.Rejected, actor,
//	    map[string]any{"reason": "damaged packaging"}, nil)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type ChangeProductStatusCommand struct { //nolint:recvcheck //using for validation
	productID      kernel.UUID
	to             lifecycle.Status
	actor          services.Actor
	payload        map[string]any
	expectedStatus *lifecycle.Status

	guard guard.ConstructorGuard
}

// NewChangeProductStatusCommand validates the request envelope. Whether the
// transition itself is allowed is decided by the handler.
func NewChangeProductStatusCommand(
	productID kernel.UUID,
	to lifecycle.Status,
	actor services.Actor,
	payload map[string]any,
	expectedStatus *lifecycle.Status,
) (ChangeProductStatusCommand, error) {
	cmd := ChangeProductStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setTo(to),
		cmd.setActor(actor),
		cmd.setExpectedStatus(expectedStatus),
	); err != nil {
		return ChangeProductStatusCommand{}, err
	}

	cmd.payload = make(map[string]any, len(payload))
	for k, v := range payload {
		cmd.payload[k] = v
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeProductStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductStatusCommandIsNotConstructed)
}

func (c ChangeProductStatusCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c ChangeProductStatusCommand) To() lifecycle.Status {
	return c.to
}

func (c ChangeProductStatusCommand) Actor() services.Actor {
	return c.actor
}

func (c ChangeProductStatusCommand) Payload() map[string]any {
	return c.payload
}

func (c ChangeProductStatusCommand) ExpectedStatus() *lifecycle.Status {
	return c.expectedStatus
}

func (c *ChangeProductStatusCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *ChangeProductStatusCommand) setTo(to lifecycle.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	c.to = to
	return nil
}

func (c *ChangeProductStatusCommand) setActor(actor services.Actor) error {
	if err := actor.UserID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actor = actor
	return nil
}

func (c *ChangeProductStatusCommand) setExpectedStatus(expected *lifecycle.Status) error {
	if expected == nil {
		return nil
	}
	if err := expected.Validate(); err != nil {
		return err
	}
	s := *expected
	c.expectedStatus = &s
	return nil
}
