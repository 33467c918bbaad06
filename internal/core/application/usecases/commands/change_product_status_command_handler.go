package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
)

// ChangeProductStatusResult is the outcome of a successful status change.
type ChangeProductStatusResult struct {
	Product *product.Product
	From    lifecycle.Status
	To      lifecycle.Status
}

// ChangeProductStatusCommandHandler applies a status change and persists its
// effects in one transaction: the product row, a movement, an audit entry and
// an outbox message. Either all four are written or none is.
//
// The product row is updated with a compare-and-swap on its previous status,
// so two concurrent requests against the same product never both succeed; the
// loser gets a lifecycle.CommitConflictError and may retry. Retrying is left
// to the caller.
//
// Example:
//
//	handler := NewChangeProductStatusCommandHandler(uowFactory, services.NewStatusApplier(nil), logger)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, lifecycle.ErrCommitConflict):
//	    // reload and ask the user again
//	case err != nil:
//	    return err
//	}
type ChangeProductStatusCommandHandler struct {
	uowFactory ProductUoWFactory
	applier    services.StatusApplier
	now        func() time.Time
	logger     *slog.Logger
}

// NewChangeProductStatusCommandHandler creates the handler.
func NewChangeProductStatusCommandHandler(
	uowFactory ProductUoWFactory,
	applier services.StatusApplier,
	logger *slog.Logger,
) ChangeProductStatusCommandHandler {
	return ChangeProductStatusCommandHandler{
		uowFactory: uowFactory,
		applier:    applier,
		now:        time.Now,
		logger:     logger.With("component", "change_product_status"),
	}
}

// WithClock returns a copy of the handler that reads time from now.
func (h ChangeProductStatusCommandHandler) WithClock(now func() time.Time) ChangeProductStatusCommandHandler {
	h.now = now
	return h
}

// Handle runs the status change. Validation failures surface as the matching
// lifecycle error; storage failures as CommitConflictError or
// PersistenceFailureError.
func (h ChangeProductStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeProductStatusCommand,
) (ChangeProductStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeProductStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeProductStatusResult{}, lifecycle.NewPersistenceFailureError(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ChangeProductStatusResult{}, err
		}
		return ChangeProductStatusResult{}, storageError(err, cmd.ProductID(), lifecycle.Unknown)
	}

	// A resubmitted change is a no-op whatever status the caller last saw.
	from := p.Status()
	if cmd.To() == from {
		return ChangeProductStatusResult{}, lifecycle.NewNoOpTransitionError(from)
	}
	if expected := cmd.ExpectedStatus(); expected != nil && *expected != from {
		return ChangeProductStatusResult{}, lifecycle.NewCommitConflictError(cmd.ProductID().String(), *expected)
	}

	change, err := h.applier.Apply(p, services.TransitionRequest{
		To:      cmd.To(),
		Actor:   cmd.Actor(),
		Payload: cmd.Payload(),
	}, h.now())
	if err != nil {
		return ChangeProductStatusResult{}, err
	}

	if err = productRepo.UpdateStatus(ctx, p, from); err != nil {
		return ChangeProductStatusResult{}, storageError(err, p.ID(), from)
	}
	if err = uow.MovementRepository().Add(ctx, change.Movement); err != nil {
		return ChangeProductStatusResult{}, storageError(err, p.ID(), from)
	}
	if err = uow.AuditLogRepository().Add(ctx, change.Audit); err != nil {
		return ChangeProductStatusResult{}, storageError(err, p.ID(), from)
	}
	if err = uow.OutboxRepository().Add(ctx, change.Outbox); err != nil {
		return ChangeProductStatusResult{}, storageError(err, p.ID(), from)
	}
	if err = uow.Commit(ctx); err != nil {
		return ChangeProductStatusResult{}, storageError(err, p.ID(), from)
	}

	h.logger.InfoContext(ctx, "product status changed",
		"productId", p.ID().String(),
		"from", from.String(),
		"to", change.To.String(),
		"userId", cmd.Actor().UserID.String(),
	)

	return ChangeProductStatusResult{Product: p, From: from, To: change.To}, nil
}

// storageError keeps commit conflicts retryable and folds everything else into
// a persistence failure.
func storageError(err error, productID kernel.UUID, expected lifecycle.Status) error {
	var conflict *lifecycle.CommitConflictError
	if errors.As(err, &conflict) {
		return conflict
	}
	if errors.Is(err, lifecycle.ErrCommitConflict) {
		return lifecycle.NewCommitConflictError(productID.String(), expected)
	}
	return lifecycle.NewPersistenceFailureError(err)
}
