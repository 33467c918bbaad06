package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrGetProductHistoryQueryIsNotConstructed = errors.New(
	"GetProductHistoryQuery must be created via NewGetProductHistoryQuery constructor",
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// GetProductHistoryQuery lists the movements of a product, newest first.
//
// Example:
//
//	limit := 20
//	query, err := NewGetProductHistoryQuery(productID, &limit, []lifecycle.Status{lifecycle.Rejected})
//	if err != nil {
//	    return err
//	}
//	history, err := handler.Handle(ctx, query)
type GetProductHistoryQuery struct {
	productID kernel.UUID
	limit     int
	statuses  []lifecycle.Status

	guard guard.ConstructorGuard
}

// NewGetProductHistoryQuery builds the query. A nil limit means DefaultHistoryLimit;
// statuses, when given, keep only movements into one of them.
func NewGetProductHistoryQuery(
	productID kernel.UUID,
	limit *int,
	statuses []lifecycle.Status,
) (GetProductHistoryQuery, error) {
	q := GetProductHistoryQuery{
		limit: DefaultHistoryLimit,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setProductID(productID),
		q.setLimit(limit),
		q.setStatuses(statuses),
	); err != nil {
		return GetProductHistoryQuery{}, err
	}

	return q, nil
}

func (q GetProductHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetProductHistoryQueryIsNotConstructed)
}

func (q GetProductHistoryQuery) ProductID() kernel.UUID       { return q.productID }
func (q GetProductHistoryQuery) Limit() int                   { return q.limit }
func (q GetProductHistoryQuery) Statuses() []lifecycle.Status { return q.statuses }

func (q *GetProductHistoryQuery) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.productID = id
	return nil
}

func (q *GetProductHistoryQuery) setLimit(limit *int) error {
	if limit == nil {
		return nil
	}
	if *limit < 1 || *limit > MaxHistoryLimit {
		return errs.NewValueIsOutOfRangeError("limit", *limit, 1, MaxHistoryLimit)
	}
	q.limit = *limit
	return nil
}

func (q *GetProductHistoryQuery) setStatuses(statuses []lifecycle.Status) error {
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	q.statuses = append([]lifecycle.Status(nil), statuses...)
	return nil
}

// HistoryActor is the public identity of the user who made a movement. Name and
// Email are nil when the account no longer exists.
type HistoryActor struct {
	ID    kernel.UUID
	Name  *string
	Email *string
}

// GetProductHistoryQueryResponse is one movement of the ledger.
type GetProductHistoryQueryResponse struct {
	ID             kernel.UUID
	PreviousStatus *lifecycle.Status
	NewStatus      lifecycle.Status
	Quantity       int
	Location       *string
	Reason         string
	User           HistoryActor
	CreatedAt      time.Time
}
