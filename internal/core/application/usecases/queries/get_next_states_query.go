package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/pkg/guard"
)

var ErrGetNextStatesQueryIsNotConstructed = errors.New(
	"GetNextStatesQuery must be created via NewGetNextStatesQuery constructor",
)

// GetNextStatesQuery asks which statuses a product may move to next. It reflects
// the graph only: policy checks (role, evidence) happen when the change is made.
type GetNextStatesQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetNextStatesQuery(productID kernel.UUID) (GetNextStatesQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetNextStatesQuery{}, err
	}

	return GetNextStatesQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetNextStatesQuery) Validate() error {
	return q.guard.Validate(ErrGetNextStatesQueryIsNotConstructed)
}

func (q GetNextStatesQuery) ProductID() kernel.UUID {
	return q.productID
}

// GetNextStatesQueryResponse lists the outgoing edges of the current status.
// NextPossibleStates is empty, never nil, for terminal statuses.
type GetNextStatesQueryResponse struct {
	CurrentStatus      lifecycle.Status
	NextPossibleStates []lifecycle.Status
	IsFinalState       bool
}
