package queries

import (
	"context"

	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetNextStatesQueryHandler combines the stored status with the status graph.
type GetNextStatesQueryHandler struct {
	db     *gorm.DB
	engine *lifecycle.Engine
}

// NewGetNextStatesQueryHandler creates the handler. A nil engine means lifecycle.Default().
func NewGetNextStatesQueryHandler(db *gorm.DB, engine *lifecycle.Engine) GetNextStatesQueryHandler {
	if engine == nil {
		engine = lifecycle.Default()
	}
	return GetNextStatesQueryHandler{db: db, engine: engine}
}

func (h GetNextStatesQueryHandler) Handle(ctx context.Context, query GetNextStatesQuery) (GetNextStatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNextStatesQueryResponse{}, err
	}

	var names []string
	err := h.db.WithContext(ctx).Raw(`SELECT status FROM products WHERE id = ?`, query.ProductID().Bytes()).
		Scan(&names).Error
	if err != nil {
		return GetNextStatesQueryResponse{}, err
	}
	if len(names) == 0 {
		return GetNextStatesQueryResponse{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}

	current, err := parseStatus(names[0])
	if err != nil {
		return GetNextStatesQueryResponse{}, err
	}

	next := h.engine.NextPossibleStates(current)
	if next == nil {
		next = []lifecycle.Status{}
	}

	return GetNextStatesQueryResponse{
		CurrentStatus:      current,
		NextPossibleStates: next,
		IsFinalState:       h.engine.IsFinal(current),
	}, nil
}
