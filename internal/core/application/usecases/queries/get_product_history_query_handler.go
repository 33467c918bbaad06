package queries

import (
	"context"
	"strings"

	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetProductHistoryQueryHandler reads the movement ledger joined with the users
// table.
type GetProductHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetProductHistoryQueryHandler(db *gorm.DB) GetProductHistoryQueryHandler {
	return GetProductHistoryQueryHandler{db: db}
}

// Handle returns the product's movements ordered by created_at then id, both
// descending. An unknown product is an ObjectNotFoundError, a known product
// without matching movements an empty slice.
func (h GetProductHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetProductHistoryQuery,
) ([]GetProductHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM products WHERE id = ?)`, query.ProductID().Bytes()).
		Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}

	var sql strings.Builder
	args := []any{query.ProductID().Bytes()}

	sql.WriteString(`
		SELECT
			m.id,
			m.previous_status,
			m.new_status,
			m.quantity,
			m.location,
			m.reason,
			m.user_id,
			u.name,
			u.email,
			m.created_at
		FROM product_movements m
		LEFT JOIN users u ON u.id = m.user_id
		WHERE m.product_id = ?`)

	if statuses := query.Statuses(); len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, s.String())
		}
		sql.WriteString(` AND m.new_status = ANY(?)`)
		args = append(args, pq.Array(names))
	}

	sql.WriteString(`
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT ?`)
	args = append(args, query.Limit())

	rows, err := db.Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]GetProductHistoryQueryResponse, 0)
	for rows.Next() {
		var item GetProductHistoryQueryResponse
		var id, userID uuid.UUID
		var previous *string
		var next string

		if err = rows.Scan(
			&id,
			&previous,
			&next,
			&item.Quantity,
			&item.Location,
			&item.Reason,
			&userID,
			&item.User.Name,
			&item.User.Email,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}

		if item.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if item.User.ID, err = toKernelUUID(userID); err != nil {
			return nil, err
		}
		if item.PreviousStatus, err = parseOptionalStatus(previous); err != nil {
			return nil, err
		}
		if item.NewStatus, err = parseStatus(next); err != nil {
			return nil, err
		}

		history = append(history, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
