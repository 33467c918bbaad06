package queries

import (
	"context"

	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductQueryHandler reads products straight from the products table.
type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns the product or an ObjectNotFoundError.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tenant_id,
			sku,
			name,
			quantity,
			status,
			location,
			last_moved_at,
			shipped_at,
			created_at,
			updated_at
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Rows()
	if err != nil {
		return GetProductQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetProductQueryResponse{}, err
		}
		return GetProductQueryResponse{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}

	var resp GetProductQueryResponse
	var id, tenantID uuid.UUID
	var status string

	if err = rows.Scan(
		&id,
		&tenantID,
		&resp.SKU,
		&resp.Name,
		&resp.Quantity,
		&status,
		&resp.Location,
		&resp.LastMovedAt,
		&resp.ShippedAt,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return GetProductQueryResponse{}, err
	}

	if resp.ID, err = toKernelUUID(id); err != nil {
		return GetProductQueryResponse{}, err
	}
	if resp.TenantID, err = toKernelUUID(tenantID); err != nil {
		return GetProductQueryResponse{}, err
	}
	if resp.Status, err = parseStatus(status); err != nil {
		return GetProductQueryResponse{}, err
	}

	return resp, nil
}
