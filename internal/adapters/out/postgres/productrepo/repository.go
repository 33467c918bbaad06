package productrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warehouse/internal/adapters/out/postgres/pgerrors"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a newly registered product.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("sku",
				fmt.Errorf("%q is already registered for this tenant", aggregate.SKU()))
		}
		return pgerrors.Translate(err)
	}

	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, pgerrors.Translate(err)
	}

	return toDomain(dto)
}

// UpdateStatus is a compare-and-swap on the status column: the row is only
// written while it still holds expected.
func (r *GormProductRepository) UpdateStatus(
	ctx context.Context,
	aggregate *product.Product,
	expected lifecycle.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(map[string]any{
			"status":        dto.Status,
			"location":      dto.Location,
			"last_moved_at": dto.LastMovedAt,
			"shipped_at":    dto.ShippedAt,
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return pgerrors.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return lifecycle.NewCommitConflictError(aggregate.ID().String(), expected)
	}

	return nil
}
