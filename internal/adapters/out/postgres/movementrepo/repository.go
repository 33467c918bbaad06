package movementrepo

import (
	"context"

	"warehouse/internal/adapters/out/postgres/pgerrors"
	"warehouse/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// GormMovementRepository implements ports.MovementRepository using GORM.
type GormMovementRepository struct {
	db *gorm.DB
}

func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// Add appends a movement.
func (r *GormMovementRepository) Add(ctx context.Context, movement *product.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	dto := fromDomain(movement)
	return pgerrors.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}
