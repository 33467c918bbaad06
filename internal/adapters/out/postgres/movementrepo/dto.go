// Package movementrepo persists the append-only product movement ledger.
package movementrepo

import (
	"time"

	"warehouse/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// MovementDTO is the row layout of the product_movements table.
type MovementDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null;index:idx_movements_product_created,priority:1"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null;index"`
	PreviousStatus *string   `gorm:"size:32"`
	NewStatus      string    `gorm:"size:32;not null"`
	Quantity       int       `gorm:"not null"`
	Location       *string   `gorm:"size:120"`
	Reason         string    `gorm:"type:text;not null"`
	UserID         uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time `gorm:"not null;index:idx_movements_product_created,priority:2,sort:desc"`
}

func (MovementDTO) TableName() string {
	return "product_movements"
}

func fromDomain(m *product.Movement) MovementDTO {
	var previous *string
	if prev := m.PreviousStatus(); prev != nil {
		s := prev.String()
		previous = &s
	}

	var location *string
	if loc := m.Location(); loc != nil {
		s := loc.String()
		location = &s
	}

	return MovementDTO{
		ID:             m.ID().Bytes(),
		ProductID:      m.ProductID().Bytes(),
		TenantID:       m.TenantID().Bytes(),
		PreviousStatus: previous,
		NewStatus:      m.NewStatus().String(),
		Quantity:       m.Quantity(),
		Location:       location,
		Reason:         m.Reason(),
		UserID:         m.UserID().Bytes(),
		CreatedAt:      m.CreatedAt(),
	}
}
