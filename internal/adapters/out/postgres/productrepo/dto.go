// Package productrepo persists the Product aggregate with GORM.
package productrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO is the row layout of the products table. Status is stored by
// name so that the table stays readable without the enumeration at hand.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_products_tenant_sku,priority:1"`
	SKU         string    `gorm:"column:sku;size:64;not null;uniqueIndex:idx_products_tenant_sku,priority:2"`
	Name        string    `gorm:"size:255;not null"`
	Quantity    int       `gorm:"not null;default:0"`
	Status      string    `gorm:"size:32;not null;index"`
	Location    *string   `gorm:"size:120"`
	LastMovedAt *time.Time
	ShippedAt   *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		TenantID:    p.TenantID().Bytes(),
		SKU:         p.SKU(),
		Name:        p.Name(),
		Quantity:    p.Quantity(),
		Status:      p.Status().String(),
		Location:    locationToColumn(p.Location()),
		LastMovedAt: p.LastMovedAt(),
		ShippedAt:   p.ShippedAt(),
		CreatedAt:   p.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	status, err := lifecycle.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Location != nil {
		loc, locErr := kernel.NewLocation(*dto.Location)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return product.RestoreProduct(id, tenantID, dto.SKU, dto.Name, dto.Quantity, status, location,
		utc(dto.LastMovedAt), utc(dto.ShippedAt), dto.CreatedAt.UTC())
}

func locationToColumn(loc *kernel.Location) *string {
	if loc == nil {
		return nil
	}
	s := loc.String()
	return &s
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
