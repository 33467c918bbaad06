// Package userrepo reads operator accounts from the users table. Accounts are
// owned by the identity side of the platform; this service only reads them.
package userrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO is the subset of the users table this service reads.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"size:255;not null"`
	Email    string    `gorm:"size:255;not null;uniqueIndex"`
	Role     string    `gorm:"size:32;not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

// GormUserDirectory implements ports.UserDirectory using GORM.
type GormUserDirectory struct {
	db *gorm.DB
}

func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// Get resolves a user by ID.
func (r *GormUserDirectory) Get(ctx context.Context, id kernel.UUID) (ports.User, error) {
	if err := id.Validate(); err != nil {
		return ports.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return ports.User{}, err
	}

	return toDomain(dto)
}

func toDomain(dto UserDTO) (ports.User, error) {
	userID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.User{}, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return ports.User{}, err
	}

	role, err := lifecycle.ParseRole(dto.Role)
	if err != nil {
		return ports.User{}, err
	}

	return ports.User{
		ID:       userID,
		TenantID: tenantID,
		Name:     dto.Name,
		Email:    dto.Email,
		Role:     role,
	}, nil
}
