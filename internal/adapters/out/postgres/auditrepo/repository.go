// Package auditrepo persists audit entries into the audit_logs table.
package auditrepo

import (
	"context"
	"time"

	"warehouse/internal/adapters/out/postgres/pgerrors"
	"warehouse/internal/core/domain/model/audit"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogDTO is the row layout of the audit_logs table.
type AuditLogDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Action     string    `gorm:"size:32;not null"`
	EntityType string    `gorm:"size:64;not null;index:idx_audit_entity,priority:1"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null;index:idx_audit_entity,priority:2"`
	Details    string    `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (AuditLogDTO) TableName() string {
	return "audit_logs"
}

// GormAuditLogRepository implements ports.AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	db *gorm.DB
}

func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Add appends an audit entry.
func (r *GormAuditLogRepository) Add(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := AuditLogDTO{
		ID:         entry.ID().Bytes(),
		TenantID:   entry.TenantID().Bytes(),
		UserID:     entry.UserID().Bytes(),
		Action:     string(entry.Action()),
		EntityType: entry.EntityType(),
		EntityID:   entry.EntityID().Bytes(),
		Details:    string(entry.Details()),
		CreatedAt:  entry.CreatedAt(),
	}
	return pgerrors.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}
