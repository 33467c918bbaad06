package outboxrepo

import (
	"context"
	"time"

	"warehouse/internal/adapters/out/postgres/pgerrors"
	"warehouse/internal/core/domain/model/outbox"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add enqueues a message.
func (r *GormOutboxRepository) Add(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := fromDomain(message)
	return pgerrors.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

// ListPending locks pending rows with FOR UPDATE SKIP LOCKED so that several
// relays can drain the table side by side. Must run inside a transaction for
// the lock to outlive the statement.
func (r *GormOutboxRepository) ListPending(ctx context.Context, limit int) ([]*outbox.Message, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("status = ?", string(outbox.StatusPending)).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerrors.Translate(err)
	}

	messages := make([]*outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		messages = append(messages, m)
	}

	return messages, nil
}

// Update stores the delivery state of message.
func (r *GormOutboxRepository) Update(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	var processedAt *time.Time
	if message.Status() == outbox.StatusProcessed {
		now := time.Now().UTC()
		processedAt = &now
	}

	result := r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ?", message.ID().Bytes()).
		Updates(map[string]any{
			"status":       string(message.Status()),
			"retries":      message.Retries(),
			"last_error":   message.LastError(),
			"processed_at": processedAt,
		})
	if result.Error != nil {
		return pgerrors.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
