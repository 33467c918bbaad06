// Package outboxrepo stores outbox messages in PostgreSQL.
package outboxrepo

import (
	"encoding/json"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// OutboxMessageDTO is the row layout of the outbox_messages table.
type OutboxMessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventType   string    `gorm:"size:128;not null"`
	AggregateID uuid.UUID `gorm:"type:uuid;not null"`
	Payload     string    `gorm:"type:jsonb;not null"`
	Status      string    `gorm:"size:16;not null;index:idx_outbox_status_created,priority:1"`
	Retries     int       `gorm:"not null;default:0"`
	LastError   *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;index:idx_outbox_status_created,priority:2"`
	ProcessedAt *time.Time
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m *outbox.Message) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          m.ID().Bytes(),
		EventType:   m.EventType(),
		AggregateID: m.AggregateID().Bytes(),
		Payload:     string(m.Payload()),
		Status:      string(m.Status()),
		Retries:     m.Retries(),
		LastError:   m.LastError(),
		CreatedAt:   m.CreatedAt(),
	}
}

func toDomain(dto OutboxMessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(id, dto.EventType, aggregateID, json.RawMessage(dto.Payload),
		outbox.Status(dto.Status), dto.Retries, dto.LastError, dto.CreatedAt.UTC())
}
