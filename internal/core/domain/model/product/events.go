package product

import (
	"time"

	"warehouse/internal/core/domain/model/lifecycle"
)

// EventStatusChanged is the routing key of StatusChangedEvent.
const EventStatusChanged = "product.status_changed"

// StatusChangedEvent is published after a status change has been committed.
type StatusChangedEvent struct {
	ProductID  string           `json:"productId"`
	TenantID   string           `json:"tenantId"`
	SKU        string           `json:"sku"`
	From       lifecycle.Status `json:"from"`
	To         lifecycle.Status `json:"to"`
	Location   *string          `json:"location,omitempty"`
	Reason     string           `json:"reason"`
	UserID     string           `json:"userId"`
	MovementID string           `json:"movementId"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// NewStatusChangedEvent describes movement m of product p.
func NewStatusChangedEvent(p *Product, from lifecycle.Status, m *Movement) StatusChangedEvent {
	var location *string
	if loc := m.Location(); loc != nil {
		s := loc.String()
		location = &s
	}

	return StatusChangedEvent{
		ProductID:  p.ID().String(),
		TenantID:   p.TenantID().String(),
		SKU:        p.SKU(),
		From:       from,
		To:         m.NewStatus(),
		Location:   location,
		Reason:     m.Reason(),
		UserID:     m.UserID().String(),
		MovementID: m.ID().String(),
		OccurredAt: m.CreatedAt(),
	}
}
