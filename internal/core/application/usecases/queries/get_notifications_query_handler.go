package queries

import (
	"context"

	"warehouse/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler reads recent status changes from the movement
// ledger and flags the ones the user already acknowledged.
type GetNotificationsQueryHandler struct {
	db    *gorm.DB
	store ports.NotificationAckStore
}

func NewGetNotificationsQueryHandler(db *gorm.DB, store ports.NotificationAckStore) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db, store: store}
}

func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) (GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.product_id,
			p.sku,
			p.name,
			m.previous_status,
			m.new_status,
			m.reason,
			m.user_id,
			m.created_at
		FROM product_movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.tenant_id = ?
			AND m.previous_status IS NOT NULL
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT ?
	`, query.TenantID().Bytes(), query.Limit()).Rows()
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	notifications := make([]Notification, 0)
	for rows.Next() {
		var n Notification
		var id, productID, userID uuid.UUID
		var from, to string

		if err = rows.Scan(&id, &productID, &n.SKU, &n.ProductName, &from, &to, &n.Reason, &userID, &n.CreatedAt); err != nil {
			return GetNotificationsQueryResponse{}, err
		}

		if n.ID, err = toKernelUUID(id); err != nil {
			return GetNotificationsQueryResponse{}, err
		}
		if n.ProductID, err = toKernelUUID(productID); err != nil {
			return GetNotificationsQueryResponse{}, err
		}
		if n.UserID, err = toKernelUUID(userID); err != nil {
			return GetNotificationsQueryResponse{}, err
		}
		if n.From, err = parseStatus(from); err != nil {
			return GetNotificationsQueryResponse{}, err
		}
		if n.To, err = parseStatus(to); err != nil {
			return GetNotificationsQueryResponse{}, err
		}

		notifications = append(notifications, n)
	}
	if err = rows.Err(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	read, err := h.store.ReadSet(ctx, query.UserID())
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	resp := GetNotificationsQueryResponse{Notifications: notifications}
	for i := range notifications {
		_, ok := read[notifications[i].ID]
		notifications[i].Read = ok
		if !ok {
			resp.UnreadCount++
		}
	}

	return resp, nil
}
