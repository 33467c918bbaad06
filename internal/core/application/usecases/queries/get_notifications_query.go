package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

const (
	DefaultNotificationsLimit = 20
	MaxNotificationsLimit     = 100
)

// GetNotificationsQuery lists the latest status changes in the user's tenant.
// Registration movements are not notifications.
type GetNotificationsQuery struct {
	tenantID kernel.UUID
	userID   kernel.UUID
	limit    int

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery builds the query. A nil limit means DefaultNotificationsLimit.
func NewGetNotificationsQuery(tenantID, userID kernel.UUID, limit *int) (GetNotificationsQuery, error) {
	q := GetNotificationsQuery{
		limit: DefaultNotificationsLimit,
		guard: guard.NewConstructorGuard(),
	}

	var limitErr error
	if limit != nil {
		if *limit < 1 || *limit > MaxNotificationsLimit {
			limitErr = errs.NewValueIsOutOfRangeError("limit", *limit, 1, MaxNotificationsLimit)
		} else {
			q.limit = *limit
		}
	}

	tenantErr := tenantID.Validate()
	if tenantErr != nil {
		tenantErr = errs.NewValueIsRequiredErrorWithCause("tenantId", tenantErr)
	}
	userErr := userID.Validate()
	if userErr != nil {
		userErr = errs.NewValueIsRequiredErrorWithCause("userId", userErr)
	}

	if err := errors.Join(tenantErr, userErr, limitErr); err != nil {
		return GetNotificationsQuery{}, err
	}

	q.tenantID = tenantID
	q.userID = userID
	return q, nil
}

func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

func (q GetNotificationsQuery) TenantID() kernel.UUID { return q.tenantID }
func (q GetNotificationsQuery) UserID() kernel.UUID   { return q.userID }
func (q GetNotificationsQuery) Limit() int            { return q.limit }

// Notification is a status change seen from the reader's side.
type Notification struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	SKU         string
	ProductName string
	From        lifecycle.Status
	To          lifecycle.Status
	Reason      string
	UserID      kernel.UUID
	CreatedAt   time.Time
	Read        bool
}

type GetNotificationsQueryResponse struct {
	Notifications []Notification
	UnreadCount   int
}
