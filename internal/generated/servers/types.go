// Package servers holds the HTTP contract of openapi.yaml: request and
// response types, the ServerInterface the adapter implements and the echo
// routing that binds parameters before calling it.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	UserHeaderScopes = "UserHeader.Scopes"
)

// Defines values for ProductStatus.
const (
	APPROVED      ProductStatus = "APPROVED"
	CANCELLED     ProductStatus = "CANCELLED"
	DELIVERED     ProductStatus = "DELIVERED"
	ELIMINATED    ProductStatus = "ELIMINATED"
	INANALYSIS    ProductStatus = "IN_ANALYSIS"
	INPREPARATION ProductStatus = "IN_PREPARATION"
	INRETURN      ProductStatus = "IN_RETURN"
	INSHIPPING    ProductStatus = "IN_SHIPPING"
	INSTORAGE     ProductStatus = "IN_STORAGE"
	RECEIVED      ProductStatus = "RECEIVED"
	REJECTED      ProductStatus = "REJECTED"
)

// Error defines model for Error.
type Error struct {
	AllowedNextStates *[]ProductStatus `json:"allowedNextStates,omitempty"`
	AttemptedStatus   *ProductStatus   `json:"attemptedStatus,omitempty"`
	CurrentStatus     *ProductStatus   `json:"currentStatus,omitempty"`
	Error             string           `json:"error"`
	MissingFields     *[]string        `json:"missingFields,omitempty"`
	Reason            *string          `json:"reason,omitempty"`
}

// MarkNotificationsRead defines model for MarkNotificationsRead.
type MarkNotificationsRead struct {
	NotificationIds []openapi_types.UUID `json:"notificationIds"`
}

// Movement defines model for Movement.
type Movement struct {
	CreatedAt      time.Time          `json:"createdAt"`
	Id             openapi_types.UUID `json:"id"`
	Location       *string            `json:"location,omitempty"`
	NewStatus      ProductStatus      `json:"newStatus"`
	PreviousStatus *ProductStatus     `json:"previousStatus,omitempty"`
	Quantity       int                `json:"quantity"`
	Reason         string             `json:"reason"`
	User           MovementUser       `json:"user"`
}

// MovementUser defines model for MovementUser.
type MovementUser struct {
	Email *string            `json:"email,omitempty"`
	Id    openapi_types.UUID `json:"id"`
	Name  *string            `json:"name,omitempty"`
}

// NewProduct defines model for NewProduct.
type NewProduct struct {
	Location *string `json:"location,omitempty"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Sku      string  `json:"sku"`
}

// NextStates defines model for NextStates.
type NextStates struct {
	CurrentStatus      ProductStatus   `json:"currentStatus"`
	IsFinalState       bool            `json:"isFinalState"`
	NextPossibleStates []ProductStatus `json:"nextPossibleStates"`
}

// Notification defines model for Notification.
type Notification struct {
	CreatedAt   time.Time          `json:"createdAt"`
	From        ProductStatus      `json:"from"`
	Id          openapi_types.UUID `json:"id"`
	ProductId   openapi_types.UUID `json:"productId"`
	ProductName string             `json:"productName"`
	Read        bool               `json:"read"`
	Reason      string             `json:"reason"`
	Sku         string             `json:"sku"`
	To          ProductStatus      `json:"to"`
	UserId      openapi_types.UUID `json:"userId"`
}

// NotificationList defines model for NotificationList.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}

// Product defines model for Product.
type Product struct {
	CreatedAt   time.Time          `json:"createdAt"`
	Id          openapi_types.UUID `json:"id"`
	LastMovedAt *time.Time         `json:"lastMovedAt,omitempty"`
	Location    *string            `json:"location,omitempty"`
	Name        string             `json:"name"`
	Quantity    int                `json:"quantity"`
	ShippedAt   *time.Time         `json:"shippedAt,omitempty"`
	Sku         string             `json:"sku"`
	Status      ProductStatus      `json:"status"`
	TenantId    openapi_types.UUID `json:"tenantId"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ProductStatus defines model for ProductStatus.
type ProductStatus string

// StatusChangeRequest defines model for StatusChangeRequest.
type StatusChangeRequest struct {
	ExpectedStatus *ProductStatus `json:"expectedStatus,omitempty"`
	Location       *string        `json:"location,omitempty"`
	NewStatus      ProductStatus  `json:"newStatus"`
	Reason         *string        `json:"reason,omitempty"`
}

// StatusChangeResponse defines model for StatusChangeResponse.
type StatusChangeResponse struct {
	Message    string     `json:"message"`
	Product    Product    `json:"product"`
	Transition Transition `json:"transition"`
}

// Transition defines model for Transition.
type Transition struct {
	From ProductStatus `json:"from"`
	To   ProductStatus `json:"to"`
}

// ProductId defines model for ProductId.
type ProductId = openapi_types.UUID

// GetNotificationsParams defines parameters for GetNotifications.
type GetNotificationsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetProductHistoryParams defines parameters for GetProductHistory.
type GetProductHistoryParams struct {
	Limit  *int             `form:"limit,omitempty" json:"limit,omitempty"`
	Status *[]ProductStatus `form:"status,omitempty" json:"status,omitempty"`
}

// MarkNotificationsReadJSONRequestBody defines body for MarkNotificationsRead for application/json ContentType.
type MarkNotificationsReadJSONRequestBody = MarkNotificationsRead

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = NewProduct

// ChangeProductStatusJSONRequestBody defines body for ChangeProductStatus for application/json ContentType.
type ChangeProductStatusJSONRequestBody = StatusChangeRequest
