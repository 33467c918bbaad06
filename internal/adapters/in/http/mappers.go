package http

import (
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toStatus(s lifecycle.Status) servers.ProductStatus {
	return servers.ProductStatus(s.String())
}

func toStatuses(statuses []lifecycle.Status) []servers.ProductStatus {
	out := make([]servers.ProductStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, toStatus(s))
	}
	return out
}

func fromAPIUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

// productFromDomain renders an aggregate that was just written. The row's
// updated_at equals the last movement time at that point.
func productFromDomain(p *product.Product) servers.Product {
	updatedAt := p.CreatedAt()
	if p.LastMovedAt() != nil {
		updatedAt = *p.LastMovedAt()
	}

	var location *string
	if loc := p.Location(); loc != nil {
		s := loc.String()
		location = &s
	}

	return servers.Product{
		Id:          p.ID().Bytes(),
		TenantId:    p.TenantID().Bytes(),
		Sku:         p.SKU(),
		Name:        p.Name(),
		Quantity:    p.Quantity(),
		Status:      toStatus(p.Status()),
		Location:    location,
		LastMovedAt: p.LastMovedAt(),
		ShippedAt:   p.ShippedAt(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   updatedAt,
	}
}

func productFromReadModel(p queries.GetProductQueryResponse) servers.Product {
	return servers.Product{
		Id:          p.ID.Bytes(),
		TenantId:    p.TenantID.Bytes(),
		Sku:         p.SKU,
		Name:        p.Name,
		Quantity:    p.Quantity,
		Status:      toStatus(p.Status),
		Location:    p.Location,
		LastMovedAt: p.LastMovedAt,
		ShippedAt:   p.ShippedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func movementFromReadModel(m queries.GetProductHistoryQueryResponse) servers.Movement {
	var previous *servers.ProductStatus
	if m.PreviousStatus != nil {
		s := toStatus(*m.PreviousStatus)
		previous = &s
	}

	return servers.Movement{
		Id:             m.ID.Bytes(),
		PreviousStatus: previous,
		NewStatus:      toStatus(m.NewStatus),
		Quantity:       m.Quantity,
		Location:       m.Location,
		Reason:         m.Reason,
		User: servers.MovementUser{
			Id:    m.User.ID.Bytes(),
			Name:  m.User.Name,
			Email: m.User.Email,
		},
		CreatedAt: m.CreatedAt,
	}
}

func notificationFromReadModel(n queries.Notification) servers.Notification {
	return servers.Notification{
		Id:          n.ID.Bytes(),
		ProductId:   n.ProductID.Bytes(),
		Sku:         n.SKU,
		ProductName: n.ProductName,
		From:        toStatus(n.From),
		To:          toStatus(n.To),
		Reason:      n.Reason,
		UserId:      n.UserID.Bytes(),
		CreatedAt:   n.CreatedAt,
		Read:        n.Read,
	}
}
