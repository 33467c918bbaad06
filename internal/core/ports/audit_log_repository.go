package ports

import (
	"context"

	"warehouse/internal/core/domain/model/audit"
)

// AuditLogRepository appends audit entries. Rows are never updated.
type AuditLogRepository interface {
	Add(ctx context.Context, entry *audit.Entry) error
}
