package repository

import (
	"context"

	"clinic-management-system/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	// FindRecent returns the newest entries first, at most limit rows.
	FindRecent(ctx context.Context, limit int) ([]entity.AuditLog, error)
}
