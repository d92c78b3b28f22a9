package usecase

import (
	"context"

	"clinic-management-system/internal/converter"
	"clinic-management-system/internal/delivery/dto"
	"clinic-management-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const defaultAuditLogLimit = 100

type AuditLogUsecase interface {
	ListRecent(ctx context.Context, limit int) ([]dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (u *auditLogUsecase) ListRecent(ctx context.Context, limit int) ([]dto.AuditLogResponse, error) {
	if limit <= 0 || limit > 1000 {
		limit = defaultAuditLogLimit
	}

	logs, err := u.auditRepo.FindRecent(ctx, limit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return converter.AuditLogsToResponses(logs), nil
}
