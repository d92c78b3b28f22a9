package repository

import (
	"context"

	"clinic-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	// FindAll returns patients ordered by creation time, most recent first.
	FindAll(ctx context.Context) ([]entity.Patient, error)
	// FindByID returns (nil, nil) when no patient matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	// Update performs a full-record replace of the mutable fields.
	// Returns the number of rows affected (0 when the id does not exist).
	Update(ctx context.Context, patient *entity.Patient) (int64, error)
}
