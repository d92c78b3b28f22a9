package repository

import (
	"context"
	"time"

	"clinic-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entity.Prescription) error
	// FindByID returns (nil, nil) when no prescription matches. Patient,
	// Doctor and Dispenser associations are loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	// FindAll returns prescriptions matching the filter, most recent
	// first, with Patient and Doctor loaded.
	FindAll(ctx context.Context, filter entity.PrescriptionFilter) ([]entity.Prescription, error)
	// FindByPatientID returns the patient's prescriptions, most recent
	// first, with Doctor loaded.
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Prescription, error)
	// Dispense atomically marks a pending prescription as dispensed. The
	// status predicate is part of the UPDATE itself so two concurrent
	// calls for the same id result in exactly one row affected.
	// Returns affected rows: 1 = success, 0 = unknown id or already dispensed.
	Dispense(ctx context.Context, id uuid.UUID, pharmacistID uuid.UUID, at time.Time) (int64, error)
}
