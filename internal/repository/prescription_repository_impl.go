package repository

import (
	"context"
	"errors"
	"time"

	"clinic-management-system/internal/domain/entity"
	domainRepo "clinic-management-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	return r.db.WithContext(ctx).Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Dispenser").
		Where("id = ?", id).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindAll(ctx context.Context, filter entity.PrescriptionFilter) ([]entity.Prescription, error) {
	query := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Dispenser")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var prescriptions []entity.Prescription
	err := query.Order("created_at DESC").Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Dispenser").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

// Dispense atomically marks a prescription as dispensed ONLY while it is
// still pending. Returns affected rows: 1 = success, 0 = unknown id or
// already dispensed (prevents double-dispense race).
func (r *prescriptionRepository) Dispense(ctx context.Context, id uuid.UUID, pharmacistID uuid.UUID, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Prescription{}).
		Where("id = ? AND status = ?", id, entity.PrescriptionStatusPending).
		Updates(map[string]interface{}{
			"status":       entity.PrescriptionStatusDispensed,
			"dispensed_at": at,
			"dispensed_by": pharmacistID,
		})
	return result.RowsAffected, result.Error
}
