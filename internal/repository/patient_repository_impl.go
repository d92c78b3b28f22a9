package repository

import (
	"context"
	"errors"

	"clinic-management-system/internal/domain/entity"
	domainRepo "clinic-management-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// Update replaces all mutable fields of the record in a single statement.
// Select lists the columns explicitly so empty strings overwrite too.
func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Patient{}).
		Where("id = ?", patient.ID).
		Select("name", "age", "gender", "contact", "address", "medical_history").
		Updates(patient)
	return result.RowsAffected, result.Error
}
