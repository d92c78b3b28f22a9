package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-management-system/internal/converter"
	"clinic-management-system/internal/delivery/dto"
	"clinic-management-system/internal/domain/entity"
	"clinic-management-system/internal/domain/repository"
	"clinic-management-system/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// ErrPrescriptionNotFound covers both an unknown id and an
// already-dispensed prescription: the conditional UPDATE cannot tell
// them apart and callers are told the same thing for both.
var ErrPrescriptionNotFound = errors.New("prescription not found or already dispensed")

type PrescriptionUsecase interface {
	ListPrescriptions(ctx context.Context, filter entity.PrescriptionFilter) ([]dto.PrescriptionResponse, error)
	ListPrescriptionsByPatient(ctx context.Context, patientID uuid.UUID) ([]dto.PrescriptionResponse, error)
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest, doctorID uuid.UUID) (*dto.PrescriptionResponse, error)
	DispensePrescription(ctx context.Context, id uuid.UUID, pharmacistID uuid.UUID) (*dto.PrescriptionResponse, error)
}

type prescriptionUsecase struct {
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		log:              log,
		prescriptionRepo: prescriptionRepo,
		auditService:     auditService,
	}
}

func (u *prescriptionUsecase) ListPrescriptions(ctx context.Context, filter entity.PrescriptionFilter) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}
	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) ListPrescriptionsByPatient(ctx context.Context, patientID uuid.UUID) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for patient: %+v", err)
		return nil, err
	}
	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest, doctorID uuid.UUID) (*dto.PrescriptionResponse, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	prescription := &entity.Prescription{
		PatientID:    patientID,
		DoctorID:     doctorID,
		MedicineName: req.MedicineName,
		Dosage:       req.Dosage,
		Duration:     req.Duration,
		Instructions: req.Instructions,
		Status:       entity.PrescriptionStatusPending,
	}

	if err := u.prescriptionRepo.Create(ctx, prescription); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &doctorID, entity.AuditActionPrescriptionCreate, entity.JSON{
		"prescription_id": prescription.ID.String(),
		"patient_id":      patientID.String(),
		"medicine_name":   prescription.MedicineName,
	})

	// Reload with associations so the response carries the patient and
	// prescriber names.
	created, err := u.prescriptionRepo.FindByID(ctx, prescription.ID)
	if err != nil {
		u.log.Warnf("Failed to reload prescription after create: %+v", err)
		return nil, err
	}
	if created == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(created), nil
}

func (u *prescriptionUsecase) DispensePrescription(ctx context.Context, id uuid.UUID, pharmacistID uuid.UUID) (*dto.PrescriptionResponse, error) {
	rows, err := u.prescriptionRepo.Dispense(ctx, id, pharmacistID, time.Now())
	if err != nil {
		u.log.Warnf("Failed to dispense prescription: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPrescriptionNotFound
	}

	u.auditService.Record(ctx, &pharmacistID, entity.AuditActionPrescriptionDispense, entity.JSON{
		"prescription_id": id.String(),
	})

	dispensed, err := u.prescriptionRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to reload prescription after dispense: %+v", err)
		return nil, err
	}
	if dispensed == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(dispensed), nil
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key
// violation on a constraint containing the given name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
