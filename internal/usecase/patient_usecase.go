package usecase

import (
	"context"
	"errors"

	"clinic-management-system/internal/converter"
	"clinic-management-system/internal/delivery/dto"
	"clinic-management-system/internal/domain/entity"
	"clinic-management-system/internal/domain/repository"
	"clinic-management-system/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	ListPatients(ctx context.Context) ([]dto.PatientResponse, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	CreatePatient(ctx context.Context, req *dto.PatientRequest, actorID uuid.UUID) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.PatientRequest, actorID uuid.UUID) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.PatientRequest, actorID uuid.UUID) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Contact:        req.Contact,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &actorID, entity.AuditActionPatientCreate, entity.JSON{
		"patient_id": patient.ID.String(),
		"name":       patient.Name,
	})

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.PatientRequest, actorID uuid.UUID) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		ID:             id,
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Contact:        req.Contact,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	}

	rows, err := u.patientRepo.Update(ctx, patient)
	if err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPatientNotFound
	}

	updated, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to reload patient after update: %+v", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrPatientNotFound
	}

	u.auditService.Record(ctx, &actorID, entity.AuditActionPatientUpdate, entity.JSON{
		"patient_id": id.String(),
		"name":       updated.Name,
	})

	return converter.PatientToResponse(updated), nil
}
