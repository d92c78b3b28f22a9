package converter

import (
	"clinic-management-system/internal/delivery/dto"
	"clinic-management-system/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		Age:            patient.Age,
		Gender:         patient.Gender,
		Contact:        patient.Contact,
		Address:        patient.Address,
		MedicalHistory: patient.MedicalHistory,
		CreatedAt:      patient.CreatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
