package converter

import (
	"clinic-management-system/internal/delivery/dto"
	"clinic-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

// PrescriptionToResponse converts a Prescription entity to its response
// DTO, flattening the loaded patient and prescriber names.
func PrescriptionToResponse(p *entity.Prescription) *dto.PrescriptionResponse {
	if p == nil {
		return nil
	}

	resp := &dto.PrescriptionResponse{
		ID:           p.ID,
		PatientID:    p.PatientID,
		DoctorID:     p.DoctorID,
		MedicineName: p.MedicineName,
		Dosage:       p.Dosage,
		Duration:     p.Duration,
		Instructions: p.Instructions,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		DispensedAt:  p.DispensedAt,
		DispensedBy:  p.DispensedBy,
	}

	if p.Patient.ID != uuid.Nil {
		resp.PatientName = p.Patient.Name
	}
	if p.Doctor.ID != uuid.Nil {
		resp.DoctorName = p.Doctor.FullName
	}
	if p.Dispenser != nil {
		resp.DispenserName = p.Dispenser.FullName
	}

	return resp
}

// PrescriptionsToResponses converts a slice of Prescription entities
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, *PrescriptionToResponse(&prescriptions[i]))
	}
	return responses
}
