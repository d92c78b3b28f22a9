package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreatePrescriptionRequest carries the prescription fields a doctor
// submits. The prescriber is taken from the session, never from the body.
type CreatePrescriptionRequest struct {
	PatientID    string `json:"patient_id" validate:"required,uuid"`
	MedicineName string `json:"medicine_name" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	Instructions string `json:"instructions" validate:"omitempty"`
}

type PrescriptionResponse struct {
	ID            uuid.UUID  `json:"id"`
	PatientID     uuid.UUID  `json:"patient_id"`
	DoctorID      uuid.UUID  `json:"doctor_id"`
	MedicineName  string     `json:"medicine_name"`
	Dosage        string     `json:"dosage"`
	Duration      string     `json:"duration"`
	Instructions  string     `json:"instructions"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	DispensedAt   *time.Time `json:"dispensed_at"`
	DispensedBy   *uuid.UUID `json:"dispensed_by"`
	PatientName   string     `json:"patient_name,omitempty"`
	DoctorName    string     `json:"doctor_name,omitempty"`
	DispenserName string     `json:"dispenser_name,omitempty"`
}
