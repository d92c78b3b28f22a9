package dto

import (
	"time"

	"github.com/google/uuid"
)

// PatientRequest is the body of both create and update; updates are a
// full-record replace, so the same required fields apply.
type PatientRequest struct {
	Name           string `json:"name" validate:"required"`
	Age            int    `json:"age" validate:"required,gt=0"`
	Gender         string `json:"gender" validate:"required"`
	Contact        string `json:"contact" validate:"required"`
	Address        string `json:"address" validate:"required"`
	MedicalHistory string `json:"medical_history" validate:"omitempty"`
}

type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	Contact        string    `json:"contact"`
	Address        string    `json:"address"`
	MedicalHistory string    `json:"medical_history"`
	CreatedAt      time.Time `json:"created_at"`
}
