package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrescriptionStatus represents the lifecycle state of a prescription.
// A prescription is created pending and moves at most once to dispensed.
type PrescriptionStatus string

const (
	PrescriptionStatusPending   PrescriptionStatus = "pending"
	PrescriptionStatusDispensed PrescriptionStatus = "dispensed"
)

// IsValid reports whether s is a known status value.
func (s PrescriptionStatus) IsValid() bool {
	return s == PrescriptionStatusPending || s == PrescriptionStatusDispensed
}

// Prescription represents a medicine order written by a doctor for a
// patient. DispensedAt and DispensedBy are both null while the status is
// pending and both set once it is dispensed.
type Prescription struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"doctor_id"`
	MedicineName string             `gorm:"type:varchar(255);not null" json:"medicine_name"`
	Dosage       string             `gorm:"type:varchar(100);not null" json:"dosage"`
	Duration     string             `gorm:"type:varchar(100);not null" json:"duration"`
	Instructions string             `gorm:"type:text;not null;default:''" json:"instructions"`
	Status       PrescriptionStatus `gorm:"type:varchar(50);not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time          `gorm:"autoCreateTime" json:"created_at"`
	DispensedAt  *time.Time         `json:"dispensed_at"`
	DispensedBy  *uuid.UUID         `gorm:"type:uuid" json:"dispensed_by"`

	// Relationships
	Patient   Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Dispenser *User   `gorm:"foreignKey:DispensedBy" json:"dispenser,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// IsPending checks if the prescription has not been dispensed yet
func (p *Prescription) IsPending() bool {
	return p.Status == PrescriptionStatusPending
}

// IsDispensed checks if the prescription has been handed out
func (p *Prescription) IsDispensed() bool {
	return p.Status == PrescriptionStatusDispensed
}
