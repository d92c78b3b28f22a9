package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a clinic patient record
type Patient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Age            int       `gorm:"not null" json:"age"`
	Gender         string    `gorm:"type:varchar(50);not null" json:"gender"`
	Contact        string    `gorm:"type:varchar(100);not null" json:"contact"`
	Address        string    `gorm:"type:text;not null" json:"address"`
	MedicalHistory string    `gorm:"type:text;not null;default:''" json:"medical_history"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Prescriptions []Prescription `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"prescriptions,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
