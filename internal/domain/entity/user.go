package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies what a user account is allowed to do. The set is fixed
// at seeding time; there is no role management API.
type Role string

const (
	RoleDoctor     Role = "doctor"
	RolePharmacist Role = "pharmacist"
	RoleAdmin      Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleDoctor, RolePharmacist, RoleAdmin:
		return true
	}
	return false
}

// User represents a clinic staff account (doctor, pharmacist or admin)
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      Role      `gorm:"type:varchar(50);not null;index" json:"role"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Prescribed []Prescription `gorm:"foreignKey:DoctorID" json:"prescribed,omitempty"`
	Dispensed  []Prescription `gorm:"foreignKey:DispensedBy" json:"dispensed,omitempty"`
}

func (User) TableName() string {
	return "users"
}
