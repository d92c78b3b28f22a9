package database

import (
	"fmt"

	"clinic-management-system/internal/domain/entity"
	"clinic-management-system/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed inserts the default staff accounts and sample patients. Existing
// rows are left untouched, so running it on every startup is safe.
func Seed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	return seedPatients(db)
}

func seedUsers(db *gorm.DB) error {
	defaults := []struct {
		Username string
		Password string
		Role     entity.Role
		FullName string
	}{
		{Username: "doctor1", Password: "doctor123", Role: entity.RoleDoctor, FullName: "Dr. John Smith"},
		{Username: "pharmacist1", Password: "pharma123", Role: entity.RolePharmacist, FullName: "Sarah Johnson"},
		{Username: "admin1", Password: "admin123", Role: entity.RoleAdmin, FullName: "Alex Morgan"},
	}

	for _, d := range defaults {
		hashed, err := password.Hash(d.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		user := entity.User{
			Username: d.Username,
			Password: hashed,
			Role:     d.Role,
			FullName: d.FullName,
		}

		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoNothing: true,
		}).Create(&user)
		if result.Error != nil {
			return fmt.Errorf("failed to seed user %s: %w", d.Username, result.Error)
		}
		if result.RowsAffected > 0 {
			logrus.Infof("Seeded user %s (%s)", d.Username, d.Role)
		}
	}

	return nil
}

func seedPatients(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Patient{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count patients: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := []entity.Patient{
		{Name: "Michael Brown", Age: 45, Gender: "Male", Contact: "555-0101", Address: "123 Main St", MedicalHistory: "Hypertension, Diabetes"},
		{Name: "Emily Davis", Age: 32, Gender: "Female", Contact: "555-0102", Address: "456 Oak Ave", MedicalHistory: "No known allergies"},
		{Name: "Robert Wilson", Age: 58, Gender: "Male", Contact: "555-0103", Address: "789 Pine Rd", MedicalHistory: "Asthma"},
	}

	if err := db.Create(&samples).Error; err != nil {
		return fmt.Errorf("failed to seed patients: %w", err)
	}

	logrus.Infof("Seeded %d sample patients", len(samples))
	return nil
}
