package usecase

import (
	"context"
	"testing"

	"clinic-management-system/internal/delivery/dto"
	"clinic-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

func newPrescriptionFixture() (PrescriptionUsecase, *fakePrescriptionRepo, *fakeAuditService) {
	repo := newFakePrescriptionRepo()
	audit := &fakeAuditService{}
	uc := NewPrescriptionUsecase(testLogger(), repo, audit)
	return uc, repo, audit
}

func seedPrescription(repo *fakePrescriptionRepo, status entity.PrescriptionStatus) *entity.Prescription {
	p := &entity.Prescription{
		PatientID:    uuid.New(),
		DoctorID:     uuid.New(),
		MedicineName: "Amoxicillin",
		Dosage:       "500mg",
		Duration:     "7 days",
		Status:       status,
	}
	repo.Create(context.Background(), p)
	return p
}

func TestCreatePrescription(t *testing.T) {
	uc, _, audit := newPrescriptionFixture()
	doctorID := uuid.New()
	patientID := uuid.New()

	req := &dto.CreatePrescriptionRequest{
		PatientID:    patientID.String(),
		MedicineName: "Ibuprofen",
		Dosage:       "200mg",
		Duration:     "5 days",
		Instructions: "After meals",
	}

	resp, err := uc.CreatePrescription(context.Background(), req, doctorID)
	if err != nil {
		t.Fatalf("CreatePrescription returned error: %v", err)
	}

	if resp.Status != string(entity.PrescriptionStatusPending) {
		t.Errorf("expected status pending, got %q", resp.Status)
	}
	if resp.DoctorID != doctorID {
		t.Errorf("expected doctor id %s, got %s", doctorID, resp.DoctorID)
	}
	if resp.PatientID != patientID {
		t.Errorf("expected patient id %s, got %s", patientID, resp.PatientID)
	}
	if resp.Instructions != "After meals" {
		t.Errorf("expected instructions to be carried, got %q", resp.Instructions)
	}
	if resp.DispensedAt != nil || resp.DispensedBy != nil {
		t.Error("new prescription must not carry dispense fields")
	}
	if !audit.recorded(entity.AuditActionPrescriptionCreate) {
		t.Error("expected prescription.create audit entry")
	}
}

func TestCreatePrescriptionInvalidPatientID(t *testing.T) {
	uc, _, _ := newPrescriptionFixture()

	req := &dto.CreatePrescriptionRequest{
		PatientID:    "not-a-uuid",
		MedicineName: "Ibuprofen",
		Dosage:       "200mg",
		Duration:     "5 days",
	}

	if _, err := uc.CreatePrescription(context.Background(), req, uuid.New()); err != ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestDispensePrescription(t *testing.T) {
	uc, repo, audit := newPrescriptionFixture()
	p := seedPrescription(repo, entity.PrescriptionStatusPending)
	pharmacistID := uuid.New()

	resp, err := uc.DispensePrescription(context.Background(), p.ID, pharmacistID)
	if err != nil {
		t.Fatalf("DispensePrescription returned error: %v", err)
	}

	if resp.Status != string(entity.PrescriptionStatusDispensed) {
		t.Errorf("expected status dispensed, got %q", resp.Status)
	}
	if resp.DispensedAt == nil {
		t.Error("expected dispensed_at to be set")
	}
	if resp.DispensedBy == nil || *resp.DispensedBy != pharmacistID {
		t.Errorf("expected dispensed_by %s, got %v", pharmacistID, resp.DispensedBy)
	}
	if !audit.recorded(entity.AuditActionPrescriptionDispense) {
		t.Error("expected prescription.dispense audit entry")
	}
}

func TestDispensePrescriptionUnknownID(t *testing.T) {
	uc, _, _ := newPrescriptionFixture()

	if _, err := uc.DispensePrescription(context.Background(), uuid.New(), uuid.New()); err != ErrPrescriptionNotFound {
		t.Fatalf("expected ErrPrescriptionNotFound, got %v", err)
	}
}

func TestDispensePrescriptionTwice(t *testing.T) {
	uc, repo, _ := newPrescriptionFixture()
	p := seedPrescription(repo, entity.PrescriptionStatusPending)

	if _, err := uc.DispensePrescription(context.Background(), p.ID, uuid.New()); err != nil {
		t.Fatalf("first dispense returned error: %v", err)
	}

	// Second dispense must see zero affected rows and report not found.
	if _, err := uc.DispensePrescription(context.Background(), p.ID, uuid.New()); err != ErrPrescriptionNotFound {
		t.Fatalf("expected ErrPrescriptionNotFound on second dispense, got %v", err)
	}
}

func TestListPrescriptionsStatusFilter(t *testing.T) {
	uc, repo, _ := newPrescriptionFixture()
	seedPrescription(repo, entity.PrescriptionStatusPending)
	seedPrescription(repo, entity.PrescriptionStatusPending)
	seedPrescription(repo, entity.PrescriptionStatusDispensed)

	all, err := uc.ListPrescriptions(context.Background(), entity.PrescriptionFilter{})
	if err != nil {
		t.Fatalf("ListPrescriptions returned error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 prescriptions without filter, got %d", len(all))
	}

	pending, err := uc.ListPrescriptions(context.Background(), entity.PrescriptionFilter{Status: entity.PrescriptionStatusPending})
	if err != nil {
		t.Fatalf("ListPrescriptions returned error: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("expected 2 pending prescriptions, got %d", len(pending))
	}

	dispensed, err := uc.ListPrescriptions(context.Background(), entity.PrescriptionFilter{Status: entity.PrescriptionStatusDispensed})
	if err != nil {
		t.Fatalf("ListPrescriptions returned error: %v", err)
	}
	if len(dispensed) != 1 {
		t.Errorf("expected 1 dispensed prescription, got %d", len(dispensed))
	}
}

func TestPrescribeThenDispenseFlow(t *testing.T) {
	uc, _, _ := newPrescriptionFixture()
	doctorID := uuid.New()
	pharmacistID := uuid.New()

	created, err := uc.CreatePrescription(context.Background(), &dto.CreatePrescriptionRequest{
		PatientID:    uuid.New().String(),
		MedicineName: "Amoxicillin",
		Dosage:       "500mg",
		Duration:     "7 days",
	}, doctorID)
	if err != nil {
		t.Fatalf("CreatePrescription returned error: %v", err)
	}

	dispensed, err := uc.DispensePrescription(context.Background(), created.ID, pharmacistID)
	if err != nil {
		t.Fatalf("DispensePrescription returned error: %v", err)
	}

	if dispensed.ID != created.ID {
		t.Errorf("expected same prescription id, got %s and %s", created.ID, dispensed.ID)
	}
	if dispensed.Status != string(entity.PrescriptionStatusDispensed) {
		t.Errorf("expected dispensed status, got %q", dispensed.Status)
	}
	if dispensed.DoctorID != doctorID {
		t.Errorf("prescriber must survive dispense, got %s", dispensed.DoctorID)
	}
	if dispensed.DispensedBy == nil || *dispensed.DispensedBy != pharmacistID {
		t.Errorf("expected dispensed_by %s, got %v", pharmacistID, dispensed.DispensedBy)
	}
}

func TestListPrescriptionsByPatient(t *testing.T) {
	uc, repo, _ := newPrescriptionFixture()
	p := seedPrescription(repo, entity.PrescriptionStatusPending)
	seedPrescription(repo, entity.PrescriptionStatusPending)

	result, err := uc.ListPrescriptionsByPatient(context.Background(), p.PatientID)
	if err != nil {
		t.Fatalf("ListPrescriptionsByPatient returned error: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 prescription for patient, got %d", len(result))
	}
	if result[0].PatientID != p.PatientID {
		t.Errorf("expected patient id %s, got %s", p.PatientID, result[0].PatientID)
	}
}
