package usecase

import (
	"context"
	"io"
	"sync"
	"time"

	"clinic-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeAuditService struct {
	mu      sync.Mutex
	actions []string
}

func (f *fakeAuditService) Record(_ context.Context, _ *uuid.UUID, action string, _ entity.JSON) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
}

func (f *fakeAuditService) recorded(action string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.actions {
		if a == action {
			return true
		}
	}
	return false
}

type fakePrescriptionRepo struct {
	mu            sync.Mutex
	prescriptions map[uuid.UUID]*entity.Prescription
}

func newFakePrescriptionRepo() *fakePrescriptionRepo {
	return &fakePrescriptionRepo{prescriptions: make(map[uuid.UUID]*entity.Prescription)}
}

func (f *fakePrescriptionRepo) Create(_ context.Context, p *entity.Prescription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	stored := *p
	f.prescriptions[p.ID] = &stored
	return nil
}

func (f *fakePrescriptionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Prescription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.prescriptions[id]
	if !ok {
		return nil, nil
	}
	found := *p
	return &found, nil
}

func (f *fakePrescriptionRepo) FindAll(_ context.Context, filter entity.PrescriptionFilter) ([]entity.Prescription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []entity.Prescription
	for _, p := range f.prescriptions {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (f *fakePrescriptionRepo) FindByPatientID(_ context.Context, patientID uuid.UUID) ([]entity.Prescription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []entity.Prescription
	for _, p := range f.prescriptions {
		if p.PatientID == patientID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (f *fakePrescriptionRepo) Dispense(_ context.Context, id uuid.UUID, pharmacistID uuid.UUID, at time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.prescriptions[id]
	if !ok || p.Status != entity.PrescriptionStatusPending {
		return 0, nil
	}
	p.Status = entity.PrescriptionStatusDispensed
	p.DispensedAt = &at
	p.DispensedBy = &pharmacistID
	return 1, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	found := *u
	return &found, nil
}

type fakePatientRepo struct {
	mu       sync.Mutex
	patients map[uuid.UUID]*entity.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uuid.UUID]*entity.Patient)}
}

func (f *fakePatientRepo) Create(_ context.Context, patient *entity.Patient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	if patient.CreatedAt.IsZero() {
		patient.CreatedAt = time.Now()
	}
	stored := *patient
	f.patients[patient.ID] = &stored
	return nil
}

func (f *fakePatientRepo) FindAll(_ context.Context) ([]entity.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []entity.Patient
	for _, p := range f.patients {
		result = append(result, *p)
	}
	return result, nil
}

func (f *fakePatientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.patients[id]
	if !ok {
		return nil, nil
	}
	found := *p
	return &found, nil
}

func (f *fakePatientRepo) Update(_ context.Context, patient *entity.Patient) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.patients[patient.ID]
	if !ok {
		return 0, nil
	}
	existing.Name = patient.Name
	existing.Age = patient.Age
	existing.Gender = patient.Gender
	existing.Contact = patient.Contact
	existing.Address = patient.Address
	existing.MedicalHistory = patient.MedicalHistory
	return 1, nil
}

type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]bool)}
}

func (f *fakeTokenStore) key(kind string, userID uuid.UUID, tokenID string) string {
	return kind + ":" + userID.String() + ":" + tokenID
}

func (f *fakeTokenStore) Save(_ context.Context, kind string, userID uuid.UUID, tokenID string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[f.key(kind, userID, tokenID)] = true
	return nil
}

func (f *fakeTokenStore) Exists(_ context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens[f.key(kind, userID, tokenID)], nil
}

func (f *fakeTokenStore) Revoke(_ context.Context, kind string, userID uuid.UUID, tokenID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, f.key(kind, userID, tokenID))
	return nil
}
