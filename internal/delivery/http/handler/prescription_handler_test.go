package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-management-system/internal/delivery/dto"
	"clinic-management-system/internal/delivery/http/middleware"
	"clinic-management-system/internal/domain/entity"
	"clinic-management-system/internal/usecase"
	"clinic-management-system/pkg/response"
	"clinic-management-system/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type fakePrescriptionUsecase struct {
	listFn          func(ctx context.Context, filter entity.PrescriptionFilter) ([]dto.PrescriptionResponse, error)
	listByPatientFn func(ctx context.Context, patientID uuid.UUID) ([]dto.PrescriptionResponse, error)
	createFn        func(ctx context.Context, req *dto.CreatePrescriptionRequest, doctorID uuid.UUID) (*dto.PrescriptionResponse, error)
	dispenseFn      func(ctx context.Context, id uuid.UUID, pharmacistID uuid.UUID) (*dto.PrescriptionResponse, error)
}

func (f *fakePrescriptionUsecase) ListPrescriptions(ctx context.Context, filter entity.PrescriptionFilter) ([]dto.PrescriptionResponse, error) {
	return f.listFn(ctx, filter)
}

func (f *fakePrescriptionUsecase) ListPrescriptionsByPatient(ctx context.Context, patientID uuid.UUID) ([]dto.PrescriptionResponse, error) {
	return f.listByPatientFn(ctx, patientID)
}

func (f *fakePrescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest, doctorID uuid.UUID) (*dto.PrescriptionResponse, error) {
	return f.createFn(ctx, req, doctorID)
}

func (f *fakePrescriptionUsecase) DispensePrescription(ctx context.Context, id uuid.UUID, pharmacistID uuid.UUID) (*dto.PrescriptionResponse, error) {
	return f.dispenseFn(ctx, id, pharmacistID)
}

func prescriptionRouter(uc usecase.PrescriptionUsecase) *mux.Router {
	h := NewPrescriptionHandler(uc, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/api/prescriptions", h.ListPrescriptions).Methods(http.MethodGet)
	r.HandleFunc("/api/prescriptions", h.CreatePrescription).Methods(http.MethodPost)
	r.HandleFunc("/api/prescriptions/{id}/dispense", h.DispensePrescription).Methods(http.MethodPatch)
	return r
}

func withUserID(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestListPrescriptionsStatusQuery(t *testing.T) {
	var gotFilter entity.PrescriptionFilter
	uc := &fakePrescriptionUsecase{
		listFn: func(_ context.Context, filter entity.PrescriptionFilter) ([]dto.PrescriptionResponse, error) {
			gotFilter = filter
			return []dto.PrescriptionResponse{}, nil
		},
	}
	router := prescriptionRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/prescriptions?status=pending", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter.Status != entity.PrescriptionStatusPending {
		t.Errorf("expected pending filter to be passed through, got %q", gotFilter.Status)
	}
}

func TestListPrescriptionsInvalidStatus(t *testing.T) {
	uc := &fakePrescriptionUsecase{
		listFn: func(_ context.Context, _ entity.PrescriptionFilter) ([]dto.PrescriptionResponse, error) {
			t.Error("usecase must not be called for an invalid status")
			return nil, nil
		},
	}
	router := prescriptionRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/prescriptions?status=bogus", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreatePrescriptionHandler(t *testing.T) {
	doctorID := uuid.New()
	patientID := uuid.New()

	uc := &fakePrescriptionUsecase{
		createFn: func(_ context.Context, req *dto.CreatePrescriptionRequest, gotDoctorID uuid.UUID) (*dto.PrescriptionResponse, error) {
			if gotDoctorID != doctorID {
				t.Errorf("expected doctor id from context, got %s", gotDoctorID)
			}
			return &dto.PrescriptionResponse{
				ID:           uuid.New(),
				PatientID:    patientID,
				DoctorID:     gotDoctorID,
				MedicineName: req.MedicineName,
				Status:       string(entity.PrescriptionStatusPending),
			}, nil
		},
	}
	router := prescriptionRouter(uc)

	body, _ := json.Marshal(dto.CreatePrescriptionRequest{
		PatientID:    patientID.String(),
		MedicineName: "Ibuprofen",
		Dosage:       "200mg",
		Duration:     "5 days",
	})
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/prescriptions", bytes.NewReader(body)), doctorID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.PrescriptionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != string(entity.PrescriptionStatusPending) {
		t.Errorf("expected pending status, got %q", resp.Status)
	}
}

func TestCreatePrescriptionValidation(t *testing.T) {
	uc := &fakePrescriptionUsecase{
		createFn: func(_ context.Context, _ *dto.CreatePrescriptionRequest, _ uuid.UUID) (*dto.PrescriptionResponse, error) {
			t.Error("usecase must not be called for an invalid body")
			return nil, nil
		},
	}
	router := prescriptionRouter(uc)

	cases := []struct {
		name string
		body dto.CreatePrescriptionRequest
	}{
		{"missing medicine name", dto.CreatePrescriptionRequest{PatientID: uuid.New().String(), Dosage: "200mg", Duration: "5 days"}},
		{"missing dosage", dto.CreatePrescriptionRequest{PatientID: uuid.New().String(), MedicineName: "Ibuprofen", Duration: "5 days"}},
		{"bad patient id", dto.CreatePrescriptionRequest{PatientID: "abc", MedicineName: "Ibuprofen", Dosage: "200mg", Duration: "5 days"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.body)
			req := withUserID(httptest.NewRequest(http.MethodPost, "/api/prescriptions", bytes.NewReader(body)), uuid.New())
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}

			var errBody response.ErrorBody
			if err := json.NewDecoder(rec.Body).Decode(&errBody); err != nil {
				t.Fatalf("failed to decode error body: %v", err)
			}
			if len(errBody.Fields) == 0 {
				t.Error("expected field errors in validation response")
			}
		})
	}
}

func TestDispensePrescriptionHandler(t *testing.T) {
	id := uuid.New()
	pharmacistID := uuid.New()

	uc := &fakePrescriptionUsecase{
		dispenseFn: func(_ context.Context, gotID uuid.UUID, gotPharmacistID uuid.UUID) (*dto.PrescriptionResponse, error) {
			if gotID != id {
				t.Errorf("expected prescription id %s, got %s", id, gotID)
			}
			if gotPharmacistID != pharmacistID {
				t.Errorf("expected pharmacist id from context, got %s", gotPharmacistID)
			}
			return &dto.PrescriptionResponse{
				ID:     gotID,
				Status: string(entity.PrescriptionStatusDispensed),
			}, nil
		},
	}
	router := prescriptionRouter(uc)

	req := withUserID(httptest.NewRequest(http.MethodPatch, "/api/prescriptions/"+id.String()+"/dispense", nil), pharmacistID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDispensePrescriptionNotFound(t *testing.T) {
	uc := &fakePrescriptionUsecase{
		dispenseFn: func(_ context.Context, _ uuid.UUID, _ uuid.UUID) (*dto.PrescriptionResponse, error) {
			return nil, usecase.ErrPrescriptionNotFound
		},
	}
	router := prescriptionRouter(uc)

	req := withUserID(httptest.NewRequest(http.MethodPatch, "/api/prescriptions/"+uuid.New().String()+"/dispense", nil), uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var errBody response.ErrorBody
	if err := json.NewDecoder(rec.Body).Decode(&errBody); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if errBody.Error == "" {
		t.Error("expected an error message in the body")
	}
}

func TestDispensePrescriptionBadID(t *testing.T) {
	uc := &fakePrescriptionUsecase{
		dispenseFn: func(_ context.Context, _ uuid.UUID, _ uuid.UUID) (*dto.PrescriptionResponse, error) {
			t.Error("usecase must not be called for a malformed id")
			return nil, nil
		},
	}
	router := prescriptionRouter(uc)

	req := withUserID(httptest.NewRequest(http.MethodPatch, "/api/prescriptions/not-a-uuid/dispense", nil), uuid.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
