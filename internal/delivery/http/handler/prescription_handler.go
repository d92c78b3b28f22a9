package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management-system/internal/delivery/dto"
	"clinic-management-system/internal/delivery/http/middleware"
	"clinic-management-system/internal/domain/entity"
	"clinic-management-system/internal/usecase"
	"clinic-management-system/pkg/response"
	"clinic-management-system/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

// ListPrescriptions returns all prescriptions, optionally filtered by
// status, most recent first.
func (h *PrescriptionHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	var filter entity.PrescriptionFilter
	if status := r.URL.Query().Get("status"); status != "" {
		s := entity.PrescriptionStatus(status)
		if !s.IsValid() {
			response.BadRequest(w, "Invalid status filter")
			return
		}
		filter.Status = s
	}

	prescriptions, err := h.prescriptionUsecase.ListPrescriptions(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Server error")
		return
	}

	response.JSON(w, http.StatusOK, prescriptions)
}

// ListPrescriptionsByPatient returns a patient's prescriptions, most
// recent first.
func (h *PrescriptionHandler) ListPrescriptionsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		response.NotFound(w, "Patient not found")
		return
	}

	prescriptions, err := h.prescriptionUsecase.ListPrescriptionsByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Server error")
		return
	}

	response.JSON(w, http.StatusOK, prescriptions)
}

// CreatePrescription writes a new pending prescription. The prescriber
// is the authenticated doctor, never a body field.
func (h *PrescriptionHandler) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	prescription, err := h.prescriptionUsecase.CreatePrescription(r.Context(), &req, doctorID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.BadRequest(w, "Patient not found")
		default:
			response.InternalServerError(w, "Server error")
		}
		return
	}

	response.JSON(w, http.StatusCreated, prescription)
}

// DispensePrescription marks a pending prescription as dispensed by the
// authenticated pharmacist.
func (h *PrescriptionHandler) DispensePrescription(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "Prescription not found or already dispensed")
		return
	}

	pharmacistID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	prescription, err := h.prescriptionUsecase.DispensePrescription(r.Context(), id, pharmacistID)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found or already dispensed")
		default:
			response.InternalServerError(w, "Server error")
		}
		return
	}

	response.JSON(w, http.StatusOK, prescription)
}
