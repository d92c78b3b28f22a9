package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management-system/internal/delivery/dto"
	"clinic-management-system/internal/delivery/http/middleware"
	"clinic-management-system/internal/usecase"
	"clinic-management-system/pkg/response"
	"clinic-management-system/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// ListPatients returns all patients, most recent first.
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Server error")
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

// GetPatient returns a single patient by id.
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "Patient not found")
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Server error")
		}
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

// CreatePatient registers a new patient record.
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req, actorID)
	if err != nil {
		response.InternalServerError(w, "Server error")
		return
	}

	response.JSON(w, http.StatusCreated, patient)
}

// UpdatePatient replaces all mutable fields of a patient record.
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "Patient not found")
		return
	}

	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), id, &req, actorID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Server error")
		}
		return
	}

	response.JSON(w, http.StatusOK, patient)
}
