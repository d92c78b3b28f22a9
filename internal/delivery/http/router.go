package http

import (
	"net/http"

	"clinic-management-system/internal/delivery/http/handler"
	"clinic-management-system/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientHandler
	prescriptionHandler *handler.PrescriptionHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		prescriptionHandler: prescriptionHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Patient routes — reads for any authenticated staff
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("", r.patientHandler.ListPatients).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Patient routes — record management for doctors and admins
	patientsManage := api.PathPrefix("/patients").Subrouter()
	patientsManage.Use(r.authMiddleware.Authenticate)
	patientsManage.Use(middleware.RequireDoctorOrAdmin)
	patientsManage.HandleFunc("", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patientsManage.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)

	// Prescription routes — reads for any authenticated staff
	prescriptions := api.PathPrefix("/prescriptions").Subrouter()
	prescriptions.Use(r.authMiddleware.Authenticate)
	prescriptions.HandleFunc("", r.prescriptionHandler.ListPrescriptions).Methods(http.MethodGet)
	prescriptions.HandleFunc("/patient/{patientId}", r.prescriptionHandler.ListPrescriptionsByPatient).Methods(http.MethodGet)

	// Prescription routes — only doctors prescribe
	prescriptionsCreate := api.PathPrefix("/prescriptions").Subrouter()
	prescriptionsCreate.Use(r.authMiddleware.Authenticate)
	prescriptionsCreate.Use(middleware.RequireDoctor)
	prescriptionsCreate.HandleFunc("", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)

	// Prescription routes — only pharmacists dispense
	prescriptionsDispense := api.PathPrefix("/prescriptions").Subrouter()
	prescriptionsDispense.Use(r.authMiddleware.Authenticate)
	prescriptionsDispense.Use(middleware.RequirePharmacist)
	prescriptionsDispense.HandleFunc("/{id}/dispense", r.prescriptionHandler.DispensePrescription).Methods(http.MethodPatch)

	// Audit trail (admin only)
	auditLogs := api.PathPrefix("/audit-logs").Subrouter()
	auditLogs.Use(r.authMiddleware.Authenticate)
	auditLogs.Use(middleware.RequireAdmin)
	auditLogs.HandleFunc("", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "OK", "message": "Clinic System API is running"}`))
}
