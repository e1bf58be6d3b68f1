package http

import (
	"net/http"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/http/handler"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	patientHandler       *handler.PatientHandler
	doctorHandler        *handler.DoctorHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	auditLogHandler      *handler.AuditLogHandler
	userHandler          *handler.UserHandler
	authMiddleware       *middleware.AuthMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	requestLogger        *middleware.RequestLoggerMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogger *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		patientHandler:       patientHandler,
		doctorHandler:        doctorHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		auditLogHandler:      auditLogHandler,
		userHandler:          userHandler,
		authMiddleware:       authMiddleware,
		rateLimitMiddleware:  rateLimitMiddleware,
		corsMiddleware:       corsMiddleware,
		requestLogger:        requestLogger,
	}
}

// crudRoutes is the handler set of one resource collection.
type crudRoutes struct {
	list, create, show, update, destroy http.HandlerFunc
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Everything else needs a bearer token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.Use(r.rateLimitMiddleware.Handle)

	protected.HandleFunc("/user", r.userHandler.GetCurrentUser).Methods(http.MethodGet)

	resource(protected, "/patients", crudRoutes{
		list:    r.patientHandler.ListPatients,
		create:  r.patientHandler.CreatePatient,
		show:    r.patientHandler.GetPatient,
		update:  r.patientHandler.UpdatePatient,
		destroy: r.patientHandler.DeletePatient,
	})
	resource(protected, "/doctors", crudRoutes{
		list:    r.doctorHandler.ListDoctors,
		create:  r.doctorHandler.CreateDoctor,
		show:    r.doctorHandler.GetDoctor,
		update:  r.doctorHandler.UpdateDoctor,
		destroy: r.doctorHandler.DeleteDoctor,
	})
	resource(protected, "/appointments", crudRoutes{
		list:    r.appointmentHandler.ListAppointments,
		create:  r.appointmentHandler.CreateAppointment,
		show:    r.appointmentHandler.GetAppointment,
		update:  r.appointmentHandler.UpdateAppointment,
		destroy: r.appointmentHandler.DeleteAppointment,
	})
	resource(protected, "/medical-records", crudRoutes{
		list:    r.medicalRecordHandler.ListMedicalRecords,
		create:  r.medicalRecordHandler.CreateMedicalRecord,
		show:    r.medicalRecordHandler.GetMedicalRecord,
		update:  r.medicalRecordHandler.UpdateMedicalRecord,
		destroy: r.medicalRecordHandler.DeleteMedicalRecord,
	})

	// Audit trail (read only)
	protected.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	protected.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.requestLogger.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func resource(router *mux.Router, path string, routes crudRoutes) {
	router.HandleFunc(path, routes.list).Methods(http.MethodGet)
	router.HandleFunc(path, routes.create).Methods(http.MethodPost)
	router.HandleFunc(path+"/{id:[0-9]+}", routes.show).Methods(http.MethodGet)
	router.HandleFunc(path+"/{id:[0-9]+}", routes.update).Methods(http.MethodPut, http.MethodPatch)
	router.HandleFunc(path+"/{id:[0-9]+}", routes.destroy).Methods(http.MethodDelete)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
