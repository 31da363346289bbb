package http

import (
	"net/http"

	"patient-portal/internal/delivery/http/handler"
	"patient-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	doctorHandler        *handler.DoctorHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	bookingHandler       *handler.BookingHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	bookingHandler *handler.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		doctorHandler:        doctorHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		bookingHandler:       bookingHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Portal routes (protected)
	portal := api.PathPrefix("").Subrouter()
	portal.Use(r.authMiddleware.Authenticate)

	portal.HandleFunc("/profile", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	portal.HandleFunc("/doctors", r.doctorHandler.Search).Methods(http.MethodGet)
	portal.HandleFunc("/doctors/meta", r.doctorHandler.Meta).Methods(http.MethodGet)
	portal.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.Get).Methods(http.MethodGet)

	portal.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	portal.HandleFunc("/appointments/{id}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)

	portal.HandleFunc("/medical-records", r.medicalRecordHandler.GetRecords).Methods(http.MethodGet)
	portal.HandleFunc("/health-tips", r.medicalRecordHandler.GetHealthTips).Methods(http.MethodGet)

	portal.HandleFunc("/bookings", r.bookingHandler.Start).Methods(http.MethodPost)
	portal.HandleFunc("/bookings/slots", r.bookingHandler.Slots).Methods(http.MethodGet)
	portal.HandleFunc("/bookings/{id}", r.bookingHandler.Get).Methods(http.MethodGet)
	portal.HandleFunc("/bookings/{id}", r.bookingHandler.Abandon).Methods(http.MethodDelete)
	portal.HandleFunc("/bookings/{id}/next", r.bookingHandler.Next).Methods(http.MethodPost)
	portal.HandleFunc("/bookings/{id}/back", r.bookingHandler.Back).Methods(http.MethodPost)
	portal.HandleFunc("/bookings/{id}/submit", r.bookingHandler.Submit).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
