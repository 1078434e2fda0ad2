package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	// Apply middleware
	r.Use(LoggingMiddleware)

	// Health check and metrics
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Session routes
	session := r.PathPrefix("/api").Subrouter()
	session.Use(JSONMiddleware)
	session.HandleFunc("/login", h.Login).Methods("POST")

	// Authenticated API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(JSONMiddleware)
	api.Use(h.RequireAuth)

	api.HandleFunc("/logout", h.Logout).Methods("POST")
	api.HandleFunc("/dashboard", h.Dashboard).Methods("GET")
	api.HandleFunc("/audit", h.AuditLog).Methods("GET")

	// Flight routes
	api.HandleFunc("/flights", h.ListFlights).Methods("GET")
	api.HandleFunc("/flights", h.CreateFlight).Methods("POST")
	api.HandleFunc("/flights/bookable", h.ListBookableFlights).Methods("GET")
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods("GET")
	api.HandleFunc("/flights/{id}", h.UpdateFlight).Methods("PUT")
	api.HandleFunc("/flights/{id}", h.DeleteFlight).Methods("DELETE")
	api.HandleFunc("/flights/{id}/passengers", h.GetFlightPassengers).Methods("GET")

	// Passenger routes
	api.HandleFunc("/passengers", h.ListPassengers).Methods("GET")
	api.HandleFunc("/passengers", h.CreatePassenger).Methods("POST")
	api.HandleFunc("/passengers/{id}", h.GetPassenger).Methods("GET")
	api.HandleFunc("/passengers/{id}", h.UpdatePassenger).Methods("PUT")
	api.HandleFunc("/passengers/{id}", h.DeletePassenger).Methods("DELETE")

	// Airline routes
	api.HandleFunc("/airlines", h.ListAirlines).Methods("GET")
	api.HandleFunc("/airlines", h.CreateAirline).Methods("POST")
	api.HandleFunc("/airlines/{id}", h.GetAirline).Methods("GET")
	api.HandleFunc("/airlines/{id}", h.UpdateAirline).Methods("PUT")
	api.HandleFunc("/airlines/{id}", h.DeleteAirline).Methods("DELETE")

	// Reservation routes
	api.HandleFunc("/reservations", h.ListReservations).Methods("GET")
	api.HandleFunc("/reservations", h.CreateReservation).Methods("POST")
	api.HandleFunc("/reservations/{id}", h.GetReservation).Methods("GET")
	api.HandleFunc("/reservations/{id}/cancel", h.CancelReservation).Methods("POST")

	// User management routes
	api.HandleFunc("/users", h.ListUsers).Methods("GET")
	api.HandleFunc("/users", h.CreateUser).Methods("POST")
	api.HandleFunc("/users/{id}", h.DeleteUser).Methods("DELETE")

	return r
}
