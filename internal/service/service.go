// Package service implements the policy-checked business operations. Every
// entry point re-validates the actor against the access policy before
// touching storage; decisions are never cached across requests.
package service

import (
	"errors"
	"fmt"

	"flight-management-system/internal/audit"
	"flight-management-system/internal/auth"
	"flight-management-system/internal/models"
)

var (
	// ErrPermissionDenied means the actor's role does not allow the
	// operation. The request boundary turns it into a notice, not a crash.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidInput marks validation failures on submitted fields.
	ErrInvalidInput = errors.New("invalid input")
)

// Store is the persistence surface the service drives. *database.DB
// implements it; tests substitute a mock.
type Store interface {
	// Reservations and the seat ledger
	CreateReservation(res *models.Reservation) error
	CancelReservation(id int64) (*models.Reservation, bool, error)
	GetReservation(id int64) (*models.Reservation, error)
	ListReservations() ([]models.Reservation, error)
	ListBookableFlights() ([]models.Flight, error)

	// Flights
	CreateFlight(f *models.Flight) error
	GetFlight(id int64) (*models.Flight, error)
	ListFlights() ([]models.Flight, error)
	UpdateFlight(f *models.Flight) error
	DeleteFlight(id int64) error
	ListFlightPassengers(flightID int64) ([]models.Passenger, error)

	// Passengers
	CreatePassenger(p *models.Passenger) error
	GetPassenger(id int64) (*models.Passenger, error)
	ListPassengers() ([]models.Passenger, error)
	UpdatePassenger(p *models.Passenger) error
	DeletePassenger(id int64) error

	// Airlines
	CreateAirline(a *models.Airline) error
	GetAirline(id int64) (*models.Airline, error)
	ListAirlines() ([]models.Airline, error)
	UpdateAirline(a *models.Airline) error
	DeleteAirline(id int64) error

	// Users
	ListUsers() ([]models.User, error)
	CreateUser(u *models.User) error
	DeleteUser(id int64) error

	// Views
	ListAuditEntries(limit int) ([]models.AuditEntry, error)
	GetDashboardStats() (*models.DashboardStats, error)
}

// Service carries out all permission-gated operations.
type Service struct {
	store Store
	audit audit.Recorder
}

func New(store Store, recorder audit.Recorder) *Service {
	return &Service{store: store, audit: recorder}
}

// allow re-checks the policy table for this actor and operation.
func allow(actor *models.Actor, op auth.Operation) error {
	if actor == nil || !auth.Allowed(actor.Role, op) {
		return ErrPermissionDenied
	}
	return nil
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Dashboard returns the landing-page aggregates. Any authenticated actor
// may see it, including viewers.
func (s *Service) Dashboard(actor *models.Actor) (*models.DashboardStats, error) {
	if actor == nil {
		return nil, ErrPermissionDenied
	}
	return s.store.GetDashboardStats()
}

// AuditLog returns the newest limit audit entries.
func (s *Service) AuditLog(actor *models.Actor, limit int) ([]models.AuditEntry, error) {
	if err := allow(actor, auth.OpViewAuditLog); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.store.ListAuditEntries(limit)
}
