// Package mocks provides a testify mock of the service storage interface.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"flight-management-system/internal/models"
)

// MockStore is a mock implementation of service.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateReservation(res *models.Reservation) error {
	args := m.Called(res)
	return args.Error(0)
}

func (m *MockStore) CancelReservation(id int64) (*models.Reservation, bool, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Reservation), args.Bool(1), args.Error(2)
}

func (m *MockStore) GetReservation(id int64) (*models.Reservation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockStore) ListReservations() ([]models.Reservation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockStore) ListBookableFlights() ([]models.Flight, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockStore) CreateFlight(f *models.Flight) error {
	args := m.Called(f)
	return args.Error(0)
}

func (m *MockStore) GetFlight(id int64) (*models.Flight, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockStore) ListFlights() ([]models.Flight, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockStore) UpdateFlight(f *models.Flight) error {
	args := m.Called(f)
	return args.Error(0)
}

func (m *MockStore) DeleteFlight(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) ListFlightPassengers(flightID int64) ([]models.Passenger, error) {
	args := m.Called(flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Passenger), args.Error(1)
}

func (m *MockStore) CreatePassenger(p *models.Passenger) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockStore) GetPassenger(id int64) (*models.Passenger, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Passenger), args.Error(1)
}

func (m *MockStore) ListPassengers() ([]models.Passenger, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Passenger), args.Error(1)
}

func (m *MockStore) UpdatePassenger(p *models.Passenger) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockStore) DeletePassenger(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) CreateAirline(a *models.Airline) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockStore) GetAirline(id int64) (*models.Airline, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airline), args.Error(1)
}

func (m *MockStore) ListAirlines() ([]models.Airline, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Airline), args.Error(1)
}

func (m *MockStore) UpdateAirline(a *models.Airline) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockStore) DeleteAirline(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) ListUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStore) CreateUser(u *models.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockStore) DeleteUser(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) ListAuditEntries(limit int) ([]models.AuditEntry, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AuditEntry), args.Error(1)
}

func (m *MockStore) GetDashboardStats() (*models.DashboardStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}
