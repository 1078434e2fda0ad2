package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flight-management-system/internal/audit"
	"flight-management-system/internal/models"
	"flight-management-system/internal/service/mocks"
)

// recorderSpy captures audit events for assertions.
type recorderSpy struct {
	events []audit.Event
}

func (r *recorderSpy) Record(e audit.Event) {
	r.events = append(r.events, e)
}

var (
	adminActor  = &models.Actor{ID: 1, Username: "admin", Name: "Admin", Role: models.RoleAdmin}
	agentActor  = &models.Actor{ID: 2, Username: "agent1", Name: "Agent", Role: models.RoleAgent}
	viewerActor = &models.Actor{ID: 3, Username: "viewer", Name: "Viewer", Role: models.RoleViewer}
)

func newTestService() (*Service, *mocks.MockStore, *recorderSpy) {
	store := new(mocks.MockStore)
	spy := &recorderSpy{}
	return New(store, spy), store, spy
}

func TestCreateFlightValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.FlightRequest
	}{
		{"missing flight number", models.FlightRequest{AirlineID: 1, Origin: "A", Destination: "B", DepartsAt: "2026-01-02T08:00:00Z", ArrivesAt: "2026-01-02T11:00:00Z", Capacity: 100}},
		{"missing airline", models.FlightRequest{FlightNumber: "AA1", Origin: "A", Destination: "B", DepartsAt: "2026-01-02T08:00:00Z", ArrivesAt: "2026-01-02T11:00:00Z", Capacity: 100}},
		{"zero capacity", models.FlightRequest{FlightNumber: "AA1", AirlineID: 1, Origin: "A", Destination: "B", DepartsAt: "2026-01-02T08:00:00Z", ArrivesAt: "2026-01-02T11:00:00Z"}},
		{"bad departure time", models.FlightRequest{FlightNumber: "AA1", AirlineID: 1, Origin: "A", Destination: "B", DepartsAt: "tomorrow", ArrivesAt: "2026-01-02T11:00:00Z", Capacity: 100}},
		{"arrival before departure", models.FlightRequest{FlightNumber: "AA1", AirlineID: 1, Origin: "A", Destination: "B", DepartsAt: "2026-01-02T11:00:00Z", ArrivesAt: "2026-01-02T08:00:00Z", Capacity: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, spy := newTestService()

			_, err := svc.CreateFlight(adminActor, "10.0.0.1", &tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, spy.events)
			store.AssertNotCalled(t, "CreateFlight")
		})
	}
}

func TestCreateFlightNormalizesAndAudits(t *testing.T) {
	svc, store, spy := newTestService()

	store.On("GetAirline", int64(1)).Return(&models.Airline{ID: 1, Code: "AA", Active: true}, nil)
	store.On("CreateFlight", mock.AnythingOfType("*models.Flight")).Run(func(args mock.Arguments) {
		f := args.Get(0).(*models.Flight)
		f.ID = 42
		f.AvailableSeats = f.Capacity
	}).Return(nil)

	flight, err := svc.CreateFlight(adminActor, "10.0.0.1", &models.FlightRequest{
		FlightNumber: " aa123 ",
		AirlineID:    1,
		Origin:       "New York",
		Destination:  "Los Angeles",
		DepartsAt:    "2026-01-02T08:00:00Z",
		ArrivesAt:    "2026-01-02T11:00:00Z",
		Capacity:     180,
	})

	require.NoError(t, err)
	assert.Equal(t, "AA123", flight.FlightNumber)
	assert.Equal(t, models.FlightScheduled, flight.Status)
	assert.Equal(t, 180, flight.AvailableSeats)

	require.Len(t, spy.events, 1)
	assert.Equal(t, models.ActionCreate, spy.events[0].Action)
	assert.Equal(t, "flights", spy.events[0].Entity)
	assert.Equal(t, int64(42), spy.events[0].EntityID)
	store.AssertExpectations(t)
}

func TestUpdateFlightClampsSeatOverride(t *testing.T) {
	svc, store, _ := newTestService()

	current := &models.Flight{ID: 7, Status: models.FlightScheduled, Capacity: 100, AvailableSeats: 40}
	store.On("GetFlight", int64(7)).Return(current, nil)
	store.On("UpdateFlight", mock.AnythingOfType("*models.Flight")).Return(nil)

	over := 500
	flight, err := svc.UpdateFlight(adminActor, "10.0.0.1", 7, &models.FlightRequest{
		FlightNumber:   "AA1",
		AirlineID:      1,
		Origin:         "A",
		Destination:    "B",
		DepartsAt:      "2026-01-02T08:00:00Z",
		ArrivesAt:      "2026-01-02T11:00:00Z",
		Capacity:       120,
		AvailableSeats: &over,
	})

	require.NoError(t, err)
	assert.Equal(t, 120, flight.AvailableSeats, "override clamps to capacity")
}

func TestDeleteFlightDeniedForSupervisor(t *testing.T) {
	svc, store, spy := newTestService()

	supervisor := &models.Actor{ID: 5, Role: models.RoleSupervisor}
	err := svc.DeleteFlight(supervisor, "10.0.0.1", 7)

	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Empty(t, spy.events)
	store.AssertNotCalled(t, "DeleteFlight")
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc, store, _ := newTestService()

	_, err := svc.CreateUser(adminActor, "10.0.0.1", &models.UserRequest{
		Username: "bob", Password: "secret1", Name: "Bob", Role: "root",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	store.AssertNotCalled(t, "CreateUser")
}

func TestDeleteUserRefusesSelf(t *testing.T) {
	svc, store, _ := newTestService()

	err := svc.DeleteUser(adminActor, "10.0.0.1", adminActor.ID)

	assert.ErrorIs(t, err, ErrInvalidInput)
	store.AssertNotCalled(t, "DeleteUser")
}

func TestAirlineCodeValidation(t *testing.T) {
	svc, store, _ := newTestService()

	_, err := svc.CreateAirline(adminActor, "10.0.0.1", &models.AirlineRequest{
		Code: "ABCD", Name: "Quad Air",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	store.AssertNotCalled(t, "CreateAirline")
}

func TestViewerDeniedEverywhere(t *testing.T) {
	svc, store, _ := newTestService()

	_, err := svc.ListFlights(viewerActor)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.ListPassengers(viewerActor)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.ListReservations(viewerActor)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.AuditLog(viewerActor, 10)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	store.AssertNotCalled(t, "ListFlights")
	store.AssertNotCalled(t, "ListPassengers")
	store.AssertNotCalled(t, "ListReservations")
	store.AssertNotCalled(t, "ListAuditEntries")
}

func TestCreateFlightRejectsInactiveAirline(t *testing.T) {
	svc, store, spy := newTestService()

	store.On("GetAirline", int64(2)).Return(&models.Airline{ID: 2, Code: "ZZ", Active: false}, nil)

	_, err := svc.CreateFlight(adminActor, "10.0.0.1", &models.FlightRequest{
		FlightNumber: "ZZ9",
		AirlineID:    2,
		Origin:       "A",
		Destination:  "B",
		DepartsAt:    "2026-01-02T08:00:00Z",
		ArrivesAt:    "2026-01-02T11:00:00Z",
		Capacity:     100,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, spy.events)
	store.AssertNotCalled(t, "CreateFlight")
}

func TestDashboardOpenToViewer(t *testing.T) {
	svc, store, _ := newTestService()

	stats := &models.DashboardStats{ActiveAirlines: 7}
	store.On("GetDashboardStats").Return(stats, nil)

	got, err := svc.Dashboard(viewerActor)

	require.NoError(t, err)
	assert.Equal(t, 7, got.ActiveAirlines)
}
