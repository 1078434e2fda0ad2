package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flight-management-system/internal/database"
	"flight-management-system/internal/models"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func TestCreateReservationDeniedForViewer(t *testing.T) {
	svc, store, spy := newTestService()

	_, err := svc.CreateReservation(viewerActor, "10.0.0.1", &models.ReservationRequest{
		FlightID: 1, PassengerID: 1,
	})

	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Empty(t, spy.events)
	store.AssertNotCalled(t, "CreateReservation")
}

func TestCreateReservationValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.ReservationRequest
	}{
		{"missing flight", models.ReservationRequest{PassengerID: 1}},
		{"missing passenger", models.ReservationRequest{FlightID: 1}},
		{"unknown cabin", models.ReservationRequest{FlightID: 1, PassengerID: 1, CabinClass: "coach"}},
		{"negative price", models.ReservationRequest{FlightID: 1, PassengerID: 1, Price: -9.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _ := newTestService()

			_, err := svc.CreateReservation(agentActor, "10.0.0.1", &tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			store.AssertNotCalled(t, "CreateReservation")
		})
	}
}

func TestCreateReservationSuccess(t *testing.T) {
	svc, store, spy := newTestService()

	store.On("CreateReservation", mock.AnythingOfType("*models.Reservation")).Run(func(args mock.Arguments) {
		r := args.Get(0).(*models.Reservation)
		r.ID = 11
		r.Status = models.ReservationConfirmed
	}).Return(nil).Once()

	res, err := svc.CreateReservation(agentActor, "10.0.0.1", &models.ReservationRequest{
		FlightID:    3,
		PassengerID: 5,
		SeatLabel:   "12C",
		Price:       149.99,
	})

	require.NoError(t, err)
	assert.Regexp(t, codePattern, res.Code)
	assert.Equal(t, models.CabinEconomy, res.CabinClass, "cabin defaults to economy")
	assert.Equal(t, models.ReservationConfirmed, res.Status)

	require.Len(t, spy.events, 1)
	e := spy.events[0]
	assert.Equal(t, models.ActionCreate, e.Action)
	assert.Equal(t, "reservations", e.Entity)
	assert.Equal(t, int64(11), e.EntityID)
	assert.Equal(t, res.Code, e.Details["code"])
	assert.Equal(t, "149.99", e.Details["price"])
	store.AssertExpectations(t)
}

func TestCreateReservationRetriesOnCodeCollision(t *testing.T) {
	svc, store, spy := newTestService()

	store.On("CreateReservation", mock.AnythingOfType("*models.Reservation")).
		Return(database.ErrDuplicateKey).Once()
	store.On("CreateReservation", mock.AnythingOfType("*models.Reservation")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Reservation).ID = 12
	}).Return(nil).Once()

	res, err := svc.CreateReservation(agentActor, "10.0.0.1", &models.ReservationRequest{
		FlightID: 3, PassengerID: 5,
	})

	require.NoError(t, err)
	assert.Regexp(t, codePattern, res.Code)
	assert.Len(t, spy.events, 1)
	store.AssertNumberOfCalls(t, "CreateReservation", 2)
}

func TestCreateReservationNoSeats(t *testing.T) {
	svc, store, spy := newTestService()

	store.On("CreateReservation", mock.AnythingOfType("*models.Reservation")).
		Return(database.ErrNoSeatsAvailable).Once()

	_, err := svc.CreateReservation(agentActor, "10.0.0.1", &models.ReservationRequest{
		FlightID: 3, PassengerID: 5,
	})

	assert.ErrorIs(t, err, database.ErrNoSeatsAvailable)
	assert.Empty(t, spy.events, "failed bookings leave no audit trail")
	store.AssertNumberOfCalls(t, "CreateReservation", 1)
}

func TestCreateReservationDuplicatePassenger(t *testing.T) {
	svc, store, _ := newTestService()

	store.On("CreateReservation", mock.AnythingOfType("*models.Reservation")).
		Return(database.ErrDuplicateReservation).Once()

	_, err := svc.CreateReservation(agentActor, "10.0.0.1", &models.ReservationRequest{
		FlightID: 3, PassengerID: 5,
	})

	assert.ErrorIs(t, err, database.ErrDuplicateReservation)
	store.AssertNumberOfCalls(t, "CreateReservation", 1)
}

func TestCancelReservationReleasesSeatOnce(t *testing.T) {
	svc, store, spy := newTestService()

	res := &models.Reservation{ID: 11, Code: "AB12CD34", Status: models.ReservationCancelled}
	store.On("CancelReservation", int64(11)).Return(res, true, nil).Once()
	store.On("CancelReservation", int64(11)).Return(res, false, nil).Once()

	first, err := svc.CancelReservation(agentActor, "10.0.0.1", 11)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, first.Status)

	second, err := svc.CancelReservation(agentActor, "10.0.0.1", 11)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, second.Status)

	require.Len(t, spy.events, 1, "only the first cancel is audited")
	assert.Equal(t, models.ActionCancel, spy.events[0].Action)
	assert.Equal(t, "AB12CD34", spy.events[0].Details["code"])
}

func TestCancelReservationNotFound(t *testing.T) {
	svc, store, spy := newTestService()

	store.On("CancelReservation", int64(99)).Return(nil, false, database.ErrNotFound).Once()

	_, err := svc.CancelReservation(agentActor, "10.0.0.1", 99)

	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.Empty(t, spy.events)
	store.AssertExpectations(t)
}
