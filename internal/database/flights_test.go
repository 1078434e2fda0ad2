package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-management-system/internal/models"
)

func TestCreateFlightStartsFullyAvailable(t *testing.T) {
	db, mock := newMockDB(t)

	departs := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	arrives := departs.Add(3 * time.Hour)
	f := &models.Flight{
		FlightNumber: "AA123",
		AirlineID:    1,
		Origin:       "New York",
		Destination:  "Los Angeles",
		DepartsAt:    departs,
		ArrivesAt:    arrives,
		Status:       models.FlightScheduled,
		Capacity:     180,
	}

	mock.ExpectExec(`INSERT INTO flights`).
		WithArgs("AA123", int64(1), "New York", "Los Angeles",
			departs, arrives, models.FlightScheduled, 180, 180).
		WillReturnResult(sqlmock.NewResult(42, 1))

	err := db.CreateFlight(f)

	require.NoError(t, err)
	assert.Equal(t, int64(42), f.ID)
	assert.Equal(t, 180, f.AvailableSeats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFlightDuplicateNumber(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO flights`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'AA123'"})

	err := db.CreateFlight(&models.Flight{FlightNumber: "AA123", AirlineID: 1, Capacity: 180})

	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestDeleteFlightBlockedByConfirmedReservations(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
		WithArgs(int64(7), models.ReservationConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := db.DeleteFlight(7)

	assert.ErrorIs(t, err, ErrReferentialConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFlightDropsCancelledReservations(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
		WithArgs(int64(7), models.ReservationConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM reservations`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM flights`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.DeleteFlight(7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFlightNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
		WithArgs(int64(99), models.ReservationConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM reservations`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM flights`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := db.DeleteFlight(99)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
