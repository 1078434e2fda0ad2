package database

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-management-system/internal/models"
)

// newMockDB returns a DB wired to a sqlmock connection. NewDB pings a real
// server, so tests build the wrapper directly.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &DB{DB: conn}, mock
}

func TestCreateReservationTakesSeatAndInserts(t *testing.T) {
	db, mock := newMockDB(t)

	res := &models.Reservation{
		Code:        "AB12CD34",
		FlightID:    3,
		PassengerID: 5,
		SeatLabel:   "12C",
		CabinClass:  models.CabinEconomy,
		Price:       149.99,
	}
	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
		WithArgs(int64(3), int64(5), models.ReservationConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT 1 FROM passengers`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec(`UPDATE flights`).
		WithArgs(int64(3), models.FlightScheduled).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO reservations`).
		WithArgs("AB12CD34", int64(3), int64(5), "12C", models.CabinEconomy, 149.99, models.ReservationConfirmed).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery(`SELECT created_at FROM reservations`).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))
	mock.ExpectCommit()

	err := db.CreateReservation(res)

	require.NoError(t, err)
	assert.Equal(t, int64(11), res.ID)
	assert.Equal(t, models.ReservationConfirmed, res.Status)
	assert.Equal(t, created, res.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationNoSeatsRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT 1 FROM passengers`).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec(`UPDATE flights`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT 1 FROM flights`).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectRollback()

	err := db.CreateReservation(&models.Reservation{
		Code: "AB12CD34", FlightID: 3, PassengerID: 5, CabinClass: models.CabinEconomy,
	})

	assert.ErrorIs(t, err, ErrNoSeatsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationUnknownFlight(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT 1 FROM passengers`).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec(`UPDATE flights`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT 1 FROM flights`).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectRollback()

	err := db.CreateReservation(&models.Reservation{
		Code: "AB12CD34", FlightID: 99, PassengerID: 5, CabinClass: models.CabinEconomy,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationDuplicatePassenger(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := db.CreateReservation(&models.Reservation{
		Code: "AB12CD34", FlightID: 3, PassengerID: 5, CabinClass: models.CabinEconomy,
	})

	assert.ErrorIs(t, err, ErrDuplicateReservation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationInsertFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT 1 FROM passengers`).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec(`UPDATE flights`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO reservations`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := db.CreateReservation(&models.Reservation{
		Code: "AB12CD34", FlightID: 3, PassengerID: 5, CabinClass: models.CabinEconomy,
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "seat decrement must roll back with the failed insert")
}

func cancelSelectRows(status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "code", "flight_id", "passenger_id", "seat_label", "cabin_class", "price", "status", "created_at",
	}).AddRow(11, "AB12CD34", 3, 5, "12C", models.CabinEconomy, 149.99, status, time.Now())
}

func TestCancelReservationReleasesSeat(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, code, flight_id`).
		WithArgs(int64(11)).
		WillReturnRows(cancelSelectRows(models.ReservationConfirmed))
	mock.ExpectExec(`UPDATE reservations SET status`).
		WithArgs(models.ReservationCancelled, int64(11), models.ReservationConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE flights`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, released, err := db.CancelReservation(11)

	require.NoError(t, err)
	assert.True(t, released)
	assert.Equal(t, models.ReservationCancelled, res.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelReservationAlreadyCancelled(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, code, flight_id`).
		WithArgs(int64(11)).
		WillReturnRows(cancelSelectRows(models.ReservationCancelled))
	mock.ExpectRollback()

	res, released, err := db.CancelReservation(11)

	require.NoError(t, err)
	assert.False(t, released, "second cancel must not touch the seat ledger")
	assert.Equal(t, models.ReservationCancelled, res.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelReservationNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, code, flight_id`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "code", "flight_id", "passenger_id", "seat_label", "cabin_class", "price", "status", "created_at",
		}))
	mock.ExpectRollback()

	_, _, err := db.CancelReservation(99)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
