package database

import (
	"database/sql"
	"fmt"

	"flight-management-system/internal/models"
)

// reserveSeat takes one seat from a flight's inventory. The conditional
// update is what keeps two concurrent bookings from both winning the last
// seat: only one of them gets an affected row.
func reserveSeat(tx *sql.Tx, flightID int64) error {
	result, err := tx.Exec(`
		UPDATE flights
		SET available_seats = available_seats - 1
		WHERE id = ? AND available_seats > 0 AND status = ?
	`, flightID, models.FlightScheduled)
	if err != nil {
		return fmt.Errorf("failed to reserve seat: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		var exists int
		err := tx.QueryRow("SELECT 1 FROM flights WHERE id = ?", flightID).Scan(&exists)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check flight: %w", err)
		}
		return ErrNoSeatsAvailable
	}

	return nil
}

// releaseSeat returns one seat to a flight's inventory, clamped so the
// count never exceeds capacity.
func releaseSeat(tx *sql.Tx, flightID int64) error {
	result, err := tx.Exec(`
		UPDATE flights
		SET available_seats = LEAST(available_seats + 1, capacity)
		WHERE id = ?
	`, flightID)
	if err != nil {
		return fmt.Errorf("failed to release seat: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		// The driver reports changed rows, so a clamped no-op update also
		// lands here; distinguish it from a missing flight.
		var exists int
		err := tx.QueryRow("SELECT 1 FROM flights WHERE id = ?", flightID).Scan(&exists)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check flight: %w", err)
		}
	}

	return nil
}

// CreateReservation inserts a confirmed reservation and takes its seat in
// one transaction. If the insert fails the seat decrement rolls back with
// it. Returns ErrNoSeatsAvailable when the flight is full or not in the
// scheduled state, ErrDuplicateReservation when the passenger already holds
// a confirmed reservation on the flight, and ErrDuplicateKey on a
// reservation-code collision.
func (db *DB) CreateReservation(res *models.Reservation) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM reservations
		WHERE flight_id = ? AND passenger_id = ? AND status = ?
	`, res.FlightID, res.PassengerID, models.ReservationConfirmed).Scan(&existing)
	if err != nil {
		return fmt.Errorf("failed to check existing reservation: %w", err)
	}
	if existing > 0 {
		return ErrDuplicateReservation
	}

	var passengerExists int
	err = tx.QueryRow("SELECT 1 FROM passengers WHERE id = ?", res.PassengerID).Scan(&passengerExists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check passenger: %w", err)
	}

	if err := reserveSeat(tx, res.FlightID); err != nil {
		return err
	}

	result, err := tx.Exec(`
		INSERT INTO reservations (code, flight_id, passenger_id, seat_label, cabin_class, price, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, res.Code, res.FlightID, res.PassengerID, res.SeatLabel, res.CabinClass, res.Price, models.ReservationConfirmed)
	if err != nil {
		return mapInsertErr(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get reservation id: %w", err)
	}
	res.ID = id
	res.Status = models.ReservationConfirmed

	if err := tx.QueryRow("SELECT created_at FROM reservations WHERE id = ?", id).Scan(&res.CreatedAt); err != nil {
		return fmt.Errorf("failed to read reservation timestamp: %w", err)
	}

	return tx.Commit()
}

// CancelReservation marks a reservation cancelled and releases its seat in
// one transaction. Cancelling an already-cancelled reservation is a no-op:
// the reservation is returned with released == false and the seat count is
// untouched.
func (db *DB) CancelReservation(id int64) (*models.Reservation, bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var res models.Reservation
	err = tx.QueryRow(`
		SELECT id, code, flight_id, passenger_id, seat_label, cabin_class, price, status, created_at
		FROM reservations
		WHERE id = ?
		FOR UPDATE
	`, id).Scan(&res.ID, &res.Code, &res.FlightID, &res.PassengerID, &res.SeatLabel,
		&res.CabinClass, &res.Price, &res.Status, &res.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, false, ErrNotFound
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get reservation: %w", err)
	}

	if res.Status == models.ReservationCancelled {
		return &res, false, nil
	}

	if _, err := tx.Exec(`
		UPDATE reservations SET status = ? WHERE id = ? AND status = ?
	`, models.ReservationCancelled, id, models.ReservationConfirmed); err != nil {
		return nil, false, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	if err := releaseSeat(tx, res.FlightID); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit: %w", err)
	}

	res.Status = models.ReservationCancelled
	return &res, true, nil
}

// GetReservation retrieves a reservation by ID.
func (db *DB) GetReservation(id int64) (*models.Reservation, error) {
	var res models.Reservation
	err := db.QueryRow(`
		SELECT r.id, r.code, r.flight_id, r.passenger_id, r.seat_label, r.cabin_class,
		       r.price, r.status, r.created_at,
		       f.flight_number, CONCAT(p.first_name, ' ', p.last_name)
		FROM reservations r
		JOIN flights f ON r.flight_id = f.id
		JOIN passengers p ON r.passenger_id = p.id
		WHERE r.id = ?
	`, id).Scan(&res.ID, &res.Code, &res.FlightID, &res.PassengerID, &res.SeatLabel,
		&res.CabinClass, &res.Price, &res.Status, &res.CreatedAt,
		&res.FlightNumber, &res.PassengerName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return &res, nil
}

// ListReservations retrieves all reservations, newest first, with flight
// and passenger display fields joined in.
func (db *DB) ListReservations() ([]models.Reservation, error) {
	rows, err := db.Query(`
		SELECT r.id, r.code, r.flight_id, r.passenger_id, r.seat_label, r.cabin_class,
		       r.price, r.status, r.created_at,
		       f.flight_number, CONCAT(p.first_name, ' ', p.last_name)
		FROM reservations r
		JOIN flights f ON r.flight_id = f.id
		JOIN passengers p ON r.passenger_id = p.id
		ORDER BY r.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		var res models.Reservation
		if err := rows.Scan(&res.ID, &res.Code, &res.FlightID, &res.PassengerID,
			&res.SeatLabel, &res.CabinClass, &res.Price, &res.Status, &res.CreatedAt,
			&res.FlightNumber, &res.PassengerName); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}
