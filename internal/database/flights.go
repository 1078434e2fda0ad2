package database

import (
	"database/sql"
	"fmt"

	"flight-management-system/internal/models"
)

// CreateFlight inserts a flight. Available seats start equal to capacity.
func (db *DB) CreateFlight(f *models.Flight) error {
	result, err := db.Exec(`
		INSERT INTO flights (flight_number, airline_id, origin, destination,
		                     departs_at, arrives_at, status, capacity, available_seats)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, f.FlightNumber, f.AirlineID, f.Origin, f.Destination,
		f.DepartsAt, f.ArrivesAt, f.Status, f.Capacity, f.Capacity)
	if err != nil {
		return mapInsertErr(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get flight id: %w", err)
	}
	f.ID = id
	f.AvailableSeats = f.Capacity

	return nil
}

// GetFlight retrieves a flight by ID with airline display fields.
func (db *DB) GetFlight(id int64) (*models.Flight, error) {
	var f models.Flight
	err := db.QueryRow(`
		SELECT f.id, f.flight_number, f.airline_id, a.code, a.name,
		       f.origin, f.destination, f.departs_at, f.arrives_at,
		       f.status, f.capacity, f.available_seats
		FROM flights f
		JOIN airlines a ON f.airline_id = a.id
		WHERE f.id = ?
	`, id).Scan(&f.ID, &f.FlightNumber, &f.AirlineID, &f.AirlineCode, &f.AirlineName,
		&f.Origin, &f.Destination, &f.DepartsAt, &f.ArrivesAt,
		&f.Status, &f.Capacity, &f.AvailableSeats)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	return &f, nil
}

// ListFlights retrieves all flights ordered by departure time.
func (db *DB) ListFlights() ([]models.Flight, error) {
	rows, err := db.Query(`
		SELECT f.id, f.flight_number, f.airline_id, a.code, a.name,
		       f.origin, f.destination, f.departs_at, f.arrives_at,
		       f.status, f.capacity, f.available_seats
		FROM flights f
		JOIN airlines a ON f.airline_id = a.id
		ORDER BY f.departs_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	return scanFlights(rows)
}

// ListBookableFlights retrieves scheduled flights that still have seats,
// for the reservation form.
func (db *DB) ListBookableFlights() ([]models.Flight, error) {
	rows, err := db.Query(`
		SELECT f.id, f.flight_number, f.airline_id, a.code, a.name,
		       f.origin, f.destination, f.departs_at, f.arrives_at,
		       f.status, f.capacity, f.available_seats
		FROM flights f
		JOIN airlines a ON f.airline_id = a.id
		WHERE f.status = ? AND f.available_seats > 0
		ORDER BY f.departs_at
	`, models.FlightScheduled)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	return scanFlights(rows)
}

func scanFlights(rows *sql.Rows) ([]models.Flight, error) {
	var flights []models.Flight
	for rows.Next() {
		var f models.Flight
		if err := rows.Scan(&f.ID, &f.FlightNumber, &f.AirlineID, &f.AirlineCode, &f.AirlineName,
			&f.Origin, &f.Destination, &f.DepartsAt, &f.ArrivesAt,
			&f.Status, &f.Capacity, &f.AvailableSeats); err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		flights = append(flights, f)
	}

	return flights, rows.Err()
}

// UpdateFlight overwrites a flight's editable fields. Setting
// available_seats here is a trusted administrative override of the derived
// seat count; the caller clamps it to [0, capacity].
func (db *DB) UpdateFlight(f *models.Flight) error {
	result, err := db.Exec(`
		UPDATE flights
		SET flight_number = ?, airline_id = ?, origin = ?, destination = ?,
		    departs_at = ?, arrives_at = ?, status = ?, capacity = ?, available_seats = ?
		WHERE id = ?
	`, f.FlightNumber, f.AirlineID, f.Origin, f.Destination,
		f.DepartsAt, f.ArrivesAt, f.Status, f.Capacity, f.AvailableSeats, f.ID)
	if err != nil {
		return mapInsertErr(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM flights WHERE id = ?", f.ID).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		}
	}

	return nil
}

// DeleteFlight removes a flight. It fails with ErrReferentialConflict while
// any confirmed reservation points at it; nothing is deleted in that case.
func (db *DB) DeleteFlight(id int64) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var confirmed int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM reservations WHERE flight_id = ? AND status = ?
	`, id, models.ReservationConfirmed).Scan(&confirmed)
	if err != nil {
		return fmt.Errorf("failed to count reservations: %w", err)
	}
	if confirmed > 0 {
		return ErrReferentialConflict
	}

	// Cancelled reservations still reference the flight; drop them with it.
	if _, err := tx.Exec("DELETE FROM reservations WHERE flight_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete reservations: %w", err)
	}

	result, err := tx.Exec("DELETE FROM flights WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete flight: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// ListFlightPassengers retrieves the manifest of passengers holding a
// confirmed reservation on a flight.
func (db *DB) ListFlightPassengers(flightID int64) ([]models.Passenger, error) {
	var exists int
	if err := db.QueryRow("SELECT 1 FROM flights WHERE id = ?", flightID).Scan(&exists); err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to check flight: %w", err)
	}

	rows, err := db.Query(`
		SELECT p.id, p.passport, p.first_name, p.last_name, p.nationality,
		       p.birth_date, p.phone, p.email
		FROM passengers p
		JOIN reservations r ON r.passenger_id = p.id
		WHERE r.flight_id = ? AND r.status = ?
		ORDER BY p.last_name, p.first_name
	`, flightID, models.ReservationConfirmed)
	if err != nil {
		return nil, fmt.Errorf("failed to query manifest: %w", err)
	}
	defer rows.Close()

	return scanPassengers(rows)
}
