package database

import (
	"database/sql"
	"fmt"

	"flight-management-system/internal/models"
)

// CreatePassenger inserts a passenger. Passport numbers are unique.
func (db *DB) CreatePassenger(p *models.Passenger) error {
	result, err := db.Exec(`
		INSERT INTO passengers (passport, first_name, last_name, nationality, birth_date, phone, email)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.Passport, p.FirstName, p.LastName, p.Nationality, p.BirthDate, p.Phone, p.Email)
	if err != nil {
		return mapInsertErr(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get passenger id: %w", err)
	}
	p.ID = id

	return nil
}

// GetPassenger retrieves a passenger by ID.
func (db *DB) GetPassenger(id int64) (*models.Passenger, error) {
	var p models.Passenger
	err := db.QueryRow(`
		SELECT id, passport, first_name, last_name, nationality, birth_date, phone, email
		FROM passengers
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Passport, &p.FirstName, &p.LastName, &p.Nationality,
		&p.BirthDate, &p.Phone, &p.Email)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}

	return &p, nil
}

// ListPassengers retrieves all passengers ordered by name.
func (db *DB) ListPassengers() ([]models.Passenger, error) {
	rows, err := db.Query(`
		SELECT id, passport, first_name, last_name, nationality, birth_date, phone, email
		FROM passengers
		ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query passengers: %w", err)
	}
	defer rows.Close()

	return scanPassengers(rows)
}

func scanPassengers(rows *sql.Rows) ([]models.Passenger, error) {
	var passengers []models.Passenger
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.Passport, &p.FirstName, &p.LastName,
			&p.Nationality, &p.BirthDate, &p.Phone, &p.Email); err != nil {
			return nil, fmt.Errorf("failed to scan passenger: %w", err)
		}
		passengers = append(passengers, p)
	}

	return passengers, rows.Err()
}

// UpdatePassenger overwrites a passenger's fields.
func (db *DB) UpdatePassenger(p *models.Passenger) error {
	result, err := db.Exec(`
		UPDATE passengers
		SET passport = ?, first_name = ?, last_name = ?, nationality = ?,
		    birth_date = ?, phone = ?, email = ?
		WHERE id = ?
	`, p.Passport, p.FirstName, p.LastName, p.Nationality, p.BirthDate, p.Phone, p.Email, p.ID)
	if err != nil {
		return mapInsertErr(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM passengers WHERE id = ?", p.ID).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		}
	}

	return nil
}

// DeletePassenger removes a passenger. It fails with ErrReferentialConflict
// while the passenger holds any confirmed reservation.
func (db *DB) DeletePassenger(id int64) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var confirmed int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM reservations WHERE passenger_id = ? AND status = ?
	`, id, models.ReservationConfirmed).Scan(&confirmed)
	if err != nil {
		return fmt.Errorf("failed to count reservations: %w", err)
	}
	if confirmed > 0 {
		return ErrReferentialConflict
	}

	if _, err := tx.Exec("DELETE FROM reservations WHERE passenger_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete reservations: %w", err)
	}

	result, err := tx.Exec("DELETE FROM passengers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete passenger: %w", err)
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
