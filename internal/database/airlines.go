package database

import (
	"database/sql"
	"fmt"

	"flight-management-system/internal/models"
)

// CreateAirline inserts an airline. Codes are unique.
func (db *DB) CreateAirline(a *models.Airline) error {
	result, err := db.Exec(`
		INSERT INTO airlines (code, name, country, founded_date, active)
		VALUES (?, ?, ?, ?, ?)
	`, a.Code, a.Name, a.Country, a.FoundedDate, a.Active)
	if err != nil {
		return mapInsertErr(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get airline id: %w", err)
	}
	a.ID = id

	return nil
}

// GetAirline retrieves an airline by ID.
func (db *DB) GetAirline(id int64) (*models.Airline, error) {
	var a models.Airline
	err := db.QueryRow(`
		SELECT id, code, name, country, founded_date, active
		FROM airlines
		WHERE id = ?
	`, id).Scan(&a.ID, &a.Code, &a.Name, &a.Country, &a.FoundedDate, &a.Active)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get airline: %w", err)
	}

	return &a, nil
}

// ListAirlines retrieves all airlines ordered by name.
func (db *DB) ListAirlines() ([]models.Airline, error) {
	rows, err := db.Query(`
		SELECT id, code, name, country, founded_date, active
		FROM airlines
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query airlines: %w", err)
	}
	defer rows.Close()

	var airlines []models.Airline
	for rows.Next() {
		var a models.Airline
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.Country, &a.FoundedDate, &a.Active); err != nil {
			return nil, fmt.Errorf("failed to scan airline: %w", err)
		}
		airlines = append(airlines, a)
	}

	return airlines, rows.Err()
}

// UpdateAirline overwrites an airline's fields.
func (db *DB) UpdateAirline(a *models.Airline) error {
	result, err := db.Exec(`
		UPDATE airlines
		SET code = ?, name = ?, country = ?, founded_date = ?, active = ?
		WHERE id = ?
	`, a.Code, a.Name, a.Country, a.FoundedDate, a.Active, a.ID)
	if err != nil {
		return mapInsertErr(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		var exists int
		if err := db.QueryRow("SELECT 1 FROM airlines WHERE id = ?", a.ID).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		}
	}

	return nil
}

// DeleteAirline removes an airline. It fails with ErrReferentialConflict
// while the airline owns any flight.
func (db *DB) DeleteAirline(id int64) error {
	var flights int
	err := db.QueryRow("SELECT COUNT(*) FROM flights WHERE airline_id = ?", id).Scan(&flights)
	if err != nil {
		return fmt.Errorf("failed to count flights: %w", err)
	}
	if flights > 0 {
		return ErrReferentialConflict
	}

	result, err := db.Exec("DELETE FROM airlines WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete airline: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
