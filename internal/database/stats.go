package database

import (
	"fmt"

	"flight-management-system/internal/models"
)

// GetDashboardStats computes the landing-page aggregates: today's flights,
// passengers flying today, active airlines, today's reservations and the
// next five departures.
func (db *DB) GetDashboardStats() (*models.DashboardStats, error) {
	var stats models.DashboardStats

	err := db.QueryRow(`
		SELECT COUNT(*) FROM flights WHERE DATE(departs_at) = CURDATE()
	`).Scan(&stats.FlightsToday)
	if err != nil {
		return nil, fmt.Errorf("failed to count flights today: %w", err)
	}

	err = db.QueryRow(`
		SELECT COUNT(DISTINCT p.id)
		FROM passengers p
		JOIN reservations r ON p.id = r.passenger_id
		JOIN flights f ON r.flight_id = f.id
		WHERE DATE(f.departs_at) = CURDATE() AND r.status = ?
	`, models.ReservationConfirmed).Scan(&stats.PassengersToday)
	if err != nil {
		return nil, fmt.Errorf("failed to count passengers today: %w", err)
	}

	err = db.QueryRow(`
		SELECT COUNT(*) FROM airlines WHERE active = TRUE
	`).Scan(&stats.ActiveAirlines)
	if err != nil {
		return nil, fmt.Errorf("failed to count airlines: %w", err)
	}

	err = db.QueryRow(`
		SELECT COUNT(*) FROM reservations WHERE DATE(created_at) = CURDATE()
	`).Scan(&stats.ReservationsToday)
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations today: %w", err)
	}

	rows, err := db.Query(`
		SELECT f.id, f.flight_number, f.airline_id, a.code, a.name,
		       f.origin, f.destination, f.departs_at, f.arrives_at,
		       f.status, f.capacity, f.available_seats
		FROM flights f
		JOIN airlines a ON f.airline_id = a.id
		WHERE f.departs_at >= NOW()
		ORDER BY f.departs_at
		LIMIT 5
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming flights: %w", err)
	}
	defer rows.Close()

	upcoming, err := scanFlights(rows)
	if err != nil {
		return nil, err
	}
	stats.UpcomingFlights = upcoming

	return &stats, nil
}
