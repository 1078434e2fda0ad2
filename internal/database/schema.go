package database

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100),
		role ENUM('admin', 'supervisor', 'agent', 'viewer') NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS airlines (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		code VARCHAR(3) NOT NULL UNIQUE,
		name VARCHAR(100) NOT NULL,
		country VARCHAR(50),
		founded_date DATE,
		active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS flights (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		flight_number VARCHAR(10) NOT NULL UNIQUE,
		airline_id BIGINT NOT NULL,
		origin VARCHAR(100) NOT NULL,
		destination VARCHAR(100) NOT NULL,
		departs_at DATETIME NOT NULL,
		arrives_at DATETIME NOT NULL,
		status ENUM('scheduled', 'airborne', 'landed', 'cancelled') NOT NULL DEFAULT 'scheduled',
		capacity INT NOT NULL,
		available_seats INT NOT NULL,
		CONSTRAINT fk_flights_airline FOREIGN KEY (airline_id) REFERENCES airlines(id) ON DELETE RESTRICT,
		CONSTRAINT chk_seats CHECK (available_seats >= 0 AND available_seats <= capacity)
	)`,
	`CREATE TABLE IF NOT EXISTS passengers (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		passport VARCHAR(20) NOT NULL UNIQUE,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		nationality VARCHAR(50),
		birth_date DATE,
		phone VARCHAR(20),
		email VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		code VARCHAR(10) NOT NULL UNIQUE,
		flight_id BIGINT NOT NULL,
		passenger_id BIGINT NOT NULL,
		seat_label VARCHAR(5),
		cabin_class ENUM('economy', 'business', 'first') NOT NULL DEFAULT 'economy',
		price DECIMAL(10,2),
		status ENUM('confirmed', 'cancelled') NOT NULL DEFAULT 'confirmed',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_reservations_flight FOREIGN KEY (flight_id) REFERENCES flights(id) ON DELETE RESTRICT,
		CONSTRAINT fk_reservations_passenger FOREIGN KEY (passenger_id) REFERENCES passengers(id) ON DELETE RESTRICT,
		INDEX idx_reservations_flight_passenger (flight_id, passenger_id)
	)`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		actor_id BIGINT,
		action VARCHAR(50) NOT NULL,
		entity VARCHAR(50),
		entity_id BIGINT,
		details TEXT,
		origin_address VARCHAR(45),
		at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_audit_actor FOREIGN KEY (actor_id) REFERENCES users(id) ON DELETE SET NULL
	)`,
}

// InitSchema creates all tables if they do not exist.
func (db *DB) InitSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// SeedDemoData loads the demo accounts, airlines, flights and passengers.
// Inserts are idempotent on their unique keys.
func (db *DB) SeedDemoData() error {
	users := []struct {
		username, password, name, email, role string
	}{
		{"admin", "admin123", "Lead Administrator", "admin@airline.example", "admin"},
		{"supervisor", "supervisor123", "Operations Supervisor", "supervisor@airline.example", "supervisor"},
		{"agent1", "agent123", "Reservations Agent", "agent@airline.example", "agent"},
		{"viewer", "viewer123", "Read Only User", "viewer@airline.example", "viewer"},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if _, err := db.Exec(`
			INSERT IGNORE INTO users (username, password_hash, name, email, role)
			VALUES (?, ?, ?, ?, ?)
		`, u.username, hash, u.name, u.email, u.role); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
	}

	airlines := []struct {
		code, name, country string
	}{
		{"AA", "American Airlines", "USA"},
		{"DL", "Delta Air Lines", "USA"},
		{"UA", "United Airlines", "USA"},
		{"AM", "Aeromexico", "Mexico"},
		{"IB", "Iberia", "Spain"},
		{"LH", "Lufthansa", "Germany"},
		{"AF", "Air France", "France"},
	}
	for _, a := range airlines {
		if _, err := db.Exec(`
			INSERT IGNORE INTO airlines (code, name, country)
			VALUES (?, ?, ?)
		`, a.code, a.name, a.country); err != nil {
			return fmt.Errorf("failed to seed airline %s: %w", a.code, err)
		}
	}

	flights := []struct {
		number, airlineCode, origin, destination string
		departs, arrives                         string
		capacity                                 int
	}{
		{"AA123", "AA", "New York", "Los Angeles", "2025-12-10 08:00:00", "2025-12-10 11:00:00", 180},
		{"DL456", "DL", "Atlanta", "Miami", "2025-12-10 10:30:00", "2025-12-10 12:00:00", 150},
		{"AA789", "AA", "Chicago", "Dallas", "2025-12-10 14:00:00", "2025-12-10 16:30:00", 200},
	}
	for _, f := range flights {
		if _, err := db.Exec(`
			INSERT IGNORE INTO flights (flight_number, airline_id, origin, destination,
			                            departs_at, arrives_at, capacity, available_seats)
			SELECT ?, id, ?, ?, ?, ?, ?, ? FROM airlines WHERE code = ?
		`, f.number, f.origin, f.destination, f.departs, f.arrives,
			f.capacity, f.capacity, f.airlineCode); err != nil {
			return fmt.Errorf("failed to seed flight %s: %w", f.number, err)
		}
	}

	passengers := []struct {
		passport, first, last, nationality, birth, phone, email string
	}{
		{"P12345678", "Juan", "Perez", "Mexico", "1985-05-15", "+525512345678", "juan@email.example"},
		{"US87654321", "Maria", "Gomez", "USA", "1990-08-22", "+13105551212", "maria@email.example"},
		{"E11223344", "Carlos", "Lopez", "Spain", "1978-11-30", "+34123456789", "carlos@email.example"},
	}
	for _, p := range passengers {
		if _, err := db.Exec(`
			INSERT IGNORE INTO passengers (passport, first_name, last_name, nationality, birth_date, phone, email)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, p.passport, p.first, p.last, p.nationality, p.birth, p.phone, p.email); err != nil {
			return fmt.Errorf("failed to seed passenger %s: %w", p.passport, err)
		}
	}

	return nil
}
