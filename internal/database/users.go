package database

import (
	"database/sql"
	"fmt"

	"flight-management-system/internal/models"
)

// GetUserByUsername retrieves an active user for login.
func (db *DB) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	err := db.QueryRow(`
		SELECT id, username, password_hash, name, email, role, active, created_at
		FROM users
		WHERE username = ? AND active = TRUE
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Email,
		&u.Role, &u.Active, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// GetUser retrieves an active user by ID. Used to resolve the session
// identity on each request.
func (db *DB) GetUser(id int64) (*models.User, error) {
	var u models.User
	err := db.QueryRow(`
		SELECT id, username, password_hash, name, email, role, active, created_at
		FROM users
		WHERE id = ? AND active = TRUE
	`, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Email,
		&u.Role, &u.Active, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// ListUsers retrieves all user accounts.
func (db *DB) ListUsers() ([]models.User, error) {
	rows, err := db.Query(`
		SELECT id, username, password_hash, name, email, role, active, created_at
		FROM users
		ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Email,
			&u.Role, &u.Active, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// CreateUser inserts a user account. Usernames are unique.
func (db *DB) CreateUser(u *models.User) error {
	result, err := db.Exec(`
		INSERT INTO users (username, password_hash, name, email, role, active)
		VALUES (?, ?, ?, ?, ?, TRUE)
	`, u.Username, u.PasswordHash, u.Name, u.Email, u.Role)
	if err != nil {
		return mapInsertErr(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user id: %w", err)
	}
	u.ID = id
	u.Active = true

	return nil
}

// DeleteUser removes a user account. The audit log survives the deletion;
// its actor_id foreign key is ON DELETE SET NULL.
func (db *DB) DeleteUser(id int64) error {
	result, err := db.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
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
