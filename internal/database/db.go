package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Sentinel errors for conditions the request boundary branches on
var (
	ErrNotFound             = errors.New("record not found")
	ErrNoSeatsAvailable     = errors.New("no seats available")
	ErrDuplicateKey         = errors.New("duplicate key")
	ErrDuplicateReservation = errors.New("passenger already holds a confirmed reservation on this flight")
	ErrReferentialConflict  = errors.New("record has dependent rows")
)

type DB struct {
	*sql.DB
}

func NewDB(dsn string, maxOpen, maxIdle int) (*DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// isDuplicateEntry reports whether err is a MySQL unique-constraint
// violation (error 1062).
func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// mapInsertErr converts a driver unique-violation into ErrDuplicateKey so
// callers can branch without importing the driver.
func mapInsertErr(err error) error {
	if isDuplicateEntry(err) {
		return ErrDuplicateKey
	}
	return err
}
