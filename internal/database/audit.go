package database

import (
	"database/sql"
	"fmt"

	"flight-management-system/internal/models"
)

// InsertAuditEntry appends one row to the audit log. The log is append-only;
// nothing in the application updates or deletes it.
func (db *DB) InsertAuditEntry(e *models.AuditEntry) error {
	_, err := db.Exec(`
		INSERT INTO audit_log (actor_id, action, entity, entity_id, details, origin_address)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.ActorID, e.Action, e.Entity, e.EntityID, e.Details, e.OriginAddress)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}

	return nil
}

// ListAuditEntries retrieves the newest limit entries with actor display
// names resolved. Deleted actors show an empty name.
func (db *DB) ListAuditEntries(limit int) ([]models.AuditEntry, error) {
	rows, err := db.Query(`
		SELECT l.id, l.actor_id, COALESCE(u.name, ''), l.action,
		       COALESCE(l.entity, ''), COALESCE(l.entity_id, 0),
		       COALESCE(l.details, ''), COALESCE(l.origin_address, ''), l.at
		FROM audit_log l
		LEFT JOIN users u ON l.actor_id = u.id
		ORDER BY l.at DESC, l.id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		var actorID sql.NullInt64
		if err := rows.Scan(&e.ID, &actorID, &e.ActorName, &e.Action,
			&e.Entity, &e.EntityID, &e.Details, &e.OriginAddress, &e.At); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		if actorID.Valid {
			e.ActorID = &actorID.Int64
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
