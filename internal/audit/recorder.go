// Package audit records who did what to which record. Entries are
// fire-and-forget: a failed write must never abort the business operation
// it describes, so failures are logged to the operator console and
// swallowed.
package audit

import (
	"encoding/json"
	"log"

	"flight-management-system/internal/database"
	"flight-management-system/internal/models"
)

// Event is one lifecycle event to be recorded.
type Event struct {
	ActorID       *int64
	Action        string
	Entity        string
	EntityID      int64
	Details       map[string]string
	OriginAddress string
}

// Recorder appends immutable audit records.
type Recorder interface {
	Record(e Event)
}

// SQLRecorder writes audit events to the audit_log table.
type SQLRecorder struct {
	db *database.DB
}

func NewSQLRecorder(db *database.DB) *SQLRecorder {
	return &SQLRecorder{db: db}
}

func (r *SQLRecorder) Record(e Event) {
	var details string
	if len(e.Details) > 0 {
		b, err := json.Marshal(e.Details)
		if err != nil {
			log.Printf("audit: failed to encode details: %v", err)
		} else {
			details = string(b)
		}
	}

	entry := &models.AuditEntry{
		ActorID:       e.ActorID,
		Action:        e.Action,
		Entity:        e.Entity,
		EntityID:      e.EntityID,
		Details:       details,
		OriginAddress: e.OriginAddress,
	}

	if err := r.db.InsertAuditEntry(entry); err != nil {
		log.Printf("audit: failed to record %s on %s/%d: %v", e.Action, e.Entity, e.EntityID, err)
	}
}
