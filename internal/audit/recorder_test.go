package audit

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-management-system/internal/database"
	"flight-management-system/internal/models"
)

func newRecorder(t *testing.T) (*SQLRecorder, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewSQLRecorder(&database.DB{DB: conn}), mock
}

func TestRecordWritesDetailsAsJSON(t *testing.T) {
	rec, mock := newRecorder(t)

	actorID := int64(1)
	mock.ExpectExec(`INSERT INTO audit_log`).
		WithArgs(actorID, models.ActionCreate, "reservations", int64(11),
			`{"code":"AB12CD34"}`, "10.0.0.1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec.Record(Event{
		ActorID:       &actorID,
		Action:        models.ActionCreate,
		Entity:        "reservations",
		EntityID:      11,
		Details:       map[string]string{"code": "AB12CD34"},
		OriginAddress: "10.0.0.1",
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSwallowsInsertFailure(t *testing.T) {
	rec, mock := newRecorder(t)

	mock.ExpectExec(`INSERT INTO audit_log`).
		WillReturnError(errors.New("table is full"))

	// Must not panic or surface the error; audit failures never abort the
	// operation being described.
	rec.Record(Event{Action: models.ActionDelete, Entity: "flights", EntityID: 7})

	assert.NoError(t, mock.ExpectationsWereMet())
}
