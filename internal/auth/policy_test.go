package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flight-management-system/internal/models"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		op         Operation
		admin      bool
		supervisor bool
		agent      bool
		viewer     bool
	}{
		{OpViewFlights, true, true, true, false},
		{OpViewPassengers, true, true, true, false},
		{OpViewReservations, true, true, true, false},
		{OpViewAirlines, true, true, false, false},
		{OpViewAuditLog, true, true, false, false},
		{OpCreateFlight, true, true, false, false},
		{OpEditFlight, true, true, false, false},
		{OpDeleteFlight, true, false, false, false},
		{OpCreatePassenger, true, true, true, false},
		{OpEditPassenger, true, true, true, false},
		{OpDeletePassenger, true, false, false, false},
		{OpCreateAirline, true, true, false, false},
		{OpEditAirline, true, true, false, false},
		{OpDeleteAirline, true, false, false, false},
		{OpCreateReservation, true, true, true, false},
		{OpCancelReservation, true, true, true, false},
		{OpManageUsers, true, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			assert.Equal(t, tt.admin, Allowed(models.RoleAdmin, tt.op), "admin")
			assert.Equal(t, tt.supervisor, Allowed(models.RoleSupervisor, tt.op), "supervisor")
			assert.Equal(t, tt.agent, Allowed(models.RoleAgent, tt.op), "agent")
			assert.Equal(t, tt.viewer, Allowed(models.RoleViewer, tt.op), "viewer")
		})
	}
}

func TestAllowedUnknown(t *testing.T) {
	assert.False(t, Allowed("superuser", OpViewFlights))
	assert.False(t, Allowed("", OpViewFlights))
	assert.False(t, Allowed(models.RoleAdmin, Operation("launch_missiles")))
}
