// Package auth holds the access-control policy and the session manager.
package auth

import "flight-management-system/internal/models"

// Operation names one permission-gated action. The policy table below is
// advisory: it decides what an actor may do, but the check runs again at
// every operation entry point and a denial is reported as a notice, not an
// error condition.
type Operation string

const (
	OpViewFlights       Operation = "view_flights"
	OpViewPassengers    Operation = "view_passengers"
	OpViewReservations  Operation = "view_reservations"
	OpViewAirlines      Operation = "view_airlines"
	OpViewAuditLog      Operation = "view_audit_log"
	OpCreateFlight      Operation = "create_flight"
	OpEditFlight        Operation = "edit_flight"
	OpDeleteFlight      Operation = "delete_flight"
	OpCreatePassenger   Operation = "create_passenger"
	OpEditPassenger     Operation = "edit_passenger"
	OpDeletePassenger   Operation = "delete_passenger"
	OpCreateAirline     Operation = "create_airline"
	OpEditAirline       Operation = "edit_airline"
	OpDeleteAirline     Operation = "delete_airline"
	OpCreateReservation Operation = "create_reservation"
	OpCancelReservation Operation = "cancel_reservation"
	OpManageUsers       Operation = "manage_users"
)

var policy = map[Operation]map[string]bool{
	OpViewFlights:       {models.RoleAdmin: true, models.RoleSupervisor: true, models.RoleAgent: true},
	OpViewPassengers:    {models.RoleAdmin: true, models.RoleSupervisor: true, models.RoleAgent: true},
	OpViewReservations:  {models.RoleAdmin: true, models.RoleSupervisor: true, models.RoleAgent: true},
	OpViewAirlines:      {models.RoleAdmin: true, models.RoleSupervisor: true},
	OpViewAuditLog:      {models.RoleAdmin: true, models.RoleSupervisor: true},
	OpCreateFlight:      {models.RoleAdmin: true, models.RoleSupervisor: true},
	OpEditFlight:        {models.RoleAdmin: true, models.RoleSupervisor: true},
	OpDeleteFlight:      {models.RoleAdmin: true},
	OpCreatePassenger:   {models.RoleAdmin: true, models.RoleSupervisor: true, models.RoleAgent: true},
	OpEditPassenger:     {models.RoleAdmin: true, models.RoleSupervisor: true, models.RoleAgent: true},
	OpDeletePassenger:   {models.RoleAdmin: true},
	OpCreateAirline:     {models.RoleAdmin: true, models.RoleSupervisor: true},
	OpEditAirline:       {models.RoleAdmin: true, models.RoleSupervisor: true},
	OpDeleteAirline:     {models.RoleAdmin: true},
	OpCreateReservation: {models.RoleAdmin: true, models.RoleSupervisor: true, models.RoleAgent: true},
	OpCancelReservation: {models.RoleAdmin: true, models.RoleSupervisor: true, models.RoleAgent: true},
	OpManageUsers:       {models.RoleAdmin: true},
}

// Allowed reports whether role may perform op. Unknown roles and unknown
// operations are denied.
func Allowed(role string, op Operation) bool {
	roles, ok := policy[op]
	if !ok {
		return false
	}
	return roles[role]
}
