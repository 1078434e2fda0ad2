package models

import "time"

// User roles
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleAgent      = "agent"
	RoleViewer     = "viewer"
)

// Flight statuses
const (
	FlightScheduled = "scheduled"
	FlightAirborne  = "airborne"
	FlightLanded    = "landed"
	FlightCancelled = "cancelled"
)

// Reservation statuses
const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Cabin classes
const (
	CabinEconomy  = "economy"
	CabinBusiness = "business"
	CabinFirst    = "first"
)

// Audit actions
const (
	ActionLogin  = "LOGIN"
	ActionLogout = "LOGOUT"
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionCancel = "CANCEL"
)

// ValidRole reports whether r is one of the four known roles.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleAgent, RoleViewer:
		return true
	}
	return false
}

// ValidFlightStatus reports whether s is a known flight status.
func ValidFlightStatus(s string) bool {
	switch s {
	case FlightScheduled, FlightAirborne, FlightLanded, FlightCancelled:
		return true
	}
	return false
}

// ValidCabinClass reports whether c is a known cabin class.
func ValidCabinClass(c string) bool {
	switch c {
	case CabinEconomy, CabinBusiness, CabinFirst:
		return true
	}
	return false
}

// Actor is the authenticated identity performing an operation.
// Handlers resolve it from the session; the service layer only ever
// sees this opaque value.
type Actor struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Airline represents a carrier that owns flights.
type Airline struct {
	ID          int64      `json:"id" db:"id"`
	Code        string     `json:"code" db:"code"`
	Name        string     `json:"name" db:"name"`
	Country     string     `json:"country" db:"country"`
	FoundedDate *time.Time `json:"foundedDate,omitempty" db:"founded_date"`
	Active      bool       `json:"active" db:"active"`
}

// Flight represents a scheduled flight and its seat inventory.
// AvailableSeats is maintained by the reservation lifecycle; a direct
// administrative edit is a trusted override.
type Flight struct {
	ID             int64     `json:"id" db:"id"`
	FlightNumber   string    `json:"flightNumber" db:"flight_number"`
	AirlineID      int64     `json:"airlineId" db:"airline_id"`
	AirlineCode    string    `json:"airlineCode,omitempty" db:"airline_code"`
	AirlineName    string    `json:"airlineName,omitempty" db:"airline_name"`
	Origin         string    `json:"origin" db:"origin"`
	Destination    string    `json:"destination" db:"destination"`
	DepartsAt      time.Time `json:"departsAt" db:"departs_at"`
	ArrivesAt      time.Time `json:"arrivesAt" db:"arrives_at"`
	Status         string    `json:"status" db:"status"`
	Capacity       int       `json:"capacity" db:"capacity"`
	AvailableSeats int       `json:"availableSeats" db:"available_seats"`
}

// Passenger represents a traveller who may hold reservations.
type Passenger struct {
	ID          int64      `json:"id" db:"id"`
	Passport    string     `json:"passport" db:"passport"`
	FirstName   string     `json:"firstName" db:"first_name"`
	LastName    string     `json:"lastName" db:"last_name"`
	Nationality string     `json:"nationality" db:"nationality"`
	BirthDate   *time.Time `json:"birthDate,omitempty" db:"birth_date"`
	Phone       string     `json:"phone" db:"phone"`
	Email       string     `json:"email" db:"email"`
}

// Reservation represents a confirmed or cancelled seat booking.
// Once cancelled it is terminal; there is no re-confirmation.
type Reservation struct {
	ID          int64     `json:"id" db:"id"`
	Code        string    `json:"code" db:"code"`
	FlightID    int64     `json:"flightId" db:"flight_id"`
	PassengerID int64     `json:"passengerId" db:"passenger_id"`
	SeatLabel   string    `json:"seatLabel" db:"seat_label"`
	CabinClass  string    `json:"cabinClass" db:"cabin_class"`
	Price       float64   `json:"price" db:"price"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Joined display fields, populated by listing queries.
	FlightNumber  string `json:"flightNumber,omitempty" db:"flight_number"`
	PassengerName string `json:"passengerName,omitempty" db:"passenger_name"`
}

// User is an account that can authenticate against the system.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Role         string    `json:"role" db:"role"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// AuditEntry is one immutable row of the audit log. ActorID is nullable
// because the acting user may have been deleted since.
type AuditEntry struct {
	ID            int64     `json:"id" db:"id"`
	ActorID       *int64    `json:"actorId,omitempty" db:"actor_id"`
	ActorName     string    `json:"actorName,omitempty" db:"actor_name"`
	Action        string    `json:"action" db:"action"`
	Entity        string    `json:"entity" db:"entity"`
	EntityID      int64     `json:"entityId" db:"entity_id"`
	Details       string    `json:"details" db:"details"`
	OriginAddress string    `json:"originAddress" db:"origin_address"`
	At            time.Time `json:"at" db:"at"`
}

// DashboardStats is the aggregate view shown after login.
type DashboardStats struct {
	FlightsToday      int      `json:"flightsToday"`
	PassengersToday   int      `json:"passengersToday"`
	ActiveAirlines    int      `json:"activeAirlines"`
	ReservationsToday int      `json:"reservationsToday"`
	UpcomingFlights   []Flight `json:"upcomingFlights"`
}

// API request/response models

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AirlineRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	FoundedDate string `json:"foundedDate,omitempty"` // YYYY-MM-DD
	Active      *bool  `json:"active,omitempty"`
}

type FlightRequest struct {
	FlightNumber   string `json:"flightNumber"`
	AirlineID      int64  `json:"airlineId"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	DepartsAt      string `json:"departsAt"` // RFC 3339
	ArrivesAt      string `json:"arrivesAt"`
	Status         string `json:"status,omitempty"`
	Capacity       int    `json:"capacity"`
	AvailableSeats *int   `json:"availableSeats,omitempty"` // trusted override on edit
}

type PassengerRequest struct {
	Passport    string `json:"passport"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Nationality string `json:"nationality"`
	BirthDate   string `json:"birthDate,omitempty"` // YYYY-MM-DD
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

type ReservationRequest struct {
	FlightID    int64   `json:"flightId"`
	PassengerID int64   `json:"passengerId"`
	SeatLabel   string  `json:"seatLabel"`
	CabinClass  string  `json:"cabinClass"`
	Price       float64 `json:"price"`
}

type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ErrorResponse is the JSON body for every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body for 2xx replies that carry no entity.
type MessageResponse struct {
	Message string `json:"message"`
}
