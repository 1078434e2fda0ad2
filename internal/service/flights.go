package service

import (
	"strconv"
	"strings"
	"time"

	"flight-management-system/internal/audit"
	"flight-management-system/internal/auth"
	"flight-management-system/internal/models"
)

func parseFlightTimes(req *models.FlightRequest) (departs, arrives time.Time, err error) {
	departs, err = time.Parse(time.RFC3339, req.DepartsAt)
	if err != nil {
		return departs, arrives, invalidf("departsAt must be RFC 3339")
	}
	arrives, err = time.Parse(time.RFC3339, req.ArrivesAt)
	if err != nil {
		return departs, arrives, invalidf("arrivesAt must be RFC 3339")
	}
	if !arrives.After(departs) {
		return departs, arrives, invalidf("arrival must be after departure")
	}
	return departs, arrives, nil
}

func validateFlightRequest(req *models.FlightRequest) error {
	if strings.TrimSpace(req.FlightNumber) == "" {
		return invalidf("flightNumber is required")
	}
	if req.AirlineID <= 0 {
		return invalidf("airlineId is required")
	}
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return invalidf("origin and destination are required")
	}
	if req.Capacity <= 0 {
		return invalidf("capacity must be positive")
	}
	return nil
}

// ListFlights returns all flights.
func (s *Service) ListFlights(actor *models.Actor) ([]models.Flight, error) {
	if err := allow(actor, auth.OpViewFlights); err != nil {
		return nil, err
	}
	return s.store.ListFlights()
}

// GetFlight returns one flight.
func (s *Service) GetFlight(actor *models.Actor, id int64) (*models.Flight, error) {
	if err := allow(actor, auth.OpViewFlights); err != nil {
		return nil, err
	}
	return s.store.GetFlight(id)
}

// FlightManifest returns the passengers with a confirmed reservation on a
// flight.
func (s *Service) FlightManifest(actor *models.Actor, flightID int64) ([]models.Passenger, error) {
	if err := allow(actor, auth.OpViewFlights); err != nil {
		return nil, err
	}
	return s.store.ListFlightPassengers(flightID)
}

// CreateFlight adds a flight with a full inventory of available seats.
func (s *Service) CreateFlight(actor *models.Actor, origin string, req *models.FlightRequest) (*models.Flight, error) {
	if err := allow(actor, auth.OpCreateFlight); err != nil {
		return nil, err
	}
	if err := validateFlightRequest(req); err != nil {
		return nil, err
	}
	departs, arrives, err := parseFlightTimes(req)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.FlightScheduled
	}
	if !models.ValidFlightStatus(status) {
		return nil, invalidf("unknown flight status %q", status)
	}

	airline, err := s.store.GetAirline(req.AirlineID)
	if err != nil {
		return nil, err
	}
	if !airline.Active {
		return nil, invalidf("airline %s is not active", airline.Code)
	}

	f := &models.Flight{
		FlightNumber: strings.ToUpper(strings.TrimSpace(req.FlightNumber)),
		AirlineID:    req.AirlineID,
		Origin:       strings.TrimSpace(req.Origin),
		Destination:  strings.TrimSpace(req.Destination),
		DepartsAt:    departs,
		ArrivesAt:    arrives,
		Status:       status,
		Capacity:     req.Capacity,
	}
	if err := s.store.CreateFlight(f); err != nil {
		return nil, err
	}

	s.audit.Record(audit.Event{
		ActorID:  &actor.ID,
		Action:   models.ActionCreate,
		Entity:   "flights",
		EntityID: f.ID,
		Details: map[string]string{
			"flightNumber": f.FlightNumber,
			"airlineId":    strconv.FormatInt(f.AirlineID, 10),
			"origin":       f.Origin,
			"destination":  f.Destination,
			"capacity":     strconv.Itoa(f.Capacity),
		},
		OriginAddress: origin,
	})

	return f, nil
}

// UpdateFlight overwrites a flight. A submitted availableSeats value is a
// trusted administrative override of the ledger, clamped to [0, capacity];
// when omitted the current count is preserved.
func (s *Service) UpdateFlight(actor *models.Actor, origin string, id int64, req *models.FlightRequest) (*models.Flight, error) {
	if err := allow(actor, auth.OpEditFlight); err != nil {
		return nil, err
	}
	if err := validateFlightRequest(req); err != nil {
		return nil, err
	}
	departs, arrives, err := parseFlightTimes(req)
	if err != nil {
		return nil, err
	}

	current, err := s.store.GetFlight(id)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = current.Status
	}
	if !models.ValidFlightStatus(status) {
		return nil, invalidf("unknown flight status %q", status)
	}

	available := current.AvailableSeats
	if req.AvailableSeats != nil {
		available = *req.AvailableSeats
	}
	if available < 0 {
		available = 0
	}
	if available > req.Capacity {
		available = req.Capacity
	}

	f := &models.Flight{
		ID:             id,
		FlightNumber:   strings.ToUpper(strings.TrimSpace(req.FlightNumber)),
		AirlineID:      req.AirlineID,
		Origin:         strings.TrimSpace(req.Origin),
		Destination:    strings.TrimSpace(req.Destination),
		DepartsAt:      departs,
		ArrivesAt:      arrives,
		Status:         status,
		Capacity:       req.Capacity,
		AvailableSeats: available,
	}
	if err := s.store.UpdateFlight(f); err != nil {
		return nil, err
	}

	s.audit.Record(audit.Event{
		ActorID:  &actor.ID,
		Action:   models.ActionUpdate,
		Entity:   "flights",
		EntityID: id,
		Details: map[string]string{
			"flightNumber":   f.FlightNumber,
			"status":         f.Status,
			"capacity":       strconv.Itoa(f.Capacity),
			"availableSeats": strconv.Itoa(f.AvailableSeats),
		},
		OriginAddress: origin,
	})

	return f, nil
}

// DeleteFlight removes a flight unless it still has confirmed
// reservations.
func (s *Service) DeleteFlight(actor *models.Actor, origin string, id int64) error {
	if err := allow(actor, auth.OpDeleteFlight); err != nil {
		return err
	}

	f, err := s.store.GetFlight(id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteFlight(id); err != nil {
		return err
	}

	s.audit.Record(audit.Event{
		ActorID:       &actor.ID,
		Action:        models.ActionDelete,
		Entity:        "flights",
		EntityID:      id,
		Details:       map[string]string{"flightNumber": f.FlightNumber},
		OriginAddress: origin,
	})

	return nil
}
