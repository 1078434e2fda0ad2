package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"

	"flight-management-system/internal/audit"
	"flight-management-system/internal/auth"
	"flight-management-system/internal/database"
	"flight-management-system/internal/metrics"
	"flight-management-system/internal/models"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 8

	// Collisions on an 8-character code are vanishingly rare, but the
	// unique constraint can still fire; a few retries cover it.
	maxCodeAttempts = 5
)

// newReservationCode draws a uniform random 8-character uppercase
// alphanumeric code.
func newReservationCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reservation code: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// ListReservations returns all reservations, newest first.
func (s *Service) ListReservations(actor *models.Actor) ([]models.Reservation, error) {
	if err := allow(actor, auth.OpViewReservations); err != nil {
		return nil, err
	}
	return s.store.ListReservations()
}

// GetReservation returns one reservation.
func (s *Service) GetReservation(actor *models.Actor, id int64) (*models.Reservation, error) {
	if err := allow(actor, auth.OpViewReservations); err != nil {
		return nil, err
	}
	return s.store.GetReservation(id)
}

// BookableFlights returns the scheduled flights with seats left, for the
// reservation form.
func (s *Service) BookableFlights(actor *models.Actor) ([]models.Flight, error) {
	if err := allow(actor, auth.OpCreateReservation); err != nil {
		return nil, err
	}
	return s.store.ListBookableFlights()
}

// CreateReservation books a seat: it generates a unique code, takes one
// seat from the flight's inventory and inserts the confirmed reservation
// row, all inside one storage transaction. If the seat cannot be taken no
// row is written; if the row cannot be written the seat count rolls back.
func (s *Service) CreateReservation(actor *models.Actor, origin string, req *models.ReservationRequest) (*models.Reservation, error) {
	if err := allow(actor, auth.OpCreateReservation); err != nil {
		return nil, err
	}

	if req.FlightID <= 0 || req.PassengerID <= 0 {
		return nil, invalidf("flightId and passengerId are required")
	}
	if req.CabinClass == "" {
		req.CabinClass = models.CabinEconomy
	}
	if !models.ValidCabinClass(req.CabinClass) {
		return nil, invalidf("unknown cabin class %q", req.CabinClass)
	}
	if req.Price < 0 {
		return nil, invalidf("price must not be negative")
	}

	var res *models.Reservation
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := newReservationCode()
		if err != nil {
			return nil, err
		}

		res = &models.Reservation{
			Code:        code,
			FlightID:    req.FlightID,
			PassengerID: req.PassengerID,
			SeatLabel:   req.SeatLabel,
			CabinClass:  req.CabinClass,
			Price:       req.Price,
		}

		err = s.store.CreateReservation(res)
		if err == nil {
			break
		}
		if errors.Is(err, database.ErrDuplicateKey) {
			res = nil
			continue // code collision, draw again
		}
		if errors.Is(err, database.ErrNoSeatsAvailable) {
			metrics.SeatConflicts.Inc()
		}
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("failed to allocate a unique reservation code")
	}

	metrics.ReservationsCreated.Inc()
	s.audit.Record(audit.Event{
		ActorID:  &actor.ID,
		Action:   models.ActionCreate,
		Entity:   "reservations",
		EntityID: res.ID,
		Details: map[string]string{
			"code":        res.Code,
			"flightId":    strconv.FormatInt(res.FlightID, 10),
			"passengerId": strconv.FormatInt(res.PassengerID, 10),
			"seatLabel":   res.SeatLabel,
			"cabinClass":  res.CabinClass,
			"price":       strconv.FormatFloat(res.Price, 'f', 2, 64),
		},
		OriginAddress: origin,
	})

	return res, nil
}

// CancelReservation marks a reservation cancelled and releases its seat.
// Cancelling twice is a no-op success: the seat is released and the audit
// event emitted only the first time.
func (s *Service) CancelReservation(actor *models.Actor, origin string, id int64) (*models.Reservation, error) {
	if err := allow(actor, auth.OpCancelReservation); err != nil {
		return nil, err
	}

	res, released, err := s.store.CancelReservation(id)
	if err != nil {
		return nil, err
	}

	if released {
		metrics.ReservationsCancelled.Inc()
		s.audit.Record(audit.Event{
			ActorID:       &actor.ID,
			Action:        models.ActionCancel,
			Entity:        "reservations",
			EntityID:      res.ID,
			Details:       map[string]string{"code": res.Code},
			OriginAddress: origin,
		})
	}

	return res, nil
}
