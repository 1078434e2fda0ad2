package service

import (
	"strings"
	"time"

	"flight-management-system/internal/audit"
	"flight-management-system/internal/auth"
	"flight-management-system/internal/models"
)

func passengerFromRequest(req *models.PassengerRequest) (*models.Passenger, error) {
	if strings.TrimSpace(req.Passport) == "" {
		return nil, invalidf("passport is required")
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, invalidf("firstName and lastName are required")
	}

	p := &models.Passenger{
		Passport:    strings.ToUpper(strings.TrimSpace(req.Passport)),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Nationality: strings.TrimSpace(req.Nationality),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.TrimSpace(req.Email),
	}

	if req.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, invalidf("birthDate must be YYYY-MM-DD")
		}
		p.BirthDate = &birth
	}

	return p, nil
}

// ListPassengers returns all passengers.
func (s *Service) ListPassengers(actor *models.Actor) ([]models.Passenger, error) {
	if err := allow(actor, auth.OpViewPassengers); err != nil {
		return nil, err
	}
	return s.store.ListPassengers()
}

// GetPassenger returns one passenger.
func (s *Service) GetPassenger(actor *models.Actor, id int64) (*models.Passenger, error) {
	if err := allow(actor, auth.OpViewPassengers); err != nil {
		return nil, err
	}
	return s.store.GetPassenger(id)
}

// CreatePassenger registers a passenger.
func (s *Service) CreatePassenger(actor *models.Actor, origin string, req *models.PassengerRequest) (*models.Passenger, error) {
	if err := allow(actor, auth.OpCreatePassenger); err != nil {
		return nil, err
	}
	p, err := passengerFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreatePassenger(p); err != nil {
		return nil, err
	}

	s.audit.Record(audit.Event{
		ActorID:  &actor.ID,
		Action:   models.ActionCreate,
		Entity:   "passengers",
		EntityID: p.ID,
		Details: map[string]string{
			"passport":  p.Passport,
			"firstName": p.FirstName,
			"lastName":  p.LastName,
		},
		OriginAddress: origin,
	})

	return p, nil
}

// UpdatePassenger overwrites a passenger's fields.
func (s *Service) UpdatePassenger(actor *models.Actor, origin string, id int64, req *models.PassengerRequest) (*models.Passenger, error) {
	if err := allow(actor, auth.OpEditPassenger); err != nil {
		return nil, err
	}
	p, err := passengerFromRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = id

	if err := s.store.UpdatePassenger(p); err != nil {
		return nil, err
	}

	s.audit.Record(audit.Event{
		ActorID:  &actor.ID,
		Action:   models.ActionUpdate,
		Entity:   "passengers",
		EntityID: id,
		Details: map[string]string{
			"passport":  p.Passport,
			"firstName": p.FirstName,
			"lastName":  p.LastName,
		},
		OriginAddress: origin,
	})

	return p, nil
}

// DeletePassenger removes a passenger unless they hold a confirmed
// reservation.
func (s *Service) DeletePassenger(actor *models.Actor, origin string, id int64) error {
	if err := allow(actor, auth.OpDeletePassenger); err != nil {
		return err
	}

	p, err := s.store.GetPassenger(id)
	if err != nil {
		return err
	}

	if err := s.store.DeletePassenger(id); err != nil {
		return err
	}

	s.audit.Record(audit.Event{
		ActorID:  &actor.ID,
		Action:   models.ActionDelete,
		Entity:   "passengers",
		EntityID: id,
		Details: map[string]string{
			"passport":  p.Passport,
			"firstName": p.FirstName,
			"lastName":  p.LastName,
		},
		OriginAddress: origin,
	})

	return nil
}
