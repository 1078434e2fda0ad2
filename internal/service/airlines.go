package service

import (
	"strings"
	"time"

	"flight-management-system/internal/audit"
	"flight-management-system/internal/auth"
	"flight-management-system/internal/models"
)

func airlineFromRequest(req *models.AirlineRequest) (*models.Airline, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" || len(code) > 3 {
		return nil, invalidf("code is required and must be at most 3 characters")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalidf("name is required")
	}

	a := &models.Airline{
		Code:    code,
		Name:    strings.TrimSpace(req.Name),
		Country: strings.TrimSpace(req.Country),
		Active:  true,
	}
	if req.Active != nil {
		a.Active = *req.Active
	}

	if req.FoundedDate != "" {
		founded, err := time.Parse("2006-01-02", req.FoundedDate)
		if err != nil {
			return nil, invalidf("foundedDate must be YYYY-MM-DD")
		}
		a.FoundedDate = &founded
	}

	return a, nil
}

// ListAirlines returns all airlines.
func (s *Service) ListAirlines(actor *models.Actor) ([]models.Airline, error) {
	if err := allow(actor, auth.OpViewAirlines); err != nil {
		return nil, err
	}
	return s.store.ListAirlines()
}

// GetAirline returns one airline.
func (s *Service) GetAirline(actor *models.Actor, id int64) (*models.Airline, error) {
	if err := allow(actor, auth.OpViewAirlines); err != nil {
		return nil, err
	}
	return s.store.GetAirline(id)
}

// CreateAirline registers an airline.
func (s *Service) CreateAirline(actor *models.Actor, origin string, req *models.AirlineRequest) (*models.Airline, error) {
	if err := allow(actor, auth.OpCreateAirline); err != nil {
		return nil, err
	}
	a, err := airlineFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateAirline(a); err != nil {
		return nil, err
	}

	s.audit.Record(audit.Event{
		ActorID:       &actor.ID,
		Action:        models.ActionCreate,
		Entity:        "airlines",
		EntityID:      a.ID,
		Details:       map[string]string{"code": a.Code, "name": a.Name},
		OriginAddress: origin,
	})

	return a, nil
}

// UpdateAirline overwrites an airline's fields.
func (s *Service) UpdateAirline(actor *models.Actor, origin string, id int64, req *models.AirlineRequest) (*models.Airline, error) {
	if err := allow(actor, auth.OpEditAirline); err != nil {
		return nil, err
	}
	a, err := airlineFromRequest(req)
	if err != nil {
		return nil, err
	}
	a.ID = id

	if err := s.store.UpdateAirline(a); err != nil {
		return nil, err
	}

	s.audit.Record(audit.Event{
		ActorID:       &actor.ID,
		Action:        models.ActionUpdate,
		Entity:        "airlines",
		EntityID:      id,
		Details:       map[string]string{"code": a.Code, "name": a.Name},
		OriginAddress: origin,
	})

	return a, nil
}

// DeleteAirline removes an airline unless it still owns flights.
func (s *Service) DeleteAirline(actor *models.Actor, origin string, id int64) error {
	if err := allow(actor, auth.OpDeleteAirline); err != nil {
		return err
	}

	a, err := s.store.GetAirline(id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteAirline(id); err != nil {
		return err
	}

	s.audit.Record(audit.Event{
		ActorID:       &actor.ID,
		Action:        models.ActionDelete,
		Entity:        "airlines",
		EntityID:      id,
		Details:       map[string]string{"code": a.Code, "name": a.Name},
		OriginAddress: origin,
	})

	return nil
}
