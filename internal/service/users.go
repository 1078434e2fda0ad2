package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"flight-management-system/internal/audit"
	"flight-management-system/internal/auth"
	"flight-management-system/internal/models"
)

// ListUsers returns all accounts. Admin only.
func (s *Service) ListUsers(actor *models.Actor) ([]models.User, error) {
	if err := allow(actor, auth.OpManageUsers); err != nil {
		return nil, err
	}
	return s.store.ListUsers()
}

// CreateUser registers an account with a bcrypt-hashed password.
func (s *Service) CreateUser(actor *models.Actor, origin string, req *models.UserRequest) (*models.User, error) {
	if err := allow(actor, auth.OpManageUsers); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, invalidf("username is required")
	}
	if len(req.Password) < 6 {
		return nil, invalidf("password must be at least 6 characters")
	}
	if !models.ValidRole(req.Role) {
		return nil, invalidf("unknown role %q", req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Role:         req.Role,
	}
	if err := s.store.CreateUser(u); err != nil {
		return nil, err
	}

	s.audit.Record(audit.Event{
		ActorID:       &actor.ID,
		Action:        models.ActionCreate,
		Entity:        "users",
		EntityID:      u.ID,
		Details:       map[string]string{"username": u.Username, "role": u.Role},
		OriginAddress: origin,
	})

	return u, nil
}

// DeleteUser removes an account. Actors cannot delete themselves.
func (s *Service) DeleteUser(actor *models.Actor, origin string, id int64) error {
	if err := allow(actor, auth.OpManageUsers); err != nil {
		return err
	}
	if actor.ID == id {
		return invalidf("cannot delete your own account")
	}

	if err := s.store.DeleteUser(id); err != nil {
		return err
	}

	s.audit.Record(audit.Event{
		ActorID:       &actor.ID,
		Action:        models.ActionDelete,
		Entity:        "users",
		EntityID:      id,
		Details:       nil,
		OriginAddress: origin,
	})

	return nil
}

// RecordLogin and RecordLogout emit the session audit events; the session
// mechanics themselves live in the auth package.

func (s *Service) RecordLogin(actor *models.Actor, origin string) {
	s.audit.Record(audit.Event{
		ActorID:       &actor.ID,
		Action:        models.ActionLogin,
		Entity:        "users",
		EntityID:      actor.ID,
		Details:       map[string]string{"username": actor.Username, "role": actor.Role},
		OriginAddress: origin,
	})
}

func (s *Service) RecordLogout(actor *models.Actor, origin string) {
	s.audit.Record(audit.Event{
		ActorID:       &actor.ID,
		Action:        models.ActionLogout,
		Entity:        "users",
		EntityID:      actor.ID,
		Details:       map[string]string{"username": actor.Username},
		OriginAddress: origin,
	})
}
