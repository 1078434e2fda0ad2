package api

import (
	"net/http"

	"flight-management-system/internal/models"
)

// ListUsers returns all user accounts.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers(actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// CreateUser registers a user account.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.Service.CreateUser(actorFrom(r), r.RemoteAddr, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// DeleteUser removes a user account.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.Service.DeleteUser(actorFrom(r), r.RemoteAddr, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.MessageResponse{Message: "user deleted"})
}
