package api

import (
	"net/http"

	"flight-management-system/internal/models"
)

// ListPassengers returns all passengers.
func (h *Handler) ListPassengers(w http.ResponseWriter, r *http.Request) {
	passengers, err := h.Service.ListPassengers(actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, passengers)
}

// GetPassenger returns one passenger.
func (h *Handler) GetPassenger(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	passenger, err := h.Service.GetPassenger(actorFrom(r), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, passenger)
}

// CreatePassenger registers a passenger.
func (h *Handler) CreatePassenger(w http.ResponseWriter, r *http.Request) {
	var req models.PassengerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	passenger, err := h.Service.CreatePassenger(actorFrom(r), r.RemoteAddr, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, passenger)
}

// UpdatePassenger edits a passenger.
func (h *Handler) UpdatePassenger(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.PassengerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	passenger, err := h.Service.UpdatePassenger(actorFrom(r), r.RemoteAddr, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, passenger)
}

// DeletePassenger removes a passenger without confirmed reservations.
func (h *Handler) DeletePassenger(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.Service.DeletePassenger(actorFrom(r), r.RemoteAddr, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.MessageResponse{Message: "passenger deleted"})
}
