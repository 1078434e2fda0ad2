package api

import (
	"net/http"

	"flight-management-system/internal/models"
)

// ListAirlines returns all airlines.
func (h *Handler) ListAirlines(w http.ResponseWriter, r *http.Request) {
	airlines, err := h.Service.ListAirlines(actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, airlines)
}

// GetAirline returns one airline.
func (h *Handler) GetAirline(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	airline, err := h.Service.GetAirline(actorFrom(r), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, airline)
}

// CreateAirline registers an airline.
func (h *Handler) CreateAirline(w http.ResponseWriter, r *http.Request) {
	var req models.AirlineRequest
	if !decodeBody(w, r, &req) {
		return
	}

	airline, err := h.Service.CreateAirline(actorFrom(r), r.RemoteAddr, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, airline)
}

// UpdateAirline edits an airline.
func (h *Handler) UpdateAirline(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.AirlineRequest
	if !decodeBody(w, r, &req) {
		return
	}

	airline, err := h.Service.UpdateAirline(actorFrom(r), r.RemoteAddr, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, airline)
}

// DeleteAirline removes an airline that owns no flights.
func (h *Handler) DeleteAirline(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.Service.DeleteAirline(actorFrom(r), r.RemoteAddr, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.MessageResponse{Message: "airline deleted"})
}
