package api

import (
	"net/http"

	"flight-management-system/internal/models"
)

// ListFlights returns all flights with airline info and occupancy.
func (h *Handler) ListFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.Service.ListFlights(actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, flights)
}

// GetFlight returns one flight.
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	flight, err := h.Service.GetFlight(actorFrom(r), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// GetFlightPassengers returns the confirmed-passenger manifest.
func (h *Handler) GetFlightPassengers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	passengers, err := h.Service.FlightManifest(actorFrom(r), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, passengers)
}

// CreateFlight adds a flight.
func (h *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req models.FlightRequest
	if !decodeBody(w, r, &req) {
		return
	}

	flight, err := h.Service.CreateFlight(actorFrom(r), r.RemoteAddr, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, flight)
}

// UpdateFlight edits a flight.
func (h *Handler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.FlightRequest
	if !decodeBody(w, r, &req) {
		return
	}

	flight, err := h.Service.UpdateFlight(actorFrom(r), r.RemoteAddr, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// DeleteFlight removes a flight without confirmed reservations.
func (h *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.Service.DeleteFlight(actorFrom(r), r.RemoteAddr, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.MessageResponse{Message: "flight deleted"})
}
