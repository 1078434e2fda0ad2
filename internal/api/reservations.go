package api

import (
	"net/http"

	"flight-management-system/internal/models"
)

// ListReservations returns all reservations, newest first.
func (h *Handler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Service.ListReservations(actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reservations)
}

// GetReservation returns one reservation.
func (h *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.Service.GetReservation(actorFrom(r), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// ListBookableFlights returns flights open for booking, for the
// reservation form.
func (h *Handler) ListBookableFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.Service.BookableFlights(actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, flights)
}

// CreateReservation books a seat.
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req models.ReservationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.Service.CreateReservation(actorFrom(r), r.RemoteAddr, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

// CancelReservation cancels a reservation and frees its seat. Repeated
// cancels succeed without effect.
func (h *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.Service.CancelReservation(actorFrom(r), r.RemoteAddr, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
