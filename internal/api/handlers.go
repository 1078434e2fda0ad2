package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"flight-management-system/internal/auth"
	"flight-management-system/internal/database"
	"flight-management-system/internal/metrics"
	"flight-management-system/internal/models"
	"flight-management-system/internal/service"
)

type Handler struct {
	Service  *service.Service
	Sessions *auth.SessionManager
}

func NewHandler(svc *service.Service, sessions *auth.SessionManager) *Handler {
	return &Handler{
		Service:  svc,
		Sessions: sessions,
	}
}

// Health check endpoint
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondError converts an operation failure into the user-visible notice
// the request boundary owes the actor. Only unexpected persistence errors
// reach the operator log; everything else is a normal outcome.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		respondJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "you do not have permission for this action"})
	case errors.Is(err, service.ErrInvalidInput):
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, database.ErrNotFound):
		respondJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "record not found"})
	case errors.Is(err, database.ErrNoSeatsAvailable):
		respondJSON(w, http.StatusConflict, models.ErrorResponse{Error: "no seats available on this flight"})
	case errors.Is(err, database.ErrDuplicateReservation):
		respondJSON(w, http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, database.ErrDuplicateKey):
		respondJSON(w, http.StatusConflict, models.ErrorResponse{Error: "a record with that unique value already exists"})
	case errors.Is(err, database.ErrReferentialConflict):
		respondJSON(w, http.StatusConflict, models.ErrorResponse{Error: "cannot delete: dependent records exist"})
	default:
		metrics.PersistenceFailures.Inc()
		log.Printf("internal error: %v", err)
		respondJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "internal error, please try again"})
	}
}

// pathID extracts the {id} route variable.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// Login authenticates and establishes a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	actor, err := h.Sessions.Login(w, r, req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	h.Service.RecordLogin(actor, r.RemoteAddr)
	respondJSON(w, http.StatusOK, actor)
}

// Logout ends the session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if actor := actorFrom(r); actor != nil {
		h.Service.RecordLogout(actor, r.RemoteAddr)
	}
	if err := h.Sessions.Logout(w, r); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, models.MessageResponse{Message: "logged out"})
}

// Dashboard returns the landing-page statistics.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Dashboard(actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// AuditLog returns the newest audit entries.
func (h *Handler) AuditLog(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.Service.AuditLog(actorFrom(r), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
