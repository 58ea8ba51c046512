package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/pontopro/backend/internal/middleware"
	"github.com/pontopro/backend/internal/models"
	"github.com/pontopro/backend/internal/services"
)

const maxBodyBytes = 1_048_576

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[HTTP] Failed to encode response: %v", err)
	}
}

// decodeBody reads exactly one JSON object with no unknown fields, writing
// the error response itself when it fails.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return false
	}
	return true
}

func sessionOrUnauthorized(w http.ResponseWriter, r *http.Request) (*models.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
	}
	return session, ok
}

// sendServiceError maps service sentinels onto HTTP statuses
func sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		services.SendErrorResponse(w, "Not found", http.StatusNotFound, nil)
	case errors.Is(err, services.ErrInvalidTransition):
		services.SendErrorResponse(w, err.Error(), http.StatusConflict, nil)
	case errors.Is(err, services.ErrUnknownReport):
		services.SendErrorResponse(w, err.Error(), http.StatusNotFound, nil)
	case errors.Is(err, services.ErrUnknownFormat),
		errors.Is(err, services.ErrInvalidWorkload),
		errors.Is(err, services.ErrEmptyRoster),
		errors.Is(err, services.ErrRosterHeader):
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
	default:
		log.Printf("[HTTP] Unhandled service error: %v", err)
		services.SendErrorResponse(w, "Internal server error", http.StatusInternalServerError, nil)
	}
}
