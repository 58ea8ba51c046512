package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pontopro/backend/internal/middleware"
	"github.com/pontopro/backend/internal/models"
	"github.com/pontopro/backend/internal/services"
)

type RequestHandler struct {
	service *services.RequestService
}

func NewRequestHandler(service *services.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// List returns leave and justification requests
// @Summary List requests
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LeaveRequest
// @Failure 500 {object} services.ErrorResponse
// @Router /requests [get]
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.List(r.Context())
	if err != nil {
		services.SendErrorResponse(w, "Failed to load requests", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// Approve accepts a pending request
// @Summary Approve request
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} object{id=string,status=string}
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /requests/{id}/approve [post]
func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, models.RequestApproved)
}

// Reject declines a pending request
// @Summary Reject request
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} object{id=string,status=string}
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /requests/{id}/reject [post]
func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, models.RequestRejected)
}

func (h *RequestHandler) decide(w http.ResponseWriter, r *http.Request, status string) {
	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	var err error
	if status == models.RequestApproved {
		err = h.service.Approve(r.Context(), session, id, middleware.ClientIP(r))
	} else {
		err = h.service.Reject(r.Context(), session, id, middleware.ClientIP(r))
	}
	if err != nil {
		sendServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": status})
}
