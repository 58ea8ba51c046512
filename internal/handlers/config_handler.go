package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pontopro/backend/internal/middleware"
	"github.com/pontopro/backend/internal/models"
	"github.com/pontopro/backend/internal/services"
)

type ConfigHandler struct {
	service *services.ConfigService
}

func NewConfigHandler(service *services.ConfigService) *ConfigHandler {
	return &ConfigHandler{service: service}
}

// Get returns the company configuration
// @Summary Company configuration
// @Tags Config
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CompanyConfigView
// @Router /config [get]
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context())
	if err != nil {
		services.SendErrorResponse(w, "Failed to load configuration", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Update saves the company configuration
// @Summary Update company configuration
// @Tags Config
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CompanyConfigUpdate true "Configuration"
// @Success 200 {object} models.CompanyConfigView
// @Failure 400 {object} services.ErrorResponse
// @Router /config [put]
func (h *ConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req models.CompanyConfigUpdate
	if !decodeBody(w, r, &req) {
		return
	}

	view, err := h.service.Update(r.Context(), session, req, middleware.ClientIP(r))
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
			return
		}
		sendServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
