package handlers

import (
	"net/http"

	"github.com/pontopro/backend/internal/services"
)

type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get returns the overview aggregates
// @Summary Dashboard overview
// @Description Aggregate counters, weekly hours and status breakdown. demo is true when the aggregates could not be loaded.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardView
// @Failure 502 {object} services.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	view, err := h.service.Load(r.Context(), session)
	if err != nil {
		services.SendErrorResponse(w, "Dashboard data unavailable", http.StatusBadGateway, nil)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
