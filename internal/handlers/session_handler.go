package handlers

import (
	"net/http"

	"github.com/pontopro/backend/internal/navigation"
	"github.com/pontopro/backend/internal/services"
)

type SessionHandler struct {
	profiles *services.ProfileService
}

func NewSessionHandler(profiles *services.ProfileService) *SessionHandler {
	return &SessionHandler{profiles: profiles}
}

// Me returns the signed-in administrator
// @Summary Current profile
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} services.ErrorResponse
// @Router /auth/me [get]
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	if session.Profile != nil {
		writeJSON(w, http.StatusOK, session.Profile)
		return
	}
	profile, err := h.profiles.Load(r.Context(), session)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Logout revokes the bearer token
// @Summary Sign out
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Failure 401 {object} services.ErrorResponse
// @Router /auth/logout [post]
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	if err := h.profiles.Revoke(r.Context(), session); err != nil {
		services.SendErrorResponse(w, "Failed to end session", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Navigation returns the sidebar menu with the current page marked
// @Summary Sidebar menu
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Param current query string false "Current location fragment, e.g. #pontos"
// @Success 200 {object} object{current=string,title=string,menu=[]navigation.MenuEntry}
// @Router /navigation [get]
func (h *SessionHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	current := navigation.ParseRoute(r.URL.Query().Get("current"))
	writeJSON(w, http.StatusOK, map[string]any{
		"current": current,
		"title":   navigation.Title(current),
		"menu":    navigation.Menu(current),
	})
}
