package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pontopro/backend/internal/edge"
	"github.com/pontopro/backend/internal/middleware"
	"github.com/pontopro/backend/internal/models"
	"github.com/pontopro/backend/internal/services"
)

const maxRosterBytes = 10 << 20

type EmployeeHandler struct {
	service   *services.EmployeeService
	importer  *services.ImportService
	validator *services.ValidationHelper
}

func NewEmployeeHandler(service *services.EmployeeService, importer *services.ImportService) *EmployeeHandler {
	return &EmployeeHandler{
		service:   service,
		importer:  importer,
		validator: services.NewValidationHelper(),
	}
}

// List returns the roster
// @Summary List employees
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive filter on name or login"
// @Success 200 {array} models.User
// @Failure 500 {object} services.ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		services.SendErrorResponse(w, "Failed to load employees", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

// Create registers a new employee account
// @Summary Create employee
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateEmployeeRequest true "New employee"
// @Success 201 {object} models.User
// @Failure 400 {object} services.ErrorResponse
// @Failure 502 {object} services.ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req models.CreateEmployeeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	user, err := h.service.Create(r.Context(), session, req, middleware.ClientIP(r))
	if err != nil {
		var fnErr *edge.FunctionError
		if errors.As(err, &fnErr) && fnErr.Status >= 400 && fnErr.Status < 500 {
			services.SendErrorResponse(w, fnErr.Message, http.StatusBadRequest, nil)
			return
		}
		services.SendErrorResponse(w, "Failed to create employee", http.StatusBadGateway, nil)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// UpdateStatus activates or deactivates an employee
// @Summary Toggle employee access
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param request body models.StatusUpdateRequest true "New status"
// @Success 200 {object} object{id=string,ativo=bool}
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /employees/{id}/status [put]
func (h *EmployeeHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req models.StatusUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.SetActive(r.Context(), session, id, *req.Ativo, middleware.ClientIP(r)); err != nil {
		sendServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "ativo": *req.Ativo})
}

// Badge renders the clock-in QR badge
// @Summary Employee QR badge
// @Tags Employees
// @Produce png
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {file} binary
// @Failure 404 {object} services.ErrorResponse
// @Router /employees/{id}/badge [get]
func (h *EmployeeHandler) Badge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	png, err := h.service.Badge(r.Context(), id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", "cracha-"+id+".png"))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// Import creates employees from an uploaded spreadsheet
// @Summary Import roster
// @Description Multipart upload (field "file") of an .xls or .xlsx sheet with header nome, login and optional perfil, senha.
// @Tags Employees
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Roster spreadsheet"
// @Success 200 {object} models.RosterImportResult
// @Failure 400 {object} services.ErrorResponse
// @Router /employees/import [post]
func (h *EmployeeHandler) Import(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRosterBytes)
	if err := r.ParseMultipartForm(maxRosterBytes); err != nil {
		services.SendErrorResponse(w, "Invalid upload", http.StatusBadRequest, nil)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		services.SendErrorResponse(w, "file is required", http.StatusBadRequest, nil)
		return
	}
	defer file.Close()

	result, err := h.importer.ImportRoster(r.Context(), session, file, header.Filename, middleware.ClientIP(r))
	if err != nil {
		if errors.Is(err, services.ErrEmptyRoster) || errors.Is(err, services.ErrRosterHeader) {
			sendServiceError(w, err)
			return
		}
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
