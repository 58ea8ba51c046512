package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pontopro/backend/internal/middleware"
	"github.com/pontopro/backend/internal/reports"
	"github.com/pontopro/backend/internal/services"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Catalog lists the available exports
// @Summary Report catalog
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} reports.Entry
// @Router /reports [get]
func (h *ReportHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, reports.Catalog())
}

// Export downloads a report
// @Summary Export report
// @Tags Reports
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param report path string true "Report slug" Enums(espelho-ponto, banco-horas, justificativas, colaboradores, auditoria)
// @Param format path string true "File format" Enums(pdf, xlsx)
// @Success 200 {file} binary
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /reports/{report}.{format} [get]
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	export, err := h.service.Export(r.Context(), session, chi.URLParam(r, "report"), chi.URLParam(r, "format"), middleware.ClientIP(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.Header().Set("X-Demo-Data", strconv.FormatBool(export.Demo))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Data)
}
