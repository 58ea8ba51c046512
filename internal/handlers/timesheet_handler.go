package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pontopro/backend/internal/models"
	"github.com/pontopro/backend/internal/services"
)

const defaultRecordLimit = 100

type TimeBankResponse struct {
	Rows []models.TimeBankView `json:"rows"`
	Demo bool                  `json:"demo"`
}

type TimeRecordResponse struct {
	Rows []models.TimeRecordView `json:"rows"`
	Demo bool                    `json:"demo"`
}

// TimesheetHandler serves the clock record and time bank listings
type TimesheetHandler struct {
	records  *services.TimeRecordService
	timeBank *services.TimeBankService
	loc      *time.Location
	now      func() time.Time
}

func NewTimesheetHandler(records *services.TimeRecordService, timeBank *services.TimeBankService, loc *time.Location) *TimesheetHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &TimesheetHandler{
		records:  records,
		timeBank: timeBank,
		loc:      loc,
		now:      time.Now,
	}
}

// TimeBank lists daily balances, falling back to demonstration rows
// @Summary Time bank
// @Description Worked, expected and balance per employee and day. When the table is empty or unreadable two demonstration rows are returned with demo=true.
// @Tags Timesheet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TimeBankResponse
// @Router /time-bank [get]
func (h *TimesheetHandler) TimeBank(w http.ResponseWriter, r *http.Request) {
	entries, demo := services.ResolveTimeBank(h.timeBank.Fetch(r.Context()), h.now().In(h.loc))
	writeJSON(w, http.StatusOK, TimeBankResponse{
		Rows: services.TimeBankViews(entries),
		Demo: demo,
	})
}

// TimeRecords lists the latest punches
// @Summary Clock records
// @Tags Timesheet
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows (default 100)"
// @Success 200 {object} TimeRecordResponse
// @Failure 400 {object} services.ErrorResponse
// @Router /time-records [get]
func (h *TimesheetHandler) TimeRecords(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecordLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			services.SendErrorResponse(w, "limit must be a positive integer", http.StatusBadRequest, nil)
			return
		}
		limit = n
	}

	records, demo := services.ResolveTimeRecords(h.records.Fetch(r.Context(), limit), h.now())
	writeJSON(w, http.StatusOK, TimeRecordResponse{
		Rows: services.TimeRecordViews(records, h.loc),
		Demo: demo,
	})
}
