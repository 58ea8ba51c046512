package services

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("request is no longer pending")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrUnknownReport     = errors.New("unknown report")
	ErrUnknownFormat     = errors.New("unknown report format")
	ErrEmptyRoster       = errors.New("roster has no data rows")
	ErrRosterHeader      = errors.New("roster header must contain nome and login")
	ErrDashboardEmpty    = errors.New("dashboard aggregates came back empty")
)

var ErrInvalidWorkload = errors.New("carga_horaria_diaria must be a positive HH:MM:SS interval up to 24h")
