package reports

import (
	"fmt"
	"strings"
	"time"
)

// Report identifies one of the export shortcuts
type Report string

const (
	ReportTimesheet  Report = "espelho-ponto"
	ReportTimeBank   Report = "banco-horas"
	ReportRequests   Report = "justificativas"
	ReportEmployees  Report = "colaboradores"
	ReportAuditTrail Report = "auditoria"
)

// Format is the file type of an export
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Entry describes one report on the exports screen
type Entry struct {
	Report      Report   `json:"report" example:"banco-horas"`
	Title       string   `json:"title" example:"Banco de Horas"`
	Description string   `json:"description"`
	Formats     []Format `json:"formats"`
}

var catalog = []Entry{
	{Report: ReportTimesheet, Title: "Espelho de Ponto", Description: "Registros de entrada, pausa, retorno e saída por colaborador"},
	{Report: ReportTimeBank, Title: "Banco de Horas", Description: "Horas trabalhadas, esperadas e saldo diário"},
	{Report: ReportRequests, Title: "Justificativas", Description: "Solicitações de ajuste, atestados e folgas"},
	{Report: ReportEmployees, Title: "Colaboradores", Description: "Cadastro completo da equipe"},
	{Report: ReportAuditTrail, Title: "Auditoria", Description: "Ações administrativas registradas"},
}

// Catalog lists every report in display order
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	for i, e := range catalog {
		e.Formats = []Format{FormatPDF, FormatXLSX}
		out[i] = e
	}
	return out
}

// Lookup returns the catalog entry for a report slug
func Lookup(slug string) (Entry, bool) {
	for _, e := range Catalog() {
		if string(e.Report) == slug {
			return e, true
		}
	}
	return Entry{}, false
}

// ParseFormat accepts pdf or xlsx in any case
func ParseFormat(raw string) (Format, bool) {
	switch Format(strings.ToLower(raw)) {
	case FormatPDF:
		return FormatPDF, true
	case FormatXLSX:
		return FormatXLSX, true
	}
	return "", false
}

// ContentType is the MIME type served for a format
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Filename names a download, e.g. banco-horas-2026-10-19.xlsx
func Filename(report Report, format Format, at time.Time) string {
	return fmt.Sprintf("%s-%s.%s", report, at.Format("2006-01-02"), format)
}
