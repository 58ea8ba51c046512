package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pontopro/backend/internal/audit"
	"github.com/pontopro/backend/internal/interval"
	"github.com/pontopro/backend/internal/metrics"
	"github.com/pontopro/backend/internal/models"
	"github.com/pontopro/backend/internal/reports"
)

// Export is a rendered report ready to download
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
	Demo        bool
}

type ReportService struct {
	timeRecords *TimeRecordService
	timeBank    *TimeBankService
	requests    *RequestService
	employees   *EmployeeService
	auditLogs   *AuditService
	audit       AuditRecorder
	maxRows     int
	loc         *time.Location
	now         func() time.Time
}

func NewReportService(
	timeRecords *TimeRecordService,
	timeBank *TimeBankService,
	requests *RequestService,
	employees *EmployeeService,
	auditLogs *AuditService,
	auditRecorder AuditRecorder,
	maxRows int,
	loc *time.Location,
) *ReportService {
	if maxRows <= 0 {
		maxRows = 5000
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{
		timeRecords: timeRecords,
		timeBank:    timeBank,
		requests:    requests,
		employees:   employees,
		auditLogs:   auditLogs,
		audit:       auditRecorder,
		maxRows:     maxRows,
		loc:         loc,
		now:         time.Now,
	}
}

// Export builds a report from live data in the requested format
func (s *ReportService) Export(ctx context.Context, session *models.Session, slug, rawFormat, ip string) (*Export, error) {
	entry, ok := reports.Lookup(slug)
	if !ok {
		return nil, ErrUnknownReport
	}
	format, ok := reports.ParseFormat(rawFormat)
	if !ok {
		return nil, ErrUnknownFormat
	}

	start := time.Now()
	now := s.now().In(s.loc)
	doc, err := s.document(ctx, entry, now)
	if err != nil {
		metrics.ObserveExport(slug, string(format), err, time.Since(start))
		return nil, err
	}
	if len(doc.Rows) > s.maxRows {
		log.Printf("[REPORTS] %s truncated from %d to %d rows", slug, len(doc.Rows), s.maxRows)
		doc.Rows = doc.Rows[:s.maxRows]
	}

	data, err := reports.Build(doc, format)
	metrics.ObserveExport(slug, string(format), err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", slug, err)
	}

	log.Printf("[REPORTS] Exported %s.%s rows=%d demo=%t", slug, format, len(doc.Rows), doc.Demo)
	recordAudit(ctx, s.audit, session, audit.ActionReportExported,
		fmt.Sprintf("Relatório %s (%s)", entry.Title, strings.ToUpper(string(format))), ip)

	return &Export{
		Filename:    reports.Filename(entry.Report, format, now),
		ContentType: format.ContentType(),
		Data:        data,
		Demo:        doc.Demo,
	}, nil
}

func (s *ReportService) document(ctx context.Context, entry reports.Entry, now time.Time) (reports.Document, error) {
	doc := reports.Document{Title: entry.Title, GeneratedAt: now}

	switch entry.Report {
	case reports.ReportTimesheet:
		records, demo := ResolveTimeRecords(s.timeRecords.Fetch(ctx, s.maxRows), now)
		doc.Demo = demo
		doc.Columns = []string{"Colaborador", "Tipo", "Data", "Hora", "IP"}
		for _, v := range TimeRecordViews(records, s.loc) {
			doc.Rows = append(doc.Rows, []string{v.UsuarioNome, v.TipoLabel, v.Data, v.Hora, v.IP})
		}

	case reports.ReportTimeBank:
		entries, demo := ResolveTimeBank(s.timeBank.Fetch(ctx), now)
		doc.Demo = demo
		doc.Columns = []string{"Colaborador", "Data", "Trabalhadas", "Esperadas", "Saldo"}
		for _, e := range entries {
			doc.Rows = append(doc.Rows, []string{
				e.UsuarioNome,
				e.Data.Format("02/01/2006"),
				interval.Format(e.HorasTrabalhadas),
				interval.Format(e.HorasEsperadas),
				interval.Format(e.Saldo),
			})
		}

	case reports.ReportRequests:
		requests, err := s.requests.List(ctx)
		if err != nil {
			return doc, err
		}
		doc.Columns = []string{"Colaborador", "Motivo", "Início", "Fim", "Justificativa", "Status"}
		for _, r := range requests {
			end := ""
			if r.DataFim != nil {
				end = r.DataFim.Format("02/01/2006")
			}
			doc.Rows = append(doc.Rows, []string{
				r.UsuarioNome, r.Motivo, r.DataInicio.Format("02/01/2006"), end, r.Justificativa, r.Status,
			})
		}

	case reports.ReportEmployees:
		employees, err := s.employees.List(ctx, "")
		if err != nil {
			return doc, err
		}
		doc.Columns = []string{"Nome", "Login", "Perfil", "Status"}
		for _, e := range employees {
			status := "Inativo"
			if e.Ativo {
				status = "Ativo"
			}
			doc.Rows = append(doc.Rows, []string{e.Nome, e.Login, e.Perfil, status})
		}

	case reports.ReportAuditTrail:
		entries, err := s.auditLogs.List(ctx, "", s.maxRows)
		if err != nil {
			return doc, err
		}
		doc.Columns = []string{"Data", "Administrador", "Ação", "Detalhes", "IP"}
		for _, e := range entries {
			doc.Rows = append(doc.Rows, []string{
				e.CriadoEm.In(s.loc).Format("02/01/2006 15:04"), e.AdminNome, e.Acao, e.Detalhes, e.IP,
			})
		}

	default:
		return doc, ErrUnknownReport
	}

	return doc, nil
}
