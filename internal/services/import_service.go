package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/google/uuid"
	"github.com/pontopro/backend/internal/audit"
	"github.com/pontopro/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// Roster spreadsheet headers, compared case-insensitively
const (
	rosterColName     = "nome"
	rosterColLogin    = "login"
	rosterColRole     = "perfil"
	rosterColPassword = "senha"
)

type ImportService struct {
	employees *EmployeeService
	validator *ValidationHelper
	audit     AuditRecorder
	maxRows   int
}

func NewImportService(employees *EmployeeService, auditRecorder AuditRecorder, maxRows int) *ImportService {
	if maxRows <= 0 {
		maxRows = 1000
	}
	return &ImportService{
		employees: employees,
		validator: NewValidationHelper(),
		audit:     auditRecorder,
		maxRows:   maxRows,
	}
}

// ImportRoster creates one employee per spreadsheet row. Rows that fail
// validation or creation are reported and do not stop the import.
func (s *ImportService) ImportRoster(ctx context.Context, session *models.Session, reader io.Reader, filename, ip string) (*models.RosterImportResult, error) {
	rows, err := readRowsFromSpreadsheet(reader, filename, s.maxRows+1)
	if err != nil {
		return nil, err
	}

	header := map[string]int{}
	for idx, name := range rows[0] {
		header[normalizeHeader(name)] = idx
	}
	nameIdx, okName := header[rosterColName]
	loginIdx, okLogin := header[rosterColLogin]
	if !okName || !okLogin {
		return nil, ErrRosterHeader
	}
	roleIdx, okRole := header[rosterColRole]
	if !okRole {
		roleIdx = -1
	}
	passwordIdx, okPassword := header[rosterColPassword]
	if !okPassword {
		passwordIdx = -1
	}

	result := &models.RosterImportResult{Lines: []models.RosterImportLine{}}
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		if i >= s.maxRows {
			log.Printf("[IMPORT] Roster %s truncated at %d rows", filename, s.maxRows)
			break
		}

		line := models.RosterImportLine{Linha: i + 2, Login: cellValue(row, loginIdx)}
		req := models.CreateEmployeeRequest{
			Nome:   cellValue(row, nameIdx),
			Login:  line.Login,
			Perfil: strings.ToLower(cellValue(row, roleIdx)),
			Senha:  cellValue(row, passwordIdx),
		}
		if req.Perfil == "" {
			req.Perfil = models.RoleEmployee
		}
		if req.Senha == "" {
			req.Senha = temporaryPassword()
			line.SenhaTemporaria = req.Senha
		}

		if err := s.validator.ValidateStruct(&req); err != nil {
			line.Status = models.ImportFailed
			line.Erro = ValidationSummary(err)
			line.SenhaTemporaria = ""
			result.Failed++
			result.Lines = append(result.Lines, line)
			continue
		}

		if _, err := s.employees.createSilently(ctx, session, req); err != nil {
			line.Status = models.ImportFailed
			line.Erro = err.Error()
			line.SenhaTemporaria = ""
			result.Failed++
			result.Lines = append(result.Lines, line)
			continue
		}

		line.Status = models.ImportCreated
		result.Created++
		result.Lines = append(result.Lines, line)
	}

	if result.Created == 0 && result.Failed == 0 {
		return nil, ErrEmptyRoster
	}

	log.Printf("[IMPORT] Roster %s: %d created, %d failed", filename, result.Created, result.Failed)
	recordAudit(ctx, s.audit, session, audit.ActionEmployeeImported,
		fmt.Sprintf("Planilha %s: %d criados, %d com erro", filepath.Base(filename), result.Created, result.Failed), ip)
	return result, nil
}

func readRowsFromSpreadsheet(reader io.Reader, filename string, limit int) ([][]string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("open xls roster: %w", err)
		}
		if workbook.NumSheets() == 0 {
			return nil, fmt.Errorf("no worksheet found")
		}
		rows := workbook.ReadAllCells(limit)
		if len(rows) == 0 {
			return nil, ErrEmptyRoster
		}
		return rows, nil
	case ".xlsx":
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("open xlsx roster: %w", err)
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("no worksheet found")
		}
		iter, err := file.Rows(sheetName)
		if err != nil {
			return nil, err
		}
		defer func() { _ = iter.Close() }()

		var rows [][]string
		for iter.Next() {
			if limit > 0 && len(rows) >= limit {
				break
			}
			cols, err := iter.Columns()
			if err != nil {
				return nil, fmt.Errorf("read xlsx roster: %w", err)
			}
			rows = append(rows, cols)
		}
		if err := iter.Error(); err != nil {
			return nil, fmt.Errorf("read xlsx roster: %w", err)
		}
		if len(rows) == 0 {
			return nil, ErrEmptyRoster
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unsupported roster format %q", ext)
	}
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func temporaryPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
