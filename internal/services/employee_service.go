package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/pontopro/backend/internal/audit"
	"github.com/pontopro/backend/internal/edge"
	"github.com/pontopro/backend/internal/models"
	"github.com/skip2/go-qrcode"
)

type EmployeeService struct {
	db        *sql.DB
	edge      EdgeInvoker
	audit     AuditRecorder
	badgeSize int
}

func NewEmployeeService(db *sql.DB, edgeClient EdgeInvoker, auditRecorder AuditRecorder, badgeSize int) *EmployeeService {
	if badgeSize <= 0 {
		badgeSize = 256
	}
	return &EmployeeService{
		db:        db,
		edge:      edgeClient,
		audit:     auditRecorder,
		badgeSize: badgeSize,
	}
}

// List returns the roster ordered by name, optionally filtered by search
func (s *EmployeeService) List(ctx context.Context, search string) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, nome, login, perfil, ativo, criado_em
		FROM usuarios
		ORDER BY nome ASC`)
	if err != nil {
		log.Printf("[EMPLOYEES] Query failed: %v", err)
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := []models.User{}
	for rows.Next() {
		var u models.User
		var nome, login sql.NullString
		if err := rows.Scan(&u.ID, &nome, &login, &u.Perfil, &u.Ativo, &u.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		u.Nome = nome.String
		u.Login = login.String
		employees = append(employees, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	return FilterEmployees(employees, search), nil
}

// FilterEmployees keeps employees whose name or login contains search,
// ignoring case. An empty search keeps everyone.
func FilterEmployees(employees []models.User, search string) []models.User {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return employees
	}
	filtered := []models.User{}
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.Nome), needle) || strings.Contains(strings.ToLower(e.Login), needle) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Get loads one employee
func (s *EmployeeService) Get(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	var nome, login sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, nome, login, perfil, ativo, criado_em
		FROM usuarios
		WHERE id = $1`, id).Scan(&u.ID, &nome, &login, &u.Perfil, &u.Ativo, &u.CriadoEm)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get employee %s: %w", id, err)
	}
	u.Nome = nome.String
	u.Login = login.String
	return &u, nil
}

// Create delegates user creation to the create-user edge function
func (s *EmployeeService) Create(ctx context.Context, session *models.Session, req models.CreateEmployeeRequest, ip string) (*models.User, error) {
	created, err := s.createSilently(ctx, session, req)
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.audit, session, audit.ActionEmployeeCreated,
		fmt.Sprintf("Funcionário %s (%s) criado", created.Nome, created.Login), ip)
	return created, nil
}

func (s *EmployeeService) createSilently(ctx context.Context, session *models.Session, req models.CreateEmployeeRequest) (*models.User, error) {
	log.Printf("[EMPLOYEES] Creating employee login=%s perfil=%s", req.Login, req.Perfil)

	var created models.User
	if err := s.edge.Invoke(ctx, accessToken(session), edge.FunctionCreateUser, req, &created); err != nil {
		log.Printf("[EMPLOYEES] Edge creation failed for %s: %v", req.Login, err)
		return nil, fmt.Errorf("create employee: %w", err)
	}
	if created.Login == "" {
		created.Login = req.Login
	}
	if created.Nome == "" {
		created.Nome = req.Nome
	}
	if created.Perfil == "" {
		created.Perfil = req.Perfil
	}
	created.Ativo = true
	return &created, nil
}

// SetActive enables or disables an employee's access
func (s *EmployeeService) SetActive(ctx context.Context, session *models.Session, id string, active bool, ip string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE usuarios SET ativo = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("update employee %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	action := audit.ActionEmployeeBlocked
	if active {
		action = audit.ActionEmployeeActivated
	}
	recordAudit(ctx, s.audit, session, action, fmt.Sprintf("Funcionário %s", id), ip)
	return nil
}

// Badge renders the clock-in enrollment QR code as PNG
func (s *EmployeeService) Badge(ctx context.Context, id string) ([]byte, error) {
	employee, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]string{
		"usuario_id": employee.ID,
		"login":      employee.Login,
	})
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, s.badgeSize)
	if err != nil {
		return nil, fmt.Errorf("render badge: %w", err)
	}
	return png, nil
}
