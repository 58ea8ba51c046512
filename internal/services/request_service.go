package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pontopro/backend/internal/audit"
	"github.com/pontopro/backend/internal/models"
)

type RequestService struct {
	db    *sql.DB
	audit AuditRecorder
	now   func() time.Time
}

func NewRequestService(db *sql.DB, auditRecorder AuditRecorder) *RequestService {
	return &RequestService{
		db:    db,
		audit: auditRecorder,
		now:   time.Now,
	}
}

// List returns every request, newest first
func (s *RequestService) List(ctx context.Context) ([]models.LeaveRequest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.usuario_id, s.empresa_id, s.motivo, s.data_inicio, s.data_fim,
		       s.justificativa, s.status, s.aprovado_por, s.aprovado_em, s.criado_em, u.nome
		FROM solicitacoes s
		LEFT JOIN usuarios u ON u.id = s.usuario_id
		ORDER BY s.criado_em DESC`)
	if err != nil {
		log.Printf("[REQUESTS] Query failed: %v", err)
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	requests := []models.LeaveRequest{}
	for rows.Next() {
		var r models.LeaveRequest
		var empresaID, motivo, justificativa, aprovadoPor, nome sql.NullString
		var dataFim, aprovadoEm sql.NullTime
		if err := rows.Scan(&r.ID, &r.UsuarioID, &empresaID, &motivo, &r.DataInicio, &dataFim,
			&justificativa, &r.Status, &aprovadoPor, &aprovadoEm, &r.CriadoEm, &nome); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		r.EmpresaID = empresaID.String
		r.Motivo = motivo.String
		r.Justificativa = justificativa.String
		r.UsuarioNome = nome.String
		if dataFim.Valid {
			r.DataFim = &dataFim.Time
		}
		if aprovadoPor.Valid {
			r.AprovadoPor = &aprovadoPor.String
		}
		if aprovadoEm.Valid {
			r.AprovadoEm = &aprovadoEm.Time
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// Approve marks a pending request as approved by the session's admin
func (s *RequestService) Approve(ctx context.Context, session *models.Session, id, ip string) error {
	return s.decide(ctx, session, id, models.RequestApproved, ip)
}

// Reject marks a pending request as rejected by the session's admin
func (s *RequestService) Reject(ctx context.Context, session *models.Session, id, ip string) error {
	return s.decide(ctx, session, id, models.RequestRejected, ip)
}

func (s *RequestService) decide(ctx context.Context, session *models.Session, id, status, ip string) error {
	if session == nil {
		return errors.New("decision requires a session")
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE solicitacoes
		SET status = $1, aprovado_por = $2, aprovado_em = $3
		WHERE id = $4 AND status = $5`,
		status, decidedBy(session), s.now().UTC(), id, models.RequestPending)
	if err != nil {
		return fmt.Errorf("update request %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		var current string
		err := s.db.QueryRowContext(ctx, `SELECT status FROM solicitacoes WHERE id = $1`, id).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("load request %s: %w", id, err)
		}
		log.Printf("[REQUESTS] Request %s already %s", id, current)
		return ErrInvalidTransition
	}

	action := audit.ActionRequestRejected
	if status == models.RequestApproved {
		action = audit.ActionRequestApproved
	}
	log.Printf("[REQUESTS] Request %s %s by %v", id, status, decidedBy(session))
	recordAudit(ctx, s.audit, session, action, fmt.Sprintf("Solicitação %s", id), ip)
	return nil
}

// decidedBy is the usuarios id written to aprovado_por. The demonstration
// administrator has no row, so its decisions are stored without one.
func decidedBy(session *models.Session) any {
	if session.Profile == nil {
		return session.UserID
	}
	if session.Profile.ID == DemoAdminID {
		return nil
	}
	return session.Profile.ID
}
