package services

import (
	"context"
	"log"

	"github.com/pontopro/backend/internal/audit"
	"github.com/pontopro/backend/internal/models"
)

// EdgeInvoker calls a serverless function on behalf of the caller
type EdgeInvoker interface {
	Invoke(ctx context.Context, accessToken, function string, payload, out any) error
}

// AuditRecorder persists administrative actions
type AuditRecorder interface {
	Record(ctx context.Context, entry audit.Entry) error
}

// recordAudit never fails the action being audited
func recordAudit(ctx context.Context, rec AuditRecorder, session *models.Session, action, details, ip string) {
	if rec == nil {
		return
	}
	entry := audit.Entry{Acao: action, Detalhes: details, IP: ip}
	if session != nil {
		entry.UsuarioID = session.UserID
	}
	if err := rec.Record(ctx, entry); err != nil {
		log.Printf("[AUDIT] Failed to record %s: %v", action, err)
	}
}

func accessToken(session *models.Session) string {
	if session == nil {
		return ""
	}
	return session.AccessToken
}
