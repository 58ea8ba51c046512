package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/pontopro/backend/internal/models"
)

// Placeholders for audit rows without an actor or origin
const (
	SystemActor = "Sistema"
	UnknownIP   = "---"
)

type AuditService struct {
	db *sql.DB
}

func NewAuditService(db *sql.DB) *AuditService {
	return &AuditService{db: db}
}

// List returns audit entries newest first, filtered by search when given
func (s *AuditService) List(ctx context.Context, search string, limit int) ([]models.AuditLog, error) {
	query := `
		SELECT l.id, l.usuario_id, l.acao, l.detalhes, l.ip, l.criado_em, u.nome
		FROM logs l
		LEFT JOIN usuarios u ON u.id = l.usuario_id
		ORDER BY l.criado_em DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("[AUDIT] Query failed: %v", err)
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	entries := []models.AuditLog{}
	for rows.Next() {
		var entry models.AuditLog
		var usuarioID, detalhes, ip, nome sql.NullString
		if err := rows.Scan(&entry.ID, &usuarioID, &entry.Acao, &detalhes, &ip, &entry.CriadoEm, &nome); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		entry.UsuarioID = usuarioID.String
		entry.Detalhes = detalhes.String
		entry.AdminNome = nome.String
		if entry.AdminNome == "" {
			entry.AdminNome = SystemActor
		}
		entry.IP = ip.String
		if entry.IP == "" {
			entry.IP = UnknownIP
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}

	return FilterAuditLogs(entries, search), nil
}

// FilterAuditLogs keeps entries whose action, details or actor contain
// search, ignoring case
func FilterAuditLogs(entries []models.AuditLog, search string) []models.AuditLog {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return entries
	}
	filtered := []models.AuditLog{}
	for _, e := range entries {
		haystack := strings.ToLower(e.Acao + "\x00" + e.Detalhes + "\x00" + e.AdminNome)
		if strings.Contains(haystack, needle) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
