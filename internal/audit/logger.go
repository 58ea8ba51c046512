package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Actions written to logs.acao
const (
	ActionEmployeeCreated   = "FUNCIONARIO_CRIADO"
	ActionEmployeeImported  = "FUNCIONARIOS_IMPORTADOS"
	ActionEmployeeActivated = "FUNCIONARIO_ATIVADO"
	ActionEmployeeBlocked   = "FUNCIONARIO_DESATIVADO"
	ActionRequestApproved   = "SOLICITACAO_APROVADA"
	ActionRequestRejected   = "SOLICITACAO_REJEITADA"
	ActionConfigUpdated     = "CONFIGURACAO_ALTERADA"
	ActionReportExported    = "RELATORIO_EXPORTADO"
)

type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UsuarioID string    `json:"usuario_id"`
	Acao      string    `json:"acao"`
	Detalhes  string    `json:"detalhes"`
	IP        string    `json:"ip,omitempty"`
}

type Logger struct {
	db  *sql.DB
	now func() time.Time
}

func NewLogger(db *sql.DB) *Logger {
	return &Logger{db: db, now: time.Now}
}

// Record prints the entry and persists it to the logs table
func (a *Logger) Record(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = a.now().UTC()
	}

	data, _ := json.Marshal(entry)
	log.Printf("AUDIT: %s", string(data))

	if a.db == nil {
		return nil
	}

	var ip any
	if entry.IP != "" {
		ip = entry.IP
	}
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO logs (id, usuario_id, acao, detalhes, ip, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.UsuarioID, entry.Acao, entry.Detalhes, ip, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("persist audit entry: %w", err)
	}
	return nil
}
