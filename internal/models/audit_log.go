package models

import "time"

// AuditLog represents a row of the logs table
type AuditLog struct {
	ID        string    `json:"id"`
	UsuarioID string    `json:"usuario_id"`
	AdminNome string    `json:"admin_nome"`
	Acao      string    `json:"acao"`
	Detalhes  string    `json:"detalhes"`
	IP        string    `json:"ip"`
	CriadoEm  time.Time `json:"criado_em"`
}
