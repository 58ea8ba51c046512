package models

import "time"

// Request statuses stored in solicitacoes.status
const (
	RequestPending  = "pendente"
	RequestApproved = "aprovado"
	RequestRejected = "rejeitado"
)

// LeaveRequest represents a row of the solicitacoes table
type LeaveRequest struct {
	ID            string     `json:"id"`
	UsuarioID     string     `json:"usuario_id"`
	EmpresaID     string     `json:"empresa_id"`
	UsuarioNome   string     `json:"usuario_nome,omitempty"`
	Motivo        string     `json:"motivo"`
	DataInicio    time.Time  `json:"data_inicio"`
	DataFim       *time.Time `json:"data_fim,omitempty"`
	Justificativa string     `json:"justificativa"`
	Status        string     `json:"status"`
	AprovadoPor   *string    `json:"aprovado_por,omitempty"`
	AprovadoEm    *time.Time `json:"aprovado_em,omitempty"`
	CriadoEm      time.Time  `json:"criado_em"`
}
