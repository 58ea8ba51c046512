package models

import "time"

// Punch types stored in pontos.tipo
const (
	PunchIn         = "entrada"
	PunchBreakStart = "pausa"
	PunchBreakEnd   = "retorno"
	PunchOut        = "saida"
)

// TimeRecord represents a row of the pontos table
type TimeRecord struct {
	ID          string    `json:"id"`
	UsuarioID   string    `json:"usuario_id"`
	EmpresaID   string    `json:"empresa_id"`
	UsuarioNome string    `json:"usuario_nome,omitempty"`
	Tipo        string    `json:"tipo"`
	DataHora    time.Time `json:"data_hora"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	IP          string    `json:"ip,omitempty"`
	CriadoEm    time.Time `json:"criado_em"`
}

// TimeRecordView is a record prepared for display
type TimeRecordView struct {
	ID          string `json:"id"`
	UsuarioNome string `json:"usuario_nome"`
	Tipo        string `json:"tipo"`
	TipoLabel   string `json:"tipo_label"`
	Data        string `json:"data"`
	Hora        string `json:"hora"`
	IP          string `json:"ip"`
	HasLocation bool   `json:"has_location"`
}
