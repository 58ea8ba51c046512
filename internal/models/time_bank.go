package models

import "time"

// TimeBankEntry represents a row of the banco_horas table. The three interval
// columns hold the raw Postgres text form ([-]HH:MM:SS). Saldo is computed by
// the external aggregation process and is never recomputed here.
type TimeBankEntry struct {
	ID               string    `json:"id"`
	UsuarioID        string    `json:"usuario_id"`
	EmpresaID        string    `json:"empresa_id"`
	UsuarioNome      string    `json:"usuario_nome,omitempty"`
	Data             time.Time `json:"data"`
	HorasTrabalhadas string    `json:"horas_trabalhadas"`
	HorasEsperadas   string    `json:"horas_esperadas"`
	Saldo            string    `json:"saldo"`
	CriadoEm         time.Time `json:"criado_em"`
}

// TimeBankView is a time-bank row prepared for display
type TimeBankView struct {
	ID              string `json:"id"`
	UsuarioID       string `json:"usuario_id"`
	UsuarioNome     string `json:"usuario_nome"`
	Data            string `json:"data"`
	Trabalhadas     string `json:"trabalhadas" example:"+8h 45m"`
	Esperadas       string `json:"esperadas" example:"+8h 00m"`
	Saldo           string `json:"saldo" example:"+0h 45m"`
	BalancePositive bool   `json:"balance_positive"`
}
