package models

import "time"

// CompanyConfig represents a row of the configuracoes_empresa table
type CompanyConfig struct {
	ID                 string    `json:"id,omitempty"`
	EmpresaID          string    `json:"empresa_id,omitempty"`
	CargaHorariaDiaria string    `json:"carga_horaria_diaria" example:"08:00:00"`
	ToleranciaMinutos  int       `json:"tolerancia_minutos" example:"10"`
	PermiteBancoHoras  bool      `json:"permite_banco_horas"`
	CriadoEm           time.Time `json:"criado_em,omitempty"`
}

// CompanyConfigUpdate is the payload accepted by PUT /config
type CompanyConfigUpdate struct {
	CargaHorariaDiaria string `json:"carga_horaria_diaria" validate:"required" example:"08:00:00"`
	ToleranciaMinutos  *int   `json:"tolerancia_minutos" validate:"required,gte=0,lte=120" example:"10"`
	PermiteBancoHoras  *bool  `json:"permite_banco_horas" validate:"required"`
}

// CompanyConfigView is the configuration as shown on the settings screen
type CompanyConfigView struct {
	CompanyConfig
	CargaHorariaFormatada string `json:"carga_horaria_formatada" example:"+8h 00m"`
	Persisted             bool   `json:"persisted"`
}
