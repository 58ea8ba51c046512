package models

import "time"

// Role values stored in usuarios.perfil
const (
	RoleAdmin    = "admin"
	RoleEmployee = "funcionario"
)

// User represents a row of the usuarios table
type User struct {
	ID       string    `json:"id" db:"id" example:"3f1c2a4e-1d2b-4c3d-9e8f-001122334455"`
	Nome     string    `json:"nome" db:"nome" example:"Julia Silva"`
	Login    string    `json:"login" db:"login" example:"julia@empresa.com"`
	Perfil   string    `json:"perfil" db:"perfil" example:"funcionario"`
	Ativo    bool      `json:"ativo" db:"ativo"`
	CriadoEm time.Time `json:"criado_em" db:"criado_em"`
}

// IsAdmin reports whether the profile may use the admin dashboard
func (u *User) IsAdmin() bool {
	return u != nil && u.Perfil == RoleAdmin
}

// CreateEmployeeRequest is forwarded to the create-user edge function
type CreateEmployeeRequest struct {
	Nome      string `json:"nome" validate:"required,min=2,max=120" example:"Julia Silva"`
	Login     string `json:"login" validate:"required,email" example:"julia@empresa.com"`
	Senha     string `json:"senha" validate:"required,min=8" example:"troque-me-123"`
	Perfil    string `json:"perfil" validate:"required,oneof=admin funcionario" example:"funcionario"`
	EmpresaID string `json:"empresa_id,omitempty"`
}

// StatusUpdateRequest toggles an employee's access
type StatusUpdateRequest struct {
	Ativo *bool `json:"ativo" validate:"required"`
}
