package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pontopro/backend/internal/audit"
	"github.com/pontopro/backend/internal/interval"
	"github.com/pontopro/backend/internal/models"
)

// Defaults shown when the company has not saved a configuration yet
const (
	DefaultDailyWorkload  = "08:00:00"
	DefaultToleranceMins  = 10
	DefaultAllowsTimeBank = true
)

type ConfigService struct {
	db        *sql.DB
	validator *ValidationHelper
	audit     AuditRecorder
}

func NewConfigService(db *sql.DB, auditRecorder AuditRecorder) *ConfigService {
	return &ConfigService{
		db:        db,
		validator: NewValidationHelper(),
		audit:     auditRecorder,
	}
}

// Get returns the stored configuration or the defaults when none exists
func (s *ConfigService) Get(ctx context.Context) (*models.CompanyConfigView, error) {
	var cfg models.CompanyConfig
	var empresaID sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, empresa_id, carga_horaria_diaria, tolerancia_minutos, permite_banco_horas, criado_em
		FROM configuracoes_empresa
		ORDER BY criado_em ASC
		LIMIT 1`).Scan(&cfg.ID, &empresaID, &cfg.CargaHorariaDiaria, &cfg.ToleranciaMinutos, &cfg.PermiteBancoHoras, &cfg.CriadoEm)
	if errors.Is(err, sql.ErrNoRows) {
		return configView(models.CompanyConfig{
			CargaHorariaDiaria: DefaultDailyWorkload,
			ToleranciaMinutos:  DefaultToleranceMins,
			PermiteBancoHoras:  DefaultAllowsTimeBank,
		}, false), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load company config: %w", err)
	}
	cfg.EmpresaID = empresaID.String
	return configView(cfg, true), nil
}

// Update validates and stores the configuration, inserting it on first save
func (s *ConfigService) Update(ctx context.Context, session *models.Session, update models.CompanyConfigUpdate, ip string) (*models.CompanyConfigView, error) {
	if err := s.validator.ValidateStruct(&update); err != nil {
		return nil, err
	}
	workload, err := interval.Parse(update.CargaHorariaDiaria)
	if err != nil || workload <= 0 || workload > 24*time.Hour {
		return nil, ErrInvalidWorkload
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	cfg := current.CompanyConfig
	cfg.CargaHorariaDiaria = update.CargaHorariaDiaria
	cfg.ToleranciaMinutos = *update.ToleranciaMinutos
	cfg.PermiteBancoHoras = *update.PermiteBancoHoras

	if current.Persisted {
		_, err = s.db.ExecContext(ctx, `
			UPDATE configuracoes_empresa
			SET carga_horaria_diaria = $1, tolerancia_minutos = $2, permite_banco_horas = $3
			WHERE id = $4`,
			cfg.CargaHorariaDiaria, cfg.ToleranciaMinutos, cfg.PermiteBancoHoras, cfg.ID)
	} else {
		err = s.db.QueryRowContext(ctx, `
			INSERT INTO configuracoes_empresa (carga_horaria_diaria, tolerancia_minutos, permite_banco_horas)
			VALUES ($1, $2, $3)
			RETURNING id, criado_em`,
			cfg.CargaHorariaDiaria, cfg.ToleranciaMinutos, cfg.PermiteBancoHoras).Scan(&cfg.ID, &cfg.CriadoEm)
	}
	if err != nil {
		log.Printf("[CONFIG] Save failed: %v", err)
		return nil, fmt.Errorf("save company config: %w", err)
	}

	log.Printf("[CONFIG] Company config saved: workload=%s tolerance=%d bank=%t",
		cfg.CargaHorariaDiaria, cfg.ToleranciaMinutos, cfg.PermiteBancoHoras)
	recordAudit(ctx, s.audit, session, audit.ActionConfigUpdated,
		fmt.Sprintf("Jornada %s, tolerância %d min, banco de horas %t",
			cfg.CargaHorariaDiaria, cfg.ToleranciaMinutos, cfg.PermiteBancoHoras), ip)

	return configView(cfg, true), nil
}

func configView(cfg models.CompanyConfig, persisted bool) *models.CompanyConfigView {
	return &models.CompanyConfigView{
		CompanyConfig:         cfg,
		CargaHorariaFormatada: interval.Format(cfg.CargaHorariaDiaria),
		Persisted:             persisted,
	}
}
