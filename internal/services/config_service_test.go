package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/pontopro/backend/internal/audit"
	"github.com/pontopro/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var configColumns = []string{"id", "empresa_id", "carga_horaria_diaria", "tolerancia_minutos", "permite_banco_horas", "criado_em"}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestConfigService_Get(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	service := NewConfigService(db, nil)

	t.Run("defaults when nothing saved", func(t *testing.T) {
		sqlMock.ExpectQuery("SELECT (.+) FROM configuracoes_empresa").
			WillReturnRows(sqlmock.NewRows(configColumns))

		view, err := service.Get(context.Background())

		require.NoError(t, err)
		assert.False(t, view.Persisted)
		assert.Equal(t, "08:00:00", view.CargaHorariaDiaria)
		assert.Equal(t, 10, view.ToleranciaMinutos)
		assert.True(t, view.PermiteBancoHoras)
		assert.Equal(t, "+8h 00m", view.CargaHorariaFormatada)
	})

	t.Run("stored row", func(t *testing.T) {
		sqlMock.ExpectQuery("SELECT (.+) FROM configuracoes_empresa").
			WillReturnRows(sqlmock.NewRows(configColumns).
				AddRow("c1", "e1", "06:00:00", 5, false, time.Now()))

		view, err := service.Get(context.Background())

		require.NoError(t, err)
		assert.True(t, view.Persisted)
		assert.Equal(t, "c1", view.ID)
		assert.Equal(t, "+6h 00m", view.CargaHorariaFormatada)
		assert.False(t, view.PermiteBancoHoras)
	})

	t.Run("query error", func(t *testing.T) {
		sqlMock.ExpectQuery("SELECT (.+) FROM configuracoes_empresa").
			WillReturnError(errors.New("relation does not exist"))

		_, err := service.Get(context.Background())

		assert.Error(t, err)
	})

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestConfigService_Update(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	valid := models.CompanyConfigUpdate{
		CargaHorariaDiaria: "07:30:00",
		ToleranciaMinutos:  intPtr(15),
		PermiteBancoHoras:  boolPtr(false),
	}

	t.Run("updates existing row", func(t *testing.T) {
		auditMock := new(MockAudit)
		service := NewConfigService(db, auditMock)

		sqlMock.ExpectQuery("SELECT (.+) FROM configuracoes_empresa").
			WillReturnRows(sqlmock.NewRows(configColumns).
				AddRow("c1", "e1", "08:00:00", 10, true, time.Now()))
		sqlMock.ExpectExec("UPDATE configuracoes_empresa SET").
			WithArgs("07:30:00", 15, false, "c1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		auditMock.On("Record", mock.MatchedBy(func(e audit.Entry) bool {
			return e.Acao == audit.ActionConfigUpdated
		})).Return(nil)

		view, err := service.Update(context.Background(), adminSession, valid, "")

		require.NoError(t, err)
		assert.True(t, view.Persisted)
		assert.Equal(t, "+7h 30m", view.CargaHorariaFormatada)
		auditMock.AssertExpectations(t)
	})

	t.Run("inserts on first save", func(t *testing.T) {
		auditMock := new(MockAudit)
		service := NewConfigService(db, auditMock)
		created := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

		sqlMock.ExpectQuery("SELECT (.+) FROM configuracoes_empresa").
			WillReturnRows(sqlmock.NewRows(configColumns))
		sqlMock.ExpectQuery("INSERT INTO configuracoes_empresa").
			WithArgs("07:30:00", 15, false).
			WillReturnRows(sqlmock.NewRows([]string{"id", "criado_em"}).AddRow("c2", created))
		auditMock.On("Record", mock.Anything).Return(nil)

		view, err := service.Update(context.Background(), adminSession, valid, "")

		require.NoError(t, err)
		assert.Equal(t, "c2", view.ID)
		assert.Equal(t, created, view.CriadoEm)
	})

	t.Run("tolerance out of range", func(t *testing.T) {
		service := NewConfigService(db, nil)
		invalid := valid
		invalid.ToleranciaMinutos = intPtr(121)

		_, err := service.Update(context.Background(), adminSession, invalid, "")

		var fieldErrs validator.ValidationErrors
		assert.True(t, errors.As(err, &fieldErrs))
	})

	t.Run("malformed workload", func(t *testing.T) {
		service := NewConfigService(db, nil)

		for _, raw := range []string{"8h", "08:60:00", "-08:00:00", "00:00:00", "25:00:00"} {
			invalid := valid
			invalid.CargaHorariaDiaria = raw

			_, err := service.Update(context.Background(), adminSession, invalid, "")

			assert.ErrorIs(t, err, ErrInvalidWorkload, raw)
		}
	})

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
