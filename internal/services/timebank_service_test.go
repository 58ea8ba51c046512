package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pontopro/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timeBankColumns = []string{"id", "usuario_id", "empresa_id", "data", "horas_trabalhadas", "horas_esperadas", "saldo", "criado_em", "nome"}

func TestTimeBankService_Fetch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	service := NewTimeBankService(db)
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	t.Run("rows returned", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM banco_horas b LEFT JOIN usuarios u").
			WillReturnRows(sqlmock.NewRows(timeBankColumns).
				AddRow("b1", "u1", "e1", day, "09:10:00", "08:00:00", "01:10:00", day, "Ana").
				AddRow("b2", "u2", "e1", day, nil, "08:00:00", "-08:00:00", nil, nil))

		result := service.Fetch(context.Background())

		assert.True(t, result.OK)
		require.Len(t, result.Rows, 2)
		assert.Equal(t, "Ana", result.Rows[0].UsuarioNome)
		assert.Equal(t, "", result.Rows[1].HorasTrabalhadas)
		assert.Equal(t, "", result.Rows[1].UsuarioNome)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM banco_horas").
			WillReturnRows(sqlmock.NewRows(timeBankColumns))

		result := service.Fetch(context.Background())

		assert.False(t, result.OK)
		assert.Equal(t, ReasonEmpty, result.Reason)
		assert.Nil(t, result.Err)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM banco_horas").
			WillReturnError(errors.New("permission denied for table banco_horas"))

		result := service.Fetch(context.Background())

		assert.False(t, result.OK)
		assert.Equal(t, ReasonUnavailable, result.Reason)
		assert.Error(t, result.Err)
	})
}

func TestResolveTimeBank(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	t.Run("failure substitutes exactly the two demo rows", func(t *testing.T) {
		for _, result := range []ListResult[models.TimeBankEntry]{
			{OK: false, Reason: ReasonEmpty},
			{OK: false, Reason: ReasonUnavailable, Err: errors.New("down")},
		} {
			rows, demo := ResolveTimeBank(result, now)

			assert.True(t, demo)
			require.Len(t, rows, 2)
			assert.Equal(t, "08:45:00", rows[0].HorasTrabalhadas)
			assert.Equal(t, "08:00:00", rows[0].HorasEsperadas)
			assert.Equal(t, "00:45:00", rows[0].Saldo)
			assert.Equal(t, "07:30:00", rows[1].HorasTrabalhadas)
			assert.Equal(t, "08:00:00", rows[1].HorasEsperadas)
			assert.Equal(t, "-00:30:00", rows[1].Saldo)
		}
	})

	t.Run("success keeps live rows", func(t *testing.T) {
		live := []models.TimeBankEntry{{ID: "b1", Saldo: "00:10:00"}}
		rows, demo := ResolveTimeBank(ListResult[models.TimeBankEntry]{OK: true, Rows: live}, now)

		assert.False(t, demo)
		assert.Equal(t, live, rows)
	})
}

func TestTimeBankViews(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	t.Run("demo rows", func(t *testing.T) {
		views := TimeBankViews(DemoTimeBankEntries(now))

		require.Len(t, views, 2)
		assert.Equal(t, "+8h 45m", views[0].Trabalhadas)
		assert.Equal(t, "+8h 00m", views[0].Esperadas)
		assert.Equal(t, "+0h 45m", views[0].Saldo)
		assert.True(t, views[0].BalancePositive)

		assert.Equal(t, "+7h 30m", views[1].Trabalhadas)
		assert.Equal(t, "-0h 30m", views[1].Saldo)
		assert.False(t, views[1].BalancePositive)
		assert.Equal(t, "2026-10-19", views[1].Data)
	})

	t.Run("styling uses the raw value", func(t *testing.T) {
		views := TimeBankViews([]models.TimeBankEntry{
			{Saldo: "garbage-value"},
			{Saldo: ""},
		})

		assert.Equal(t, "garbage-value", views[0].Saldo)
		assert.False(t, views[0].BalancePositive)
		assert.Equal(t, "0h 00m", views[1].Saldo)
		assert.True(t, views[1].BalancePositive)
	})
}
