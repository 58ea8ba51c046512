package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pontopro/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timeRecordColumns = []string{"id", "usuario_id", "empresa_id", "tipo", "data_hora", "latitude", "longitude", "ip", "criado_em", "nome"}

func TestTimeRecordService_Fetch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	service := NewTimeRecordService(db)
	at := time.Date(2026, 10, 19, 11, 5, 0, 0, time.UTC)

	t.Run("limited query with location", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pontos p (.+) ORDER BY p.data_hora DESC LIMIT \\$1").
			WithArgs(50).
			WillReturnRows(sqlmock.NewRows(timeRecordColumns).
				AddRow("p1", "u1", "e1", "saida", at, -23.55, -46.63, "10.1.1.1", at, "Ana"))

		result := service.Fetch(context.Background(), 50)

		require.True(t, result.OK)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "Ana", result.Rows[0].UsuarioNome)
		require.NotNil(t, result.Rows[0].Latitude)
		assert.Equal(t, -23.55, *result.Rows[0].Latitude)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connection failure", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pontos").WillReturnError(sql.ErrConnDone)

		result := service.Fetch(context.Background(), 0)

		assert.False(t, result.OK)
		assert.Equal(t, ReasonUnavailable, result.Reason)
	})
}

func TestResolveTimeRecords(t *testing.T) {
	now := time.Now()
	rows, demo := ResolveTimeRecords(ListResult[models.TimeRecord]{OK: false, Reason: ReasonEmpty}, now)

	assert.True(t, demo)
	require.Len(t, rows, 3)
	assert.Equal(t, "Carlos Eduardo", rows[0].UsuarioNome)
	assert.Equal(t, models.PunchBreakStart, rows[1].Tipo)
	assert.Equal(t, "189.12.33.1", rows[2].IP)
}

func TestTimeRecordViews(t *testing.T) {
	at := time.Date(2026, 10, 19, 14, 7, 0, 0, time.UTC)
	lat, lng := 1.0, 2.0

	views := TimeRecordViews([]models.TimeRecord{
		{ID: "1", Tipo: models.PunchBreakEnd, DataHora: at, Latitude: &lat, Longitude: &lng},
		{ID: "2", Tipo: "hora_extra", DataHora: at},
	}, time.FixedZone("BRT", -3*3600))

	require.Len(t, views, 2)
	assert.Equal(t, "Retorno Almoço", views[0].TipoLabel)
	assert.Equal(t, "19/10/2026", views[0].Data)
	assert.Equal(t, "11:07", views[0].Hora)
	assert.True(t, views[0].HasLocation)
	assert.Equal(t, "hora_extra", views[1].TipoLabel)
	assert.False(t, views[1].HasLocation)
}

func TestPunchLabel(t *testing.T) {
	assert.Equal(t, "Entrada", PunchLabel(models.PunchIn))
	assert.Equal(t, "Saída", PunchLabel(models.PunchOut))
}
