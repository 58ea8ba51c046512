package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var auditColumns = []string{"id", "usuario_id", "acao", "detalhes", "ip", "criado_em", "nome"}

func TestAuditService_List(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	service := NewAuditService(db)
	at := time.Date(2026, 10, 18, 17, 45, 0, 0, time.UTC)

	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows(auditColumns).
			AddRow("l1", "admin-1", "SOLICITACAO_APROVADA", "Solicitação r1", "10.0.0.1", at, "Marcos André").
			AddRow("l2", nil, "BACKUP_DIARIO", nil, nil, at, nil)
	}

	t.Run("placeholders for missing actor and ip", func(t *testing.T) {
		sqlMock.ExpectQuery("SELECT (.+) FROM logs l LEFT JOIN usuarios u").WillReturnRows(rows())

		entries, err := service.List(context.Background(), "", 0)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Marcos André", entries[0].AdminNome)
		assert.Equal(t, SystemActor, entries[1].AdminNome)
		assert.Equal(t, UnknownIP, entries[1].IP)
	})

	t.Run("search matches placeholder actor", func(t *testing.T) {
		sqlMock.ExpectQuery("SELECT (.+) FROM logs").
			WithArgs(50).
			WillReturnRows(rows())

		entries, err := service.List(context.Background(), "sistema", 50)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "l2", entries[0].ID)
	})

	t.Run("search matches details", func(t *testing.T) {
		sqlMock.ExpectQuery("SELECT (.+) FROM logs").WillReturnRows(rows())

		entries, err := service.List(context.Background(), "SOLICITAÇÃO", 0)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "l1", entries[0].ID)
	})

	t.Run("query error", func(t *testing.T) {
		sqlMock.ExpectQuery("SELECT (.+) FROM logs").WillReturnError(errors.New("timeout"))

		_, err := service.List(context.Background(), "", 0)

		assert.Error(t, err)
	})

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
