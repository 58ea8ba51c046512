package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pontopro/backend/internal/audit"
	"github.com/pontopro/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestService_List(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	service := NewRequestService(db, nil)
	day := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	sqlMock.ExpectQuery("SELECT (.+) FROM solicitacoes s LEFT JOIN usuarios u (.+) ORDER BY s.criado_em DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "usuario_id", "empresa_id", "motivo", "data_inicio", "data_fim",
			"justificativa", "status", "aprovado_por", "aprovado_em", "criado_em", "nome"}).
			AddRow("r1", "u1", "e1", "Atestado", day, day, "Consulta médica", "pendente", nil, nil, day, "Ana Paula").
			AddRow("r2", "u2", nil, "Folga", day, nil, nil, "aprovado", "admin-1", day, day, nil))

	requests, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "Ana Paula", requests[0].UsuarioNome)
	assert.Nil(t, requests[0].AprovadoPor)
	assert.NotNil(t, requests[0].DataFim)
	require.NotNil(t, requests[1].AprovadoPor)
	assert.Equal(t, "admin-1", *requests[1].AprovadoPor)
	assert.Nil(t, requests[1].DataFim)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRequestService_Decide(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	newService := func(a AuditRecorder) *RequestService {
		s := NewRequestService(db, a)
		s.now = func() time.Time { return fixed }
		return s
	}

	t.Run("approve pending request", func(t *testing.T) {
		auditMock := new(MockAudit)
		service := newService(auditMock)

		sqlMock.ExpectExec("UPDATE solicitacoes SET status").
			WithArgs(models.RequestApproved, "admin-1", fixed, "r1", models.RequestPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		auditMock.On("Record", mock.MatchedBy(func(e audit.Entry) bool {
			return e.Acao == audit.ActionRequestApproved && e.UsuarioID == "admin-1"
		})).Return(nil)

		err := service.Approve(context.Background(), adminSession, "r1", "10.0.0.2")

		assert.NoError(t, err)
		auditMock.AssertExpectations(t)
	})

	t.Run("reject pending request", func(t *testing.T) {
		auditMock := new(MockAudit)
		service := newService(auditMock)

		sqlMock.ExpectExec("UPDATE solicitacoes SET status").
			WithArgs(models.RequestRejected, "admin-1", fixed, "r2", models.RequestPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		auditMock.On("Record", mock.MatchedBy(func(e audit.Entry) bool {
			return e.Acao == audit.ActionRequestRejected
		})).Return(nil)

		assert.NoError(t, service.Reject(context.Background(), adminSession, "r2", ""))
	})

	t.Run("already decided", func(t *testing.T) {
		auditMock := new(MockAudit)
		service := newService(auditMock)

		sqlMock.ExpectExec("UPDATE solicitacoes SET status").
			WillReturnResult(sqlmock.NewResult(0, 0))
		sqlMock.ExpectQuery("SELECT status FROM solicitacoes WHERE id").
			WithArgs("r3").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.RequestApproved))

		err := service.Reject(context.Background(), adminSession, "r3", "")

		assert.ErrorIs(t, err, ErrInvalidTransition)
		auditMock.AssertNotCalled(t, "Record", mock.Anything)
	})

	t.Run("unknown request", func(t *testing.T) {
		service := newService(nil)

		sqlMock.ExpectExec("UPDATE solicitacoes SET status").
			WillReturnResult(sqlmock.NewResult(0, 0))
		sqlMock.ExpectQuery("SELECT status FROM solicitacoes WHERE id").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"status"}))

		err := service.Approve(context.Background(), adminSession, "missing", "")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("decision is attributed to the loaded profile", func(t *testing.T) {
		service := newService(nil)
		session := &models.Session{UserID: "sub-9", Profile: &models.User{ID: "admin-7", Perfil: models.RoleAdmin}}

		sqlMock.ExpectExec("UPDATE solicitacoes SET status").
			WithArgs(models.RequestApproved, "admin-7", fixed, "r4", models.RequestPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, service.Approve(context.Background(), session, "r4", ""))
	})

	t.Run("demonstration administrator leaves approver empty", func(t *testing.T) {
		service := newService(nil)
		session := &models.Session{UserID: "sub-9", Profile: DemoAdminProfile()}

		sqlMock.ExpectExec("UPDATE solicitacoes SET status").
			WithArgs(models.RequestRejected, nil, fixed, "r5", models.RequestPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, service.Reject(context.Background(), session, "r5", ""))
	})

	t.Run("missing session", func(t *testing.T) {
		service := newService(nil)

		assert.Error(t, service.Approve(context.Background(), nil, "r1", ""))
	})

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
