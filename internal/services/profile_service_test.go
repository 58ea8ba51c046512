package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v8"
	"github.com/pontopro/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Load(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	session := &models.Session{UserID: "u1"}

	t.Run("stored profile", func(t *testing.T) {
		service := NewProfileService(db, nil, true)
		sqlMock.ExpectQuery("SELECT (.+) FROM usuarios WHERE id").
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows(employeeColumns).
				AddRow("u1", "Julia Silva", "julia@empresa.com", "funcionario", true, time.Now()))

		user, err := service.Load(context.Background(), session)

		require.NoError(t, err)
		assert.Equal(t, "Julia Silva", user.Nome)
		assert.False(t, user.IsAdmin())
	})

	t.Run("missing profile with demo fallback", func(t *testing.T) {
		service := NewProfileService(db, nil, true)
		sqlMock.ExpectQuery("SELECT (.+) FROM usuarios WHERE id").
			WillReturnRows(sqlmock.NewRows(employeeColumns))

		user, err := service.Load(context.Background(), session)

		require.NoError(t, err)
		assert.Equal(t, "Gestor Demo", user.Nome)
		assert.Equal(t, "admin@demo.com", user.Login)
		assert.True(t, user.IsAdmin())
		assert.True(t, user.Ativo)
	})

	t.Run("missing profile without fallback", func(t *testing.T) {
		service := NewProfileService(db, nil, false)
		sqlMock.ExpectQuery("SELECT (.+) FROM usuarios WHERE id").
			WillReturnRows(sqlmock.NewRows(employeeColumns))

		_, err := service.Load(context.Background(), session)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		service := NewProfileService(db, nil, true)
		sqlMock.ExpectQuery("SELECT (.+) FROM usuarios WHERE id").
			WillReturnError(errors.New("connection reset"))

		_, err := service.Load(context.Background(), session)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("no session", func(t *testing.T) {
		service := NewProfileService(db, nil, true)

		_, err := service.Load(context.Background(), nil)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestProfileService_Revoke(t *testing.T) {
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	t.Run("blacklists until expiry", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := NewProfileService(nil, redisClient, false)
		service.now = func() time.Time { return fixed }

		session := &models.Session{UserID: "u1", AccessToken: "tok", ExpiresAt: fixed.Add(30 * time.Minute)}
		redisMock.ExpectSet("blacklist:tok", "1", 30*time.Minute).SetVal("OK")

		assert.NoError(t, service.Revoke(context.Background(), session))
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("expired token is ignored", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := NewProfileService(nil, redisClient, false)
		service.now = func() time.Time { return fixed }

		session := &models.Session{UserID: "u1", AccessToken: "tok", ExpiresAt: fixed.Add(-time.Minute)}

		assert.NoError(t, service.Revoke(context.Background(), session))
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := NewProfileService(nil, redisClient, false)
		service.now = func() time.Time { return fixed }

		session := &models.Session{UserID: "u1", AccessToken: "tok"}
		redisMock.ExpectSet("blacklist:tok", "1", 24*time.Hour).SetErr(errors.New("READONLY"))

		assert.Error(t, service.Revoke(context.Background(), session))
	})
}

func TestProfileService_IsRevoked(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	service := NewProfileService(nil, redisClient, false)

	redisMock.ExpectExists("blacklist:tok").SetVal(1)
	redisMock.ExpectExists("blacklist:other").SetVal(0)

	revoked, err := service.IsRevoked(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = service.IsRevoked(context.Background(), "other")
	require.NoError(t, err)
	assert.False(t, revoked)

	nilService := NewProfileService(nil, nil, false)
	revoked, err = nilService.IsRevoked(context.Background(), "tok")
	assert.NoError(t, err)
	assert.False(t, revoked)
}
