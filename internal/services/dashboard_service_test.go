package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/pontopro/backend/internal/edge"
	"github.com/pontopro/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Load(t *testing.T) {
	live := models.DashboardData{
		TotalFuncionarios:     30,
		PontosHoje:            25,
		AusentesHoje:          5,
		HorasExtrasMes:        12,
		HorasNegativasMes:     3,
		SolicitacoesPendentes: 1,
	}
	liveJSON, err := json.Marshal(live)
	require.NoError(t, err)
	ttl := 2 * time.Minute

	t.Run("cache miss calls edge and stores result", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		edgeMock := &MockEdge{Response: live}
		service := NewDashboardService(edgeMock, redisClient, ttl, true)

		redisMock.ExpectGet("dashboard:admin-1").RedisNil()
		redisMock.ExpectSet("dashboard:admin-1", liveJSON, ttl).SetVal("OK")
		edgeMock.On("Invoke", "token-abc", edge.FunctionDashboardData, mock.Anything).Return(nil)

		view, err := service.Load(context.Background(), adminSession)

		require.NoError(t, err)
		assert.False(t, view.Demo)
		assert.Equal(t, live, view.Metrics)
		assert.Len(t, view.Weekly, 7)
		assert.Len(t, view.Status, 4)
		edgeMock.AssertExpectations(t)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips edge", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		edgeMock := new(MockEdge)
		service := NewDashboardService(edgeMock, redisClient, ttl, true)

		redisMock.ExpectGet("dashboard:admin-1").SetVal(string(liveJSON))

		view, err := service.Load(context.Background(), adminSession)

		require.NoError(t, err)
		assert.Equal(t, live, view.Metrics)
		edgeMock.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("edge failure falls back to demonstration data", func(t *testing.T) {
		edgeMock := new(MockEdge)
		service := NewDashboardService(edgeMock, nil, ttl, true)

		edgeMock.On("Invoke", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		view, err := service.Load(context.Background(), adminSession)

		require.NoError(t, err)
		assert.True(t, view.Demo)
		assert.Equal(t, 124, view.Metrics.TotalFuncionarios)
		assert.Equal(t, 118, view.Metrics.PontosHoje)
		assert.Equal(t, 6, view.Metrics.AusentesHoje)
		assert.Equal(t, 342, view.Metrics.HorasExtrasMes)
		assert.Equal(t, 54, view.Metrics.HorasNegativasMes)
		assert.Equal(t, 12, view.Metrics.SolicitacoesPendentes)
	})

	t.Run("null aggregate falls back without caching", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		edgeMock := &MockEdge{Response: nil}
		service := NewDashboardService(edgeMock, redisClient, ttl, true)

		redisMock.ExpectGet("dashboard:admin-1").RedisNil()
		edgeMock.On("Invoke", "token-abc", edge.FunctionDashboardData, mock.Anything).Return(nil)

		view, err := service.Load(context.Background(), adminSession)

		require.NoError(t, err)
		assert.True(t, view.Demo)
		assert.Equal(t, DemoDashboardData(), view.Metrics)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("null aggregate without fallback", func(t *testing.T) {
		edgeMock := new(MockEdge)
		service := NewDashboardService(edgeMock, nil, ttl, false)

		edgeMock.On("Invoke", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := service.Load(context.Background(), adminSession)

		assert.ErrorIs(t, err, ErrDashboardEmpty)
	})

	t.Run("edge failure without fallback", func(t *testing.T) {
		edgeMock := new(MockEdge)
		service := NewDashboardService(edgeMock, nil, ttl, false)

		edgeMock.On("Invoke", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		_, err := service.Load(context.Background(), adminSession)

		assert.Error(t, err)
	})
}

func TestWeeklyHoursSeries(t *testing.T) {
	series := WeeklyHoursSeries()

	require.Len(t, series, 7)
	assert.Equal(t, models.WeeklyHours{Name: "Seg", Horas: 840}, series[0])
	assert.Equal(t, models.WeeklyHours{Name: "Sáb", Horas: 120}, series[5])
	assert.Equal(t, 0, series[6].Horas)
}
