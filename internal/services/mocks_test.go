package services

import (
	"context"
	"encoding/json"

	"github.com/pontopro/backend/internal/audit"
	"github.com/stretchr/testify/mock"
)

type MockEdge struct {
	mock.Mock
	// Response is copied into out when Invoke succeeds
	Response any
}

func (m *MockEdge) Invoke(ctx context.Context, accessToken, function string, payload, out any) error {
	args := m.Called(accessToken, function, payload)
	if err := args.Error(0); err != nil {
		return err
	}
	if m.Response != nil && out != nil {
		raw, err := json.Marshal(m.Response)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, out)
	}
	return nil
}

type MockAudit struct {
	mock.Mock
}

func (m *MockAudit) Record(ctx context.Context, entry audit.Entry) error {
	args := m.Called(entry)
	return args.Error(0)
}
