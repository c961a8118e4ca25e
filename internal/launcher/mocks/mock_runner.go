package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"edcstudio/internal/model"
)

type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Start(ctx context.Context, conn *model.Connector) error {
	args := m.Called(ctx, conn)
	return args.Error(0)
}

func (m *MockRunner) Stop(ctx context.Context, connectorID string) error {
	args := m.Called(ctx, connectorID)
	return args.Error(0)
}

func (m *MockRunner) StartHTTPLogger(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRunner) StopHTTPLogger(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
