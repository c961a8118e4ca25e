package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"edcstudio/internal/model"
)

type MockConnectorRepository struct {
	mock.Mock
}

func (m *MockConnectorRepository) Create(ctx context.Context, c *model.Connector) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}

func (m *MockConnectorRepository) FindByID(ctx context.Context, id string) (*model.Connector, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Connector), args.Error(1)
}

func (m *MockConnectorRepository) FindAll(ctx context.Context) ([]model.Connector, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Connector), args.Error(1)
}

func (m *MockConnectorRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockConnectorRepository) UpdateState(ctx context.Context, id, state string) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}

func (m *MockConnectorRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) Create(ctx context.Context, t *model.Transfer) (string, error) {
	args := m.Called(ctx, t)
	return args.String(0), args.Error(1)
}

func (m *MockTransferRepository) FindAll(ctx context.Context) ([]model.TransferRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TransferRecord), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *model.User) (string, error) {
	args := m.Called(ctx, u)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPondFileRepository struct {
	mock.Mock
}

func (m *MockPondFileRepository) Upsert(ctx context.Context, f *model.PondFile) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockPondFileRepository) FindByUser(ctx context.Context, username string) ([]model.PondFile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PondFile), args.Error(1)
}

func (m *MockPondFileRepository) Find(ctx context.Context, username, filename string) (*model.PondFile, error) {
	args := m.Called(ctx, username, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PondFile), args.Error(1)
}

func (m *MockPondFileRepository) Delete(ctx context.Context, username, filename string) error {
	args := m.Called(ctx, username, filename)
	return args.Error(0)
}
