package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"edcstudio/internal/model"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) CreateAsset(ctx context.Context, conn *model.Connector, a *model.Asset) (map[string]any, error) {
	args := m.Called(ctx, conn, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAPI) GetAsset(ctx context.Context, conn *model.Connector, assetID string) (*model.Asset, error) {
	args := m.Called(ctx, conn, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAPI) ListAssets(ctx context.Context, conn *model.Connector) ([]model.Asset, error) {
	args := m.Called(ctx, conn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Asset), args.Error(1)
}

func (m *MockAPI) UpdateAsset(ctx context.Context, conn *model.Connector, a *model.Asset) error {
	args := m.Called(ctx, conn, a)
	return args.Error(0)
}

func (m *MockAPI) DeleteAsset(ctx context.Context, conn *model.Connector, assetID string) error {
	args := m.Called(ctx, conn, assetID)
	return args.Error(0)
}

func (m *MockAPI) CreatePolicy(ctx context.Context, conn *model.Connector, p *model.Policy) (map[string]any, error) {
	args := m.Called(ctx, conn, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAPI) ListPolicies(ctx context.Context, conn *model.Connector) ([]model.Policy, error) {
	args := m.Called(ctx, conn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Policy), args.Error(1)
}

func (m *MockAPI) GetPolicy(ctx context.Context, conn *model.Connector, policyID string) (*model.Policy, error) {
	args := m.Called(ctx, conn, policyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Policy), args.Error(1)
}

func (m *MockAPI) DeletePolicy(ctx context.Context, conn *model.Connector, policyID string) error {
	args := m.Called(ctx, conn, policyID)
	return args.Error(0)
}

func (m *MockAPI) CreateContract(ctx context.Context, conn *model.Connector, ct *model.Contract) (map[string]any, error) {
	args := m.Called(ctx, conn, ct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAPI) ListContracts(ctx context.Context, conn *model.Connector) ([]model.Contract, error) {
	args := m.Called(ctx, conn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contract), args.Error(1)
}

func (m *MockAPI) GetContract(ctx context.Context, conn *model.Connector, contractID string) (*model.Contract, error) {
	args := m.Called(ctx, conn, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockAPI) UpdateContract(ctx context.Context, conn *model.Connector, ct *model.Contract) error {
	args := m.Called(ctx, conn, ct)
	return args.Error(0)
}

func (m *MockAPI) DeleteContract(ctx context.Context, conn *model.Connector, contractID string) error {
	args := m.Called(ctx, conn, contractID)
	return args.Error(0)
}

func (m *MockAPI) RequestCatalog(ctx context.Context, consumer, provider *model.Connector) (map[string]any, error) {
	args := m.Called(ctx, consumer, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAPI) NegotiateContract(ctx context.Context, consumer, provider *model.Connector, contractOfferID, asset string) (map[string]any, error) {
	args := m.Called(ctx, consumer, provider, contractOfferID, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAPI) GetNegotiation(ctx context.Context, consumer *model.Connector, negotiationID string) (map[string]any, error) {
	args := m.Called(ctx, consumer, negotiationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAPI) StartTransfer(ctx context.Context, consumer, provider *model.Connector, agreementID string) (map[string]any, error) {
	args := m.Called(ctx, consumer, provider, agreementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAPI) StartTransferPull(ctx context.Context, consumer, provider *model.Connector, agreementID string) (map[string]any, error) {
	args := m.Called(ctx, consumer, provider, agreementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAPI) GetTransferProcess(ctx context.Context, consumer *model.Connector, processID string) (map[string]any, error) {
	args := m.Called(ctx, consumer, processID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAPI) GetDataAddress(ctx context.Context, consumer *model.Connector, processID string) (map[string]any, error) {
	args := m.Called(ctx, consumer, processID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAPI) Fetch(ctx context.Context, uri, authorization string) ([]byte, string, error) {
	args := m.Called(ctx, uri, authorization)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
