package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"edcstudio/internal/model"
)

type MockConnectorService struct {
	mock.Mock
}

func (m *MockConnectorService) Create(ctx context.Context, conn *model.Connector) (string, error) {
	args := m.Called(ctx, conn)
	return args.String(0), args.Error(1)
}

func (m *MockConnectorService) List(ctx context.Context) ([]model.Connector, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Connector), args.Error(1)
}

func (m *MockConnectorService) Get(ctx context.Context, id string) (*model.Connector, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Connector), args.Error(1)
}

func (m *MockConnectorService) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockConnectorService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockConnectorService) Start(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockConnectorService) Stop(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) Create(ctx context.Context, a *model.Asset) (map[string]any, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAssetService) ListByEDC(ctx context.Context, edcID string) ([]model.Asset, error) {
	args := m.Called(ctx, edcID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Asset), args.Error(1)
}

func (m *MockAssetService) Get(ctx context.Context, edcID, assetID string) (*model.Asset, error) {
	args := m.Called(ctx, edcID, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) Update(ctx context.Context, edcID string, a *model.Asset) error {
	args := m.Called(ctx, edcID, a)
	return args.Error(0)
}

func (m *MockAssetService) Delete(ctx context.Context, edcID, assetID string) error {
	args := m.Called(ctx, edcID, assetID)
	return args.Error(0)
}

type MockPolicyService struct {
	mock.Mock
}

func (m *MockPolicyService) Create(ctx context.Context, p *model.Policy) (map[string]any, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockPolicyService) ListByEDC(ctx context.Context, edcID string) ([]model.Policy, error) {
	args := m.Called(ctx, edcID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Policy), args.Error(1)
}

func (m *MockPolicyService) Get(ctx context.Context, edcID, policyID string) (*model.Policy, error) {
	args := m.Called(ctx, edcID, policyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Policy), args.Error(1)
}

func (m *MockPolicyService) Delete(ctx context.Context, edcID, policyID string) error {
	args := m.Called(ctx, edcID, policyID)
	return args.Error(0)
}

type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) Create(ctx context.Context, ct *model.Contract) (map[string]any, error) {
	args := m.Called(ctx, ct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockContractService) ListByEDC(ctx context.Context, edcID string) ([]model.Contract, error) {
	args := m.Called(ctx, edcID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contract), args.Error(1)
}

func (m *MockContractService) Get(ctx context.Context, edcID, contractID string) (*model.Contract, error) {
	args := m.Called(ctx, edcID, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractService) Update(ctx context.Context, edcID string, ct *model.Contract) error {
	args := m.Called(ctx, edcID, ct)
	return args.Error(0)
}

func (m *MockContractService) Delete(ctx context.Context, edcID, contractID string) error {
	args := m.Called(ctx, edcID, contractID)
	return args.Error(0)
}

type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) CatalogRequest(ctx context.Context, consumerID, providerID string) (map[string]any, error) {
	args := m.Called(ctx, consumerID, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockTransferService) NegotiateContract(ctx context.Context, consumerID, providerID, contractOfferID, asset string) (map[string]any, error) {
	args := m.Called(ctx, consumerID, providerID, contractOfferID, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockTransferService) ContractAgreement(ctx context.Context, consumerID, negotiationID string) (map[string]any, error) {
	args := m.Called(ctx, consumerID, negotiationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockTransferService) StartTransfer(ctx context.Context, consumerID, providerID, agreementID string) (map[string]any, error) {
	args := m.Called(ctx, consumerID, providerID, agreementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockTransferService) StartTransferPull(ctx context.Context, consumerID, providerID, agreementID string) (map[string]any, error) {
	args := m.Called(ctx, consumerID, providerID, agreementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockTransferService) CheckTransfer(ctx context.Context, consumerID, processID string) (map[string]any, error) {
	args := m.Called(ctx, consumerID, processID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockTransferService) CheckDataPull(ctx context.Context, consumerID, processID string) (map[string]any, error) {
	args := m.Called(ctx, consumerID, processID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockTransferService) CreateRecord(ctx context.Context, t *model.Transfer) (string, error) {
	args := m.Called(ctx, t)
	return args.String(0), args.Error(1)
}

func (m *MockTransferService) ListRecords(ctx context.Context) ([]model.TransferRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TransferRecord), args.Error(1)
}

func (m *MockTransferService) StartHTTPLogger(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransferService) StopHTTPLogger(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransferService) ProxyHTTPLogger(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockTransferService) ProxyPull(ctx context.Context, uri, authorization string) ([]byte, string, error) {
	args := m.Called(ctx, uri, authorization)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, u *model.User, password string) (*model.User, error) {
	args := m.Called(ctx, u, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, u *model.User, password string) (*model.User, error) {
	args := m.Called(ctx, u, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockUserService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserService) ByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockDataPondService struct {
	mock.Mock
}

func (m *MockDataPondService) Upload(ctx context.Context, username string, r io.Reader, filename, contentType string, size int64) (*model.PondFile, error) {
	args := m.Called(ctx, username, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PondFile), args.Error(1)
}

func (m *MockDataPondService) List(ctx context.Context, requester *model.User, username string) ([]model.PondFile, error) {
	args := m.Called(ctx, requester, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PondFile), args.Error(1)
}

func (m *MockDataPondService) Download(ctx context.Context, username, filename string) (io.ReadCloser, *model.PondFile, error) {
	args := m.Called(ctx, username, filename)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	var f *model.PondFile
	if args.Get(1) != nil {
		f = args.Get(1).(*model.PondFile)
	}
	return rc, f, args.Error(2)
}

func (m *MockDataPondService) Delete(ctx context.Context, username, filename string) error {
	args := m.Called(ctx, username, filename)
	return args.Error(0)
}
