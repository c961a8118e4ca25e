package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	edcmocks "edcstudio/internal/edc/mocks"
	launchermocks "edcstudio/internal/launcher/mocks"
	"edcstudio/internal/model"
	"edcstudio/internal/repository"
	repomocks "edcstudio/internal/repository/mocks"
)

func transferFixtures() (*model.Connector, *model.Connector) {
	consumer := &model.Connector{ID: "65a000000000000000000001", Type: model.ConnectorTypeConsumer}
	provider := &model.Connector{ID: "65a000000000000000000002", Type: model.ConnectorTypeProvider}
	return consumer, provider
}

func newTransferService(connectors *repomocks.MockConnectorRepository, transfers *repomocks.MockTransferRepository, api *edcmocks.MockAPI, runner *launchermocks.MockRunner, deployType string) TransferService {
	return NewTransferService(connectors, transfers, api, runner, deployType, "4000")
}

func TestCatalogRequest(t *testing.T) {
	consumer, provider := transferFixtures()

	tests := []struct {
		name       string
		setupMocks func(repo *repomocks.MockConnectorRepository, api *edcmocks.MockAPI)
		wantErr    error
	}{
		{
			name: "success",
			setupMocks: func(repo *repomocks.MockConnectorRepository, api *edcmocks.MockAPI) {
				repo.On("FindByID", mock.Anything, consumer.ID).Return(consumer, nil)
				repo.On("FindByID", mock.Anything, provider.ID).Return(provider, nil)
				api.On("RequestCatalog", mock.Anything, consumer, provider).Return(map[string]any{"@type": "dcat:Catalog"}, nil)
			},
		},
		{
			name: "unknown provider",
			setupMocks: func(repo *repomocks.MockConnectorRepository, api *edcmocks.MockAPI) {
				repo.On("FindByID", mock.Anything, consumer.ID).Return(consumer, nil)
				repo.On("FindByID", mock.Anything, provider.ID).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrConnectorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repomocks.MockConnectorRepository)
			api := new(edcmocks.MockAPI)
			tt.setupMocks(repo, api)

			svc := newTransferService(repo, new(repomocks.MockTransferRepository), api, new(launchermocks.MockRunner), "localhost")
			out, err := svc.CatalogRequest(context.Background(), consumer.ID, provider.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "dcat:Catalog", out["@type"])
		})
	}
}

func TestCreateRecordValidatesConnectors(t *testing.T) {
	consumer, provider := transferFixtures()
	transfer := &model.Transfer{
		Consumer:     consumer.ID,
		Provider:     provider.ID,
		Asset:        "asset-1",
		TransferFlow: model.TransferFlowPush,
	}

	repo := new(repomocks.MockConnectorRepository)
	transfers := new(repomocks.MockTransferRepository)
	repo.On("FindByID", mock.Anything, consumer.ID).Return(consumer, nil)
	repo.On("FindByID", mock.Anything, provider.ID).Return(provider, nil)
	transfers.On("Create", mock.Anything, transfer).Return("65a000000000000000000003", nil)

	svc := newTransferService(repo, transfers, new(edcmocks.MockAPI), new(launchermocks.MockRunner), "localhost")
	id, err := svc.CreateRecord(context.Background(), transfer)
	require.NoError(t, err)
	assert.Equal(t, "65a000000000000000000003", id)
}

func TestCreateRecordUnknownConsumer(t *testing.T) {
	consumer, provider := transferFixtures()

	repo := new(repomocks.MockConnectorRepository)
	transfers := new(repomocks.MockTransferRepository)
	repo.On("FindByID", mock.Anything, consumer.ID).Return(nil, repository.ErrNotFound)

	svc := newTransferService(repo, transfers, new(edcmocks.MockAPI), new(launchermocks.MockRunner), "localhost")
	_, err := svc.CreateRecord(context.Background(), &model.Transfer{Consumer: consumer.ID, Provider: provider.ID})
	assert.ErrorIs(t, err, ErrConnectorNotFound)
	transfers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProxyHTTPLoggerHostSelection(t *testing.T) {
	tests := []struct {
		name       string
		deployType string
		wantURL    string
	}{
		{name: "localhost deployment", deployType: "localhost", wantURL: "http://localhost:4000/data"},
		{name: "docker deployment", deployType: "docker", wantURL: "http://http-logger:4000/data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(edcmocks.MockAPI)
			api.On("Fetch", mock.Anything, tt.wantURL, "").Return([]byte("last body"), "text/plain", nil)

			svc := newTransferService(new(repomocks.MockConnectorRepository), new(repomocks.MockTransferRepository), api, new(launchermocks.MockRunner), tt.deployType)
			body, contentType, err := svc.ProxyHTTPLogger(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "last body", string(body))
			assert.Equal(t, "text/plain", contentType)
			api.AssertExpectations(t)
		})
	}
}

func TestProxyPullRelaysAuthorization(t *testing.T) {
	api := new(edcmocks.MockAPI)
	api.On("Fetch", mock.Anything, "http://provider:19291/public", "edr-token").Return([]byte("{}"), "application/json", nil)

	svc := newTransferService(new(repomocks.MockConnectorRepository), new(repomocks.MockTransferRepository), api, new(launchermocks.MockRunner), "localhost")
	_, _, err := svc.ProxyPull(context.Background(), "http://provider:19291/public", "edr-token")
	assert.NoError(t, err)
	api.AssertExpectations(t)
}

func TestHTTPLoggerLifecycleDelegates(t *testing.T) {
	runner := new(launchermocks.MockRunner)
	runner.On("StartHTTPLogger", mock.Anything).Return(nil)
	runner.On("StopHTTPLogger", mock.Anything).Return(nil)

	svc := newTransferService(new(repomocks.MockConnectorRepository), new(repomocks.MockTransferRepository), new(edcmocks.MockAPI), runner, "localhost")
	assert.NoError(t, svc.StartHTTPLogger(context.Background()))
	assert.NoError(t, svc.StopHTTPLogger(context.Background()))
	runner.AssertExpectations(t)
}
