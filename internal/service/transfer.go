package service

import (
	"context"
	"fmt"

	"edcstudio/internal/edc"
	"edcstudio/internal/launcher"
	"edcstudio/internal/model"
	"edcstudio/internal/repository"
)

// TransferService orchestrates the data exchange lifecycle between two
// connectors: catalog retrieval, contract negotiation, transfer start and
// monitoring, plus the locally persisted transfer records and the
// http-logger sink.
type TransferService interface {
	CatalogRequest(ctx context.Context, consumerID, providerID string) (map[string]any, error)
	NegotiateContract(ctx context.Context, consumerID, providerID, contractOfferID, asset string) (map[string]any, error)
	ContractAgreement(ctx context.Context, consumerID, negotiationID string) (map[string]any, error)
	StartTransfer(ctx context.Context, consumerID, providerID, agreementID string) (map[string]any, error)
	StartTransferPull(ctx context.Context, consumerID, providerID, agreementID string) (map[string]any, error)
	CheckTransfer(ctx context.Context, consumerID, processID string) (map[string]any, error)
	CheckDataPull(ctx context.Context, consumerID, processID string) (map[string]any, error)

	CreateRecord(ctx context.Context, t *model.Transfer) (string, error)
	ListRecords(ctx context.Context) ([]model.TransferRecord, error)

	StartHTTPLogger(ctx context.Context) error
	StopHTTPLogger(ctx context.Context) error
	ProxyHTTPLogger(ctx context.Context) ([]byte, string, error)
	ProxyPull(ctx context.Context, uri, authorization string) ([]byte, string, error)
}

type transferService struct {
	connectors repository.ConnectorRepository
	transfers  repository.TransferRepository
	edc        edc.API
	runner     launcher.Runner

	deployType string
	loggerPort string
}

// NewTransferService constructs a TransferService. deployType and loggerPort
// locate the http-logger: on a localhost deployment it is reached through
// the published port, otherwise through its container name.
func NewTransferService(
	connectors repository.ConnectorRepository,
	transfers repository.TransferRepository,
	api edc.API,
	runner launcher.Runner,
	deployType, loggerPort string,
) TransferService {
	return &transferService{
		connectors: connectors,
		transfers:  transfers,
		edc:        api,
		runner:     runner,
		deployType: deployType,
		loggerPort: loggerPort,
	}
}

// pair resolves the consumer and provider connector documents.
func (s *transferService) pair(ctx context.Context, consumerID, providerID string) (*model.Connector, *model.Connector, error) {
	consumer, err := resolveConnector(ctx, s.connectors, consumerID)
	if err != nil {
		return nil, nil, err
	}
	provider, err := resolveConnector(ctx, s.connectors, providerID)
	if err != nil {
		return nil, nil, err
	}
	return consumer, provider, nil
}

func (s *transferService) CatalogRequest(ctx context.Context, consumerID, providerID string) (map[string]any, error) {
	consumer, provider, err := s.pair(ctx, consumerID, providerID)
	if err != nil {
		return nil, err
	}
	return s.edc.RequestCatalog(ctx, consumer, provider)
}

func (s *transferService) NegotiateContract(ctx context.Context, consumerID, providerID, contractOfferID, asset string) (map[string]any, error) {
	consumer, provider, err := s.pair(ctx, consumerID, providerID)
	if err != nil {
		return nil, err
	}
	return s.edc.NegotiateContract(ctx, consumer, provider, contractOfferID, asset)
}

func (s *transferService) ContractAgreement(ctx context.Context, consumerID, negotiationID string) (map[string]any, error) {
	consumer, err := resolveConnector(ctx, s.connectors, consumerID)
	if err != nil {
		return nil, err
	}
	return s.edc.GetNegotiation(ctx, consumer, negotiationID)
}

func (s *transferService) StartTransfer(ctx context.Context, consumerID, providerID, agreementID string) (map[string]any, error) {
	consumer, provider, err := s.pair(ctx, consumerID, providerID)
	if err != nil {
		return nil, err
	}
	return s.edc.StartTransfer(ctx, consumer, provider, agreementID)
}

func (s *transferService) StartTransferPull(ctx context.Context, consumerID, providerID, agreementID string) (map[string]any, error) {
	consumer, provider, err := s.pair(ctx, consumerID, providerID)
	if err != nil {
		return nil, err
	}
	return s.edc.StartTransferPull(ctx, consumer, provider, agreementID)
}

func (s *transferService) CheckTransfer(ctx context.Context, consumerID, processID string) (map[string]any, error) {
	consumer, err := resolveConnector(ctx, s.connectors, consumerID)
	if err != nil {
		return nil, err
	}
	return s.edc.GetTransferProcess(ctx, consumer, processID)
}

func (s *transferService) CheckDataPull(ctx context.Context, consumerID, processID string) (map[string]any, error) {
	consumer, err := resolveConnector(ctx, s.connectors, consumerID)
	if err != nil {
		return nil, err
	}
	return s.edc.GetDataAddress(ctx, consumer, processID)
}

// CreateRecord persists a transfer record after validating both connector
// references.
func (s *transferService) CreateRecord(ctx context.Context, t *model.Transfer) (string, error) {
	if _, _, err := s.pair(ctx, t.Consumer, t.Provider); err != nil {
		return "", err
	}
	return s.transfers.Create(ctx, t)
}

func (s *transferService) ListRecords(ctx context.Context) ([]model.TransferRecord, error) {
	return s.transfers.FindAll(ctx)
}

func (s *transferService) StartHTTPLogger(ctx context.Context) error {
	return s.runner.StartHTTPLogger(ctx)
}

func (s *transferService) StopHTTPLogger(ctx context.Context) error {
	return s.runner.StopHTTPLogger(ctx)
}

// ProxyHTTPLogger fetches the last body recorded by the http-logger.
func (s *transferService) ProxyHTTPLogger(ctx context.Context) ([]byte, string, error) {
	host := "http-logger"
	if s.deployType == "localhost" {
		host = "localhost"
	}
	return s.edc.Fetch(ctx, fmt.Sprintf("http://%s:%s/data", host, s.loggerPort), "")
}

// ProxyPull relays a pull-transfer endpoint, forwarding the EDR token in the
// Authorization header.
func (s *transferService) ProxyPull(ctx context.Context, uri, authorization string) ([]byte, string, error) {
	return s.edc.Fetch(ctx, uri, authorization)
}
