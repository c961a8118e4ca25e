package service

import (
	"context"

	"edcstudio/internal/edc"
	"edcstudio/internal/model"
	"edcstudio/internal/repository"
)

// ContractService proxies contract definition operations to the owning
// connector's management API.
type ContractService interface {
	Create(ctx context.Context, ct *model.Contract) (map[string]any, error)
	ListByEDC(ctx context.Context, edcID string) ([]model.Contract, error)
	Get(ctx context.Context, edcID, contractID string) (*model.Contract, error)
	Update(ctx context.Context, edcID string, ct *model.Contract) error
	Delete(ctx context.Context, edcID, contractID string) error
}

type contractService struct {
	connectors repository.ConnectorRepository
	edc        edc.API
}

// NewContractService constructs a ContractService.
func NewContractService(connectors repository.ConnectorRepository, api edc.API) ContractService {
	return &contractService{connectors: connectors, edc: api}
}

func (s *contractService) Create(ctx context.Context, ct *model.Contract) (map[string]any, error) {
	conn, err := resolveConnector(ctx, s.connectors, ct.EDC)
	if err != nil {
		return nil, err
	}
	return s.edc.CreateContract(ctx, conn, ct)
}

func (s *contractService) ListByEDC(ctx context.Context, edcID string) ([]model.Contract, error) {
	conn, err := resolveConnector(ctx, s.connectors, edcID)
	if err != nil {
		return nil, err
	}
	return s.edc.ListContracts(ctx, conn)
}

func (s *contractService) Get(ctx context.Context, edcID, contractID string) (*model.Contract, error) {
	conn, err := resolveConnector(ctx, s.connectors, edcID)
	if err != nil {
		return nil, err
	}
	return s.edc.GetContract(ctx, conn, contractID)
}

func (s *contractService) Update(ctx context.Context, edcID string, ct *model.Contract) error {
	conn, err := resolveConnector(ctx, s.connectors, edcID)
	if err != nil {
		return err
	}
	return s.edc.UpdateContract(ctx, conn, ct)
}

func (s *contractService) Delete(ctx context.Context, edcID, contractID string) error {
	conn, err := resolveConnector(ctx, s.connectors, edcID)
	if err != nil {
		return err
	}
	return s.edc.DeleteContract(ctx, conn, contractID)
}
