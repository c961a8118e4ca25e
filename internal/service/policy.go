package service

import (
	"context"

	"edcstudio/internal/edc"
	"edcstudio/internal/model"
	"edcstudio/internal/repository"
)

// PolicyService proxies policy definition operations to the owning
// connector's management API.
type PolicyService interface {
	Create(ctx context.Context, p *model.Policy) (map[string]any, error)
	ListByEDC(ctx context.Context, edcID string) ([]model.Policy, error)
	Get(ctx context.Context, edcID, policyID string) (*model.Policy, error)
	Delete(ctx context.Context, edcID, policyID string) error
}

type policyService struct {
	connectors repository.ConnectorRepository
	edc        edc.API
}

// NewPolicyService constructs a PolicyService.
func NewPolicyService(connectors repository.ConnectorRepository, api edc.API) PolicyService {
	return &policyService{connectors: connectors, edc: api}
}

func (s *policyService) Create(ctx context.Context, p *model.Policy) (map[string]any, error) {
	conn, err := resolveConnector(ctx, s.connectors, p.EDC)
	if err != nil {
		return nil, err
	}
	return s.edc.CreatePolicy(ctx, conn, p)
}

func (s *policyService) ListByEDC(ctx context.Context, edcID string) ([]model.Policy, error) {
	conn, err := resolveConnector(ctx, s.connectors, edcID)
	if err != nil {
		return nil, err
	}
	return s.edc.ListPolicies(ctx, conn)
}

func (s *policyService) Get(ctx context.Context, edcID, policyID string) (*model.Policy, error) {
	conn, err := resolveConnector(ctx, s.connectors, edcID)
	if err != nil {
		return nil, err
	}
	return s.edc.GetPolicy(ctx, conn, policyID)
}

func (s *policyService) Delete(ctx context.Context, edcID, policyID string) error {
	conn, err := resolveConnector(ctx, s.connectors, edcID)
	if err != nil {
		return err
	}
	return s.edc.DeletePolicy(ctx, conn, policyID)
}
