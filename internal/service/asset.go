package service

import (
	"context"
	"errors"

	"edcstudio/internal/edc"
	"edcstudio/internal/model"
	"edcstudio/internal/repository"
)

// AssetService proxies asset operations to the owning connector's management
// API. Assets are not persisted locally; the connector is the source of
// truth.
type AssetService interface {
	Create(ctx context.Context, a *model.Asset) (map[string]any, error)
	ListByEDC(ctx context.Context, edcID string) ([]model.Asset, error)
	Get(ctx context.Context, edcID, assetID string) (*model.Asset, error)
	Update(ctx context.Context, edcID string, a *model.Asset) error
	Delete(ctx context.Context, edcID, assetID string) error
}

type assetService struct {
	connectors repository.ConnectorRepository
	edc        edc.API
}

// NewAssetService constructs an AssetService.
func NewAssetService(connectors repository.ConnectorRepository, api edc.API) AssetService {
	return &assetService{connectors: connectors, edc: api}
}

// resolveConnector loads a connector document, mapping a missing one to
// ErrConnectorNotFound.
func resolveConnector(ctx context.Context, repo repository.ConnectorRepository, id string) (*model.Connector, error) {
	conn, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrConnectorNotFound
		}
		return nil, err
	}
	return conn, nil
}

func (s *assetService) Create(ctx context.Context, a *model.Asset) (map[string]any, error) {
	conn, err := resolveConnector(ctx, s.connectors, a.EDC)
	if err != nil {
		return nil, err
	}
	return s.edc.CreateAsset(ctx, conn, a)
}

func (s *assetService) ListByEDC(ctx context.Context, edcID string) ([]model.Asset, error) {
	conn, err := resolveConnector(ctx, s.connectors, edcID)
	if err != nil {
		return nil, err
	}
	return s.edc.ListAssets(ctx, conn)
}

func (s *assetService) Get(ctx context.Context, edcID, assetID string) (*model.Asset, error) {
	conn, err := resolveConnector(ctx, s.connectors, edcID)
	if err != nil {
		return nil, err
	}
	return s.edc.GetAsset(ctx, conn, assetID)
}

func (s *assetService) Update(ctx context.Context, edcID string, a *model.Asset) error {
	conn, err := resolveConnector(ctx, s.connectors, edcID)
	if err != nil {
		return err
	}
	return s.edc.UpdateAsset(ctx, conn, a)
}

func (s *assetService) Delete(ctx context.Context, edcID, assetID string) error {
	conn, err := resolveConnector(ctx, s.connectors, edcID)
	if err != nil {
		return err
	}
	return s.edc.DeleteAsset(ctx, conn, assetID)
}
