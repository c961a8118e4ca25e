package service

import (
	"context"
	"errors"
	"fmt"

	"edcstudio/internal/launcher"
	"edcstudio/internal/model"
	"edcstudio/internal/repository"
)

// ConnectorService defines the use cases for connector records and their
// docker lifecycle.
type ConnectorService interface {
	Create(ctx context.Context, conn *model.Connector) (string, error)
	List(ctx context.Context) ([]model.Connector, error)
	Get(ctx context.Context, id string) (*model.Connector, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error

	// Start provisions the runtime of a managed connector and boots it.
	Start(ctx context.Context, id string) error
	// Stop tears the runtime down; launcher.ErrRuntimeMissing when the
	// connector has no runtime directory.
	Stop(ctx context.Context, id string) error
}

type connectorService struct {
	repo   repository.ConnectorRepository
	runner launcher.Runner
}

// NewConnectorService constructs a ConnectorService.
func NewConnectorService(repo repository.ConnectorRepository, runner launcher.Runner) ConnectorService {
	return &connectorService{repo: repo, runner: runner}
}

func (s *connectorService) Create(ctx context.Context, conn *model.Connector) (string, error) {
	if conn.State == "" {
		conn.State = model.ConnectorStateStopped
	}
	return s.repo.Create(ctx, conn)
}

func (s *connectorService) List(ctx context.Context) ([]model.Connector, error) {
	return s.repo.FindAll(ctx)
}

func (s *connectorService) Get(ctx context.Context, id string) (*model.Connector, error) {
	conn, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrConnectorNotFound
		}
		return nil, err
	}
	return conn, nil
}

func (s *connectorService) Update(ctx context.Context, id string, fields map[string]any) error {
	err := s.repo.Update(ctx, id, fields)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrConnectorNotFound
	}
	return err
}

func (s *connectorService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrConnectorNotFound
	}
	return err
}

func (s *connectorService) Start(ctx context.Context, id string) error {
	conn, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.runner.Start(ctx, conn); err != nil {
		return fmt.Errorf("start connector: %w", err)
	}
	return s.repo.UpdateState(ctx, id, model.ConnectorStateRunning)
}

func (s *connectorService) Stop(ctx context.Context, id string) error {
	if err := s.runner.Stop(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateState(ctx, id, model.ConnectorStateStopped)
}
