// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., mongodb) inside this directory.
package repository

import (
	"context"
	"errors"

	"edcstudio/internal/model"
)

// ErrNotFound is returned when a requested document does not exist.
// Implementations translate their driver-specific sentinel to this error.
var ErrNotFound = errors.New("document not found")

// ConnectorRepository defines data access for connector documents.
// No business logic here — strictly persistence operations.
type ConnectorRepository interface {
	// Create inserts a new connector document and returns its generated ID.
	Create(ctx context.Context, c *model.Connector) (string, error)

	// FindByID returns a connector by its ID.
	FindByID(ctx context.Context, id string) (*model.Connector, error)

	// FindAll returns every registered connector.
	FindAll(ctx context.Context) ([]model.Connector, error)

	// Update applies a partial update ($set semantics) to a connector.
	Update(ctx context.Context, id string, fields map[string]any) error

	// UpdateState persists a lifecycle state change.
	UpdateState(ctx context.Context, id, state string) error

	// Delete removes a connector by ID.
	Delete(ctx context.Context, id string) error
}

// TransferRepository defines data access for recorded transfers.
type TransferRepository interface {
	// Create inserts a transfer record; consumer and provider hold connector IDs.
	Create(ctx context.Context, t *model.Transfer) (string, error)

	// FindAll returns all transfers with their connector references resolved.
	FindAll(ctx context.Context) ([]model.TransferRecord, error)
}

// UserRepository defines data access for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (string, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// PondFileRepository defines data access for data pond file metadata.
type PondFileRepository interface {
	// Upsert stores file metadata, replacing any previous entry for the same
	// username/filename pair.
	Upsert(ctx context.Context, f *model.PondFile) error

	// FindByUser returns all files owned by a user.
	FindByUser(ctx context.Context, username string) ([]model.PondFile, error)

	// Find returns one file by owner and name.
	Find(ctx context.Context, username, filename string) (*model.PondFile, error)

	// Delete removes a file entry by owner and name.
	Delete(ctx context.Context, username, filename string) error
}
