package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"edcstudio/internal/model"
	"edcstudio/internal/repository"
	"edcstudio/internal/storage"
)

// MaxPondFileSize is the upload limit for data pond files.
const MaxPondFileSize = 10 << 20 // 10 MiB

// DataPondService manages the per-user file area backed by object storage.
// File content is streamed to and from the store; MongoDB keeps the
// metadata rows.
type DataPondService interface {
	Upload(ctx context.Context, username string, r io.Reader, filename, contentType string, size int64) (*model.PondFile, error)
	// List returns the files of username (the requester's own files when
	// username is empty). Other users' listings require an admin requester.
	List(ctx context.Context, requester *model.User, username string) ([]model.PondFile, error)
	Download(ctx context.Context, username, filename string) (io.ReadCloser, *model.PondFile, error)
	Delete(ctx context.Context, username, filename string) error
}

type dataPondService struct {
	store storage.Storage
	files repository.PondFileRepository
	users repository.UserRepository
}

// NewDataPondService constructs a DataPondService.
func NewDataPondService(store storage.Storage, files repository.PondFileRepository, users repository.UserRepository) DataPondService {
	return &dataPondService{store: store, files: files, users: users}
}

func pondKey(username, filename string) string {
	return path.Join("datapond", username, filename)
}

func (s *dataPondService) Upload(ctx context.Context, username string, r io.Reader, filename, contentType string, size int64) (*model.PondFile, error) {
	if r == nil {
		return nil, errors.New("reader is nil")
	}
	if size > MaxPondFileSize {
		return nil, ErrFileTooLarge
	}

	key := pondKey(username, filename)
	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	f := &model.PondFile{
		Username:    username,
		Filename:    filename,
		StorageKey:  objInfo.Key,
		Size:        objInfo.Size,
		ContentType: contentType,
		Modified:    time.Now().UTC(),
	}
	if err := s.files.Upsert(ctx, f); err != nil {
		// Rollback: drop the object so storage and metadata stay in sync.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("metadata save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("metadata save failed: %w", err)
	}
	return f, nil
}

func (s *dataPondService) List(ctx context.Context, requester *model.User, username string) ([]model.PondFile, error) {
	target := requester.Username
	if username != "" && username != requester.Username {
		if !requester.IsAdmin {
			return nil, ErrForbidden
		}
		if _, err := s.users.FindByUsername(ctx, username); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		target = username
	}
	return s.files.FindByUser(ctx, target)
}

func (s *dataPondService) Download(ctx context.Context, username, filename string) (io.ReadCloser, *model.PondFile, error) {
	f, err := s.files.Find(ctx, username, filename)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, err
	}

	rc, _, err := s.store.Get(ctx, f.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("read storage: %w", err)
	}
	return rc, f, nil
}

// Delete removes the object first, then the metadata row; a missing row
// after a successful object delete is not an error.
func (s *dataPondService) Delete(ctx context.Context, username, filename string) error {
	f, err := s.files.Find(ctx, username, filename)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFileNotFound
		}
		return err
	}

	if err := s.store.Delete(ctx, f.StorageKey); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	if err := s.files.Delete(ctx, username, filename); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}
