package service

import (
	"context"
	"errors"

	"edcstudio/internal/auth"
	"edcstudio/internal/model"
	"edcstudio/internal/repository"
)

// UserService defines account management and authentication use cases.
type UserService interface {
	// Register creates a self-service account; new accounts are never admins.
	Register(ctx context.Context, u *model.User, password string) (*model.User, error)
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, error)

	Create(ctx context.Context, u *model.User, password string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error

	// ByUsername resolves the account behind a token subject.
	ByUsername(ctx context.Context, username string) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	tokens *auth.Manager
}

// NewUserService constructs a UserService.
func NewUserService(repo repository.UserRepository, tokens *auth.Manager) UserService {
	return &userService{repo: repo, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, u *model.User, password string) (*model.User, error) {
	u.IsAdmin = false
	return s.create(ctx, u, password)
}

func (s *userService) Create(ctx context.Context, u *model.User, password string) (*model.User, error) {
	return s.create(ctx, u, password)
}

func (s *userService) create(ctx context.Context, u *model.User, password string) (*model.User, error) {
	if _, err := s.repo.FindByEmail(ctx, u.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u.HashedPassword = hash

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return u, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !auth.VerifyPassword(u.HashedPassword, password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.IssueToken(u.Username)
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Update applies a partial update. A plaintext "password" field is replaced
// by its bcrypt hash before it reaches the repository.
func (s *userService) Update(ctx context.Context, id string, fields map[string]any) error {
	if pw, ok := fields["password"].(string); ok {
		hash, err := auth.HashPassword(pw)
		if err != nil {
			return err
		}
		delete(fields, "password")
		fields["hashed_password"] = hash
	}

	err := s.repo.Update(ctx, id, fields)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *userService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *userService) ByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
