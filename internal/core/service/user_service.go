package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
	"github.com/adoptionsystem/adoption-api/internal/core/ports"
	"github.com/adoptionsystem/adoption-api/internal/pkg/password"
)

const (
	defaultUserLimit = 5
	maxUserLimit     = 100
)

// UserService implements profile CRUD and password changes.
type UserService struct {
	repo   ports.UserRepository
	hasher *password.Hasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *password.Hasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// List returns a page of users. An empty page is reported as
// domain.ErrUserNotFound so callers can distinguish it from a store fault.
func (s *UserService) List(ctx context.Context, input ports.ListUsersInput) ([]*domain.User, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultUserLimit
	}
	if limit > maxUserLimit {
		limit = maxUserLimit
	}
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}

	users, err := s.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a user with an explicit role. Unlike registration this
// path may create ADMIN accounts.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := input.Role
	if role == "" {
		role = domain.RoleClient
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Surname:      input.Surname,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")
	return created, nil
}

// Update applies a whitelisted partial update. An effectively empty
// patch is rejected.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	patch := ports.UserPatch{
		Name:     input.Name,
		Surname:  input.Surname,
		Username: input.Username,
		Email:    input.Email,
		Phone:    input.Phone,
	}
	if patch.Empty() {
		return nil, domain.ErrEmptyUpdate
	}
	return s.repo.Update(ctx, id, patch)
}

// UpdatePassword verifies the current password before storing the hash
// of the new one.
func (s *UserService) UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(user.PasswordHash, currentPassword) {
		return domain.ErrWrongPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("password updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
