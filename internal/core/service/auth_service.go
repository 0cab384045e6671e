package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
	"github.com/adoptionsystem/adoption-api/internal/core/ports"
	"github.com/adoptionsystem/adoption-api/internal/pkg/password"
	"github.com/adoptionsystem/adoption-api/internal/pkg/token"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher *password.Hasher
	tokens *token.Manager
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *password.Hasher, tokens *token.Manager, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a CLIENT account from the public registration form.
// The role is always CLIENT; callers cannot self-elevate.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:           input.Name,
		Surname:        input.Surname,
		Username:       input.Username,
		Email:          input.Email,
		PasswordHash:   hash,
		Phone:          input.Phone,
		Role:           domain.RoleClient,
		ProfilePicture: input.ProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login authenticates by username or email. Unknown identifiers and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, userLogin, pass string) (string, *domain.User, error) {
	if userLogin == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByLogin(ctx, userLogin)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, pass) {
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return tkn, user, nil
}
