package ports

import (
	"context"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
)

// ListUsersInput carries pagination parameters for the user listing.
type ListUsersInput struct {
	Limit int64
	Skip  int64
}

// CreateUserInput carries all data needed to create a user directly
// (admin-style creation, as opposed to self registration).
type CreateUserInput struct {
	Name     string
	Surname  string
	Username string
	Email    string
	Password string
	Phone    string
	Role     string
}

// UpdateUserInput is the whitelist of mutable profile fields. Role and
// password are deliberately absent: role is fixed at creation time and
// passwords change only through UpdatePassword.
type UpdateUserInput struct {
	Name     *string
	Surname  *string
	Username *string
	Email    *string
	Phone    *string
}

// UserService defines use-case operations for user profiles.
type UserService interface {
	List(ctx context.Context, input ListUsersInput) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) error
	Delete(ctx context.Context, id string) error
}
