package ports

import (
	"context"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
)

// UserPatch carries the mutable user fields for a partial update.
// Nil pointers are left untouched.
type UserPatch struct {
	Name     *string
	Surname  *string
	Username *string
	Email    *string
	Phone    *string
}

// Empty reports whether the patch would change nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Surname == nil && p.Username == nil &&
		p.Email == nil && p.Phone == nil
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// List returns a page of users. limit and skip are assumed sane
	// (the service applies defaults).
	List(ctx context.Context, limit, skip int64) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByLogin matches login against either username or email.
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
