package ports

import (
	"context"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
)

// RegisterInput carries the self-registration form. ProfilePicture is
// the stored filename supplied by the upload collaborator, empty when
// no picture was uploaded. Any role submitted by the caller is ignored:
// registration always produces a CLIENT.
type RegisterInput struct {
	Name           string
	Surname        string
	Username       string
	Email          string
	Password       string
	Phone          string
	ProfilePicture string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login matches userLogin against username or email and verifies the
	// password. On success it returns a signed session token and the user.
	Login(ctx context.Context, userLogin, password string) (string, *domain.User, error)
}
