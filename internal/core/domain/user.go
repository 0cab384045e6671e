package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrWrongPassword = errors.New("current password is incorrect")

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleClient
}

// User models an account in the adoption system. PasswordHash is never
// serialized to JSON.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Phone          string    `json:"phone,omitempty"`
	Role           string    `json:"role"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
