package handler

import "github.com/adoptionsystem/adoption-api/internal/core/domain"

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Surname  string `json:"surname"  validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role"     validate:"omitempty,oneof=ADMIN CLIENT"`
}

// updateUserRequest carries the whitelist of mutable profile fields.
// Absent fields are left untouched.
type updateUserRequest struct {
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
}

type listUsersResponse struct {
	Users []*domain.User `json:"users"`
	Limit int64          `json:"limit"`
	Skip  int64          `json:"skip"`
}

type messageResponse struct {
	Message string `json:"message"`
}
