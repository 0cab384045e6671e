package handler

import "github.com/adoptionsystem/adoption-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// registerRequest is bound from the multipart registration form. The
// profile picture travels as a separate file part, not a form value.
type registerRequest struct {
	Name     string `form:"name"     json:"name"     validate:"required"`
	Surname  string `form:"surname"  json:"surname"  validate:"required"`
	Username string `form:"username" json:"username" validate:"required"`
	Email    string `form:"email"    json:"email"    validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=6"`
	Phone    string `form:"phone"    json:"phone"`
	// Role is accepted but ignored; registration always yields CLIENT.
	Role string `form:"role" json:"role"`
}

type registerResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type loginRequest struct {
	UserLogin string `json:"userLogin" validate:"required"`
	Password  string `json:"password"  validate:"required"`
}

type loginResponse struct {
	Message    string       `json:"message"`
	Token      string       `json:"token"`
	LoggedUser *domain.User `json:"loggedUser"`
}
