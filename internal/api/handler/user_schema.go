package handler

import "github.com/teamatlas/people-directory/internal/core/domain"

// messageResponse is the envelope for status messages and most errors.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse is the envelope used by sign-in failures.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type signUpRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required"`
	Password  string `json:"password"  validate:"required"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// --- Response types ---

type signUpResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
}

// signInUser is the public profile subset returned on authentication. The id
// key here is "id", not "_id": clients bind to this shape, keep it stable.
type signInUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"user_avatar"`
	Role      string `json:"role"`
}

type signInResponse struct {
	Message string     `json:"message"`
	User    signInUser `json:"user"`
	Token   string     `json:"token,omitempty"`
}

// userEnvelope wraps a full record in update responses.
type userEnvelope struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
