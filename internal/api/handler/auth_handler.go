package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamatlas/people-directory/internal/core/domain"
	"github.com/teamatlas/people-directory/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp creates a new directory record.
//
// @Summary      Register a new employee
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Sign-up details"
// @Success      200   {object}  signUpResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "All fields are required"})
	}

	user, err := h.authService.SignUp(c.Request().Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "All fields are required"})
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, signUpResponse{Message: "User created", User: user.Email})
}

// SignIn authenticates an employee and returns their public profile plus a
// signed token. The failure response is identical for an unknown email and a
// wrong password.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  signInResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid payload"})
	}

	token, user, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid credentials"})
		case errors.Is(err, domain.ErrTooManyAttempts):
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "Too many sign-in attempts"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Server error"})
	}

	return c.JSON(http.StatusOK, signInResponse{
		Message: "Authenticated",
		User: signInUser{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Avatar:    user.Avatar,
			Role:      user.Role,
		},
		Token: token,
	})
}
