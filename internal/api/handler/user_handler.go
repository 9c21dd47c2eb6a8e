package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamatlas/people-directory/internal/core/domain"
	"github.com/teamatlas/people-directory/internal/core/ports"
)

type UserHandler struct {
	directory ports.DirectoryService
}

func NewUserHandler(directory ports.DirectoryService) *UserHandler {
	return &UserHandler{directory: directory}
}

// List returns directory records, optionally narrowed by filter criteria.
// All supplied criteria must match (logical AND); collection order is kept.
//
// @Summary      List or search users
// @Tags         users
// @Produce      json
// @Param        name        query  string  false  "Substring match on id, names, or native names"
// @Param        email       query  string  false  "Substring match"
// @Param        phone       query  string  false  "Substring match"
// @Param        telegram    query  string  false  "Substring match"
// @Param        building    query  string  false  "Exact match"
// @Param        room        query  string  false  "Exact match"
// @Param        department  query  string  false  "Exact match"
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	q := domain.Query{
		Name:       c.QueryParam("name"),
		Email:      c.QueryParam("email"),
		Phone:      c.QueryParam("phone"),
		Telegram:   c.QueryParam("telegram"),
		Building:   c.QueryParam("building"),
		Room:       c.QueryParam("room"),
		Department: c.QueryParam("department"),
	}

	users, err := h.directory.List(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Server error"})
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single record by id.
//
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  messageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.directory.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Server error"})
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateRole sets a user's role. This is the only path that enforces the
// role enum.
//
// @Summary      Update user role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}

	user, err := h.directory.UpdateRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid role"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, userEnvelope{Message: "Role updated", User: user})
}

// Update applies a partial update to a record. Absent fields are untouched;
// the manager and date_birth shapes merge by their own rules. Unknown keys
// are rejected here at the boundary.
//
// @Summary      Update user info
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "User id"
// @Param        body  body      domain.UserPatch  true  "Fields to change"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	patch, err := decodePatch(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid update payload"})
	}

	user, err := h.directory.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, userEnvelope{Message: "User updated", User: user})
}

// decodePatch decodes the partial-update body with unknown keys disallowed.
// Echo's default binder would silently drop them; the patch contract rejects
// them instead. A JSON null decodes to the same nil pointer as an absent key
// and is therefore a no-op; clearing a field takes an explicit empty value
// (empty strings for the manager names, an empty list for visa).
func decodePatch(c echo.Context) (domain.UserPatch, error) {
	var p domain.UserPatch
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return domain.UserPatch{}, err
	}
	return p, nil
}
