package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agenson/cinema-booking/internal/engine"
	"github.com/agenson/cinema-booking/internal/middleware"
	"github.com/agenson/cinema-booking/internal/model"
)

// UserHandler exposes account administration.  Listing and role changes
// are staff operations; profile changes and deletion are restricted to
// the account owner by the engine.
type UserHandler struct {
	Users *engine.UserService
}

func NewUserHandler(users *engine.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

type usernameReq struct {
	Username string `json:"username"`
}

type passwordReq struct {
	Password string `json:"password"`
}

type roleReq struct {
	Role string `json:"role"`
}

// List returns every account.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.Users.FindAll(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return fail(c, err)
	}
	out := make([]userPart, 0, len(users))
	for i := range users {
		out = append(out, viewUser(&users[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Rename changes an account's username.
func (h *UserHandler) Rename(c echo.Context) error {
	var req usernameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	user, err := h.Users.UpdateUsername(c.Request().Context(), middleware.Identity(c), c.Param("uuid"), req.Username)
	if err != nil {
		return fail(c, err)
	}
	if user == nil {
		return notFound(c, "user was not found")
	}
	return c.JSON(http.StatusOK, viewUser(user))
}

// ChangePassword stores a new password for an account.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req passwordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	user, err := h.Users.UpdatePassword(c.Request().Context(), middleware.Identity(c), c.Param("uuid"), req.Password)
	if err != nil {
		return fail(c, err)
	}
	if user == nil {
		return notFound(c, "user was not found")
	}
	return c.JSON(http.StatusOK, viewUser(user))
}

// ChangeRole promotes or demotes an account.
func (h *UserHandler) ChangeRole(c echo.Context) error {
	var req roleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	role := model.Role(strings.ToUpper(strings.TrimSpace(req.Role)))
	if role != model.RoleCustomer && role != model.RoleStaff {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
	}
	user, err := h.Users.UpdateRole(c.Request().Context(), middleware.Identity(c), c.Param("uuid"), role)
	if err != nil {
		return fail(c, err)
	}
	if user == nil {
		return notFound(c, "user was not found")
	}
	return c.JSON(http.StatusOK, viewUser(user))
}

// Delete removes an account together with its orders.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.Users.Remove(c.Request().Context(), middleware.Identity(c), c.Param("uuid")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
