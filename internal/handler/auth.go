package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agenson/cinema-booking/internal/config"
	"github.com/agenson/cinema-booking/internal/engine"
	"github.com/agenson/cinema-booking/internal/middleware"
	"github.com/agenson/cinema-booking/internal/model"
	"github.com/agenson/cinema-booking/internal/security"
	"github.com/agenson/cinema-booking/internal/utils"
)

// AuthHandler bundles dependencies for the session endpoints.  Sessions
// are stateless JWTs; logout puts the token on a Redis denylist until its
// natural expiry.
type AuthHandler struct {
	Cfg   config.Config
	Users *engine.UserService
	Deny  *security.Denylist
}

func NewAuthHandler(cfg config.Config, users *engine.UserService, deny *security.Denylist) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Deny: deny}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type userPart struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type authResp struct {
	User   userPart  `json:"user"`
	Access tokenPart `json:"access"`
}

func viewUser(u *model.User) userPart {
	return userPart{UUID: u.UUID, Username: u.Username, Role: string(u.Role)}
}

// Register creates a customer account and logs it in immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	user, err := h.Users.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.UUID, user.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, authResp{
		User:   viewUser(user),
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Login verifies credentials and returns a fresh access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	user, err := h.Users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.UUID, user.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, authResp{
		User:   viewUser(user),
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout revokes the presented access token for the remainder of its
// lifetime.  Without a valid token there is nothing to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	raw := middleware.Token(c)
	if raw == "" {
		return fail(c, security.ErrIdentification)
	}
	ttl := time.Until(middleware.TokenExpiry(c))
	if err := h.Deny.Revoke(c.Request().Context(), raw, ttl); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	ident := middleware.Identity(c)
	if ident == nil {
		return fail(c, security.ErrIdentification)
	}
	user, err := h.Users.Find(c.Request().Context(), ident.UUID)
	if err != nil {
		return fail(c, err)
	}
	if user == nil {
		return fail(c, engine.ErrUserNotFound)
	}
	return c.JSON(http.StatusOK, viewUser(user))
}
