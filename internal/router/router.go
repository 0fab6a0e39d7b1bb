// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/agenson/cinema-booking/internal/handler"
)

// RegisterRoutes registers routes that carry no domain logic.  Currently
// that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session endpoints.  Register and login are
// open; logout and the profile endpoint need the identity resolved by the
// authentication middleware installed on the Echo instance.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)

	e.GET("/v1/me", a.Me)
}

// RegisterBrowse registers the public catalog reads.  These are the only
// routes behind the response cache and the rate limiter: they serve
// guests, carry no identity-dependent content and dominate traffic.
func RegisterBrowse(e *echo.Echo, m *handler.MovieHandler, r *handler.RoomHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	g.GET("/movies", m.List)
	g.GET("/movies/:uuid", m.Get)
	g.GET("/rooms", r.List)
	g.GET("/rooms/:uuid", r.Get)
}

// RegisterAPI registers the guarded surface.  Access control is not a
// routing concern here: every handler passes the resolved identity to the
// engine, whose policies decide between the identification and
// authorization failures.
func RegisterAPI(e *echo.Echo, m *handler.MovieHandler, r *handler.RoomHandler, o *handler.OrderHandler, t *handler.TicketHandler, u *handler.UserHandler) {
	g := e.Group("/v1")

	// ---- Movies ----
	g.POST("/movies", m.Create)
	g.PUT("/movies/:uuid/title", m.Rename)
	g.DELETE("/movies/:uuid", m.Delete)

	// ---- Rooms ----
	g.POST("/rooms", r.Create)
	g.PUT("/rooms/:uuid/number", r.Renumber)
	g.PUT("/rooms/:uuid/movie", r.ReassignMovie)
	g.GET("/rooms/:uuid/income", r.Income)
	g.GET("/rooms/:uuid/tickets", r.ListTickets)
	g.DELETE("/rooms/:uuid", r.Delete)

	// ---- Orders ----
	g.GET("/orders", o.List)
	g.GET("/orders/:uuid", o.Get)
	g.GET("/orders/:uuid/tickets", o.ListTickets)
	g.POST("/orders", o.Create)
	g.DELETE("/orders/:uuid", o.Delete)

	// ---- Tickets ----
	g.POST("/tickets", t.Create)
	g.GET("/tickets", t.List)
	g.GET("/tickets/:uuid", t.Get)
	g.DELETE("/tickets/:uuid", t.Delete)

	// ---- Users ----
	g.GET("/users", u.List)
	g.GET("/users/:uuid/orders", o.ListByUser)
	g.PUT("/users/:uuid/username", u.Rename)
	g.PUT("/users/:uuid/password", u.ChangePassword)
	g.PUT("/users/:uuid/role", u.ChangeRole)
	g.DELETE("/users/:uuid", u.Delete)
}
