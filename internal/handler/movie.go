package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agenson/cinema-booking/internal/engine"
	"github.com/agenson/cinema-booking/internal/middleware"
	"github.com/agenson/cinema-booking/internal/model"
)

// MovieHandler exposes the movie catalog.  Reads are public; mutations
// are guarded by the staff policy inside the engine.
type MovieHandler struct {
	Movies *engine.MovieService
}

func NewMovieHandler(movies *engine.MovieService) *MovieHandler {
	return &MovieHandler{Movies: movies}
}

type movieReq struct {
	Title string `json:"title"`
}

type movieView struct {
	UUID  string `json:"uuid"`
	Title string `json:"title"`
}

func viewMovie(m *model.Movie) movieView {
	return movieView{UUID: m.UUID, Title: m.Title}
}

// List returns the whole catalog.
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.Movies.FindAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	out := make([]movieView, 0, len(movies))
	for i := range movies {
		out = append(out, viewMovie(&movies[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one movie by its public identifier.
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.Movies.Find(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return fail(c, err)
	}
	if movie == nil {
		return notFound(c, "movie not found")
	}
	return c.JSON(http.StatusOK, viewMovie(movie))
}

// Create adds a movie to the catalog.
func (h *MovieHandler) Create(c echo.Context) error {
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	movie, err := h.Movies.Create(c.Request().Context(), middleware.Identity(c), req.Title)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, viewMovie(movie))
}

// Rename changes a movie's title.
func (h *MovieHandler) Rename(c echo.Context) error {
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	movie, err := h.Movies.UpdateTitle(c.Request().Context(), middleware.Identity(c), c.Param("uuid"), req.Title)
	if err != nil {
		return fail(c, err)
	}
	if movie == nil {
		return notFound(c, "movie not found")
	}
	return c.JSON(http.StatusOK, viewMovie(movie))
}

// Delete removes a movie and invalidates the reservations of every room
// showing it.
func (h *MovieHandler) Delete(c echo.Context) error {
	if err := h.Movies.Remove(c.Request().Context(), middleware.Identity(c), c.Param("uuid")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
