package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agenson/cinema-booking/internal/engine"
	"github.com/agenson/cinema-booking/internal/seat"
	"github.com/agenson/cinema-booking/internal/security"
)

// Sentinel-to-status mapping shared by every handler.  Anything not
// listed is treated as an internal error and its message is not leaked.
var (
	badRequestErrs = []error{
		seat.ErrFormat,
		seat.ErrRow,
		seat.ErrCol,
		engine.ErrSeatRequired,
		engine.ErrSeatOutside,
		engine.ErrRoomNumber,
		engine.ErrRoomRows,
		engine.ErrRoomCols,
		engine.ErrTitleRequired,
		engine.ErrTitleTooLong,
		engine.ErrUsernameRequired,
		engine.ErrUsernameTooLong,
		engine.ErrPasswordRequired,
		engine.ErrPasswordTooLong,
	}
	notFoundErrs = []error{
		engine.ErrRoomNotFound,
		engine.ErrOrderNotFound,
		engine.ErrMovieNotFound,
		engine.ErrUserNotFound,
	}
	conflictErrs = []error{
		engine.ErrSeatReserved,
		engine.ErrRoomNumberUsed,
		engine.ErrTitleExists,
		engine.ErrUsernameExists,
	}
	unauthorizedErrs = []error{
		security.ErrIdentification,
		security.ErrConnection,
	}
)

// fail translates a domain error into a JSON error response.
func fail(c echo.Context, err error) error {
	switch {
	case matches(err, unauthorizedErrs):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	case errors.Is(err, security.ErrAuthorization):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case matches(err, notFoundErrs):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case matches(err, conflictErrs):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case matches(err, badRequestErrs):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	c.Logger().Errorf("internal error: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

func matches(err error, list []error) bool {
	for _, e := range list {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// notFound reports a missing resource for lookups that signal absence
// with a nil result instead of an error.
func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": msg})
}
