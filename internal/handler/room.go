package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agenson/cinema-booking/internal/engine"
	"github.com/agenson/cinema-booking/internal/middleware"
	"github.com/agenson/cinema-booking/internal/model"
	"github.com/agenson/cinema-booking/internal/pricing"
)

// RoomHandler exposes screening rooms, their income report and their
// tickets.  Reads are public; everything else is staff business enforced
// by the engine.
type RoomHandler struct {
	Rooms   *engine.RoomService
	Tickets *engine.TicketService
}

func NewRoomHandler(rooms *engine.RoomService, tickets *engine.TicketService) *RoomHandler {
	return &RoomHandler{Rooms: rooms, Tickets: tickets}
}

type createRoomReq struct {
	Number int `json:"number"`
	Rows   int `json:"rows"`
	Cols   int `json:"cols"`
}

type roomNumberReq struct {
	Number int `json:"number"`
}

type roomMovieReq struct {
	MovieUUID *string `json:"movie_uuid"`
}

type roomView struct {
	UUID      string  `json:"uuid"`
	Number    int     `json:"number"`
	Rows      int     `json:"rows"`
	Cols      int     `json:"cols"`
	Capacity  int     `json:"capacity"`
	MovieUUID *string `json:"movie_uuid"`
}

type incomeView struct {
	Income    int `json:"income"`
	Potential int `json:"potential"`
}

func viewRoom(r *model.Room) roomView {
	return roomView{
		UUID:      r.UUID,
		Number:    r.Number,
		Rows:      r.Rows,
		Cols:      r.Cols,
		Capacity:  pricing.Capacity(r.Rows, r.Cols),
		MovieUUID: r.MovieUUID,
	}
}

// List returns every room.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.Rooms.FindAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	out := make([]roomView, 0, len(rooms))
	for i := range rooms {
		out = append(out, viewRoom(&rooms[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one room by its public identifier.
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.Rooms.Find(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return fail(c, err)
	}
	if room == nil {
		return notFound(c, "room not found")
	}
	return c.JSON(http.StatusOK, viewRoom(room))
}

// Create registers a new room.
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	room, err := h.Rooms.Create(c.Request().Context(), middleware.Identity(c), req.Number, req.Rows, req.Cols)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, viewRoom(room))
}

// Renumber changes a room's number.
func (h *RoomHandler) Renumber(c echo.Context) error {
	var req roomNumberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	room, err := h.Rooms.UpdateNumber(c.Request().Context(), middleware.Identity(c), c.Param("uuid"), req.Number)
	if err != nil {
		return fail(c, err)
	}
	if room == nil {
		return notFound(c, "room not found")
	}
	return c.JSON(http.StatusOK, viewRoom(room))
}

// ReassignMovie points a room at a new movie (or clears it when the body
// carries a null movie_uuid) and invalidates the room's reservations.
func (h *RoomHandler) ReassignMovie(c echo.Context) error {
	var req roomMovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	room, err := h.Rooms.ReassignMovie(c.Request().Context(), middleware.Identity(c), c.Param("uuid"), req.MovieUUID)
	if err != nil {
		return fail(c, err)
	}
	if room == nil {
		return notFound(c, "room not found")
	}
	return c.JSON(http.StatusOK, viewRoom(room))
}

// Income reports a room's ticketed income and its fully-booked potential.
func (h *RoomHandler) Income(c echo.Context) error {
	income, potential, err := h.Rooms.Income(c.Request().Context(), middleware.Identity(c), c.Param("uuid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, incomeView{Income: income, Potential: potential})
}

// ListTickets returns a room's tickets.
func (h *RoomHandler) ListTickets(c echo.Context) error {
	tickets, err := h.Tickets.FindByRoom(c.Request().Context(), middleware.Identity(c), c.Param("uuid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, viewTickets(tickets))
}

// Delete removes a room together with its tickets.
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.Rooms.Remove(c.Request().Context(), middleware.Identity(c), c.Param("uuid")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
