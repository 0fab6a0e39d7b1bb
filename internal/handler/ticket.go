package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agenson/cinema-booking/internal/engine"
	"github.com/agenson/cinema-booking/internal/middleware"
	"github.com/agenson/cinema-booking/internal/model"
	"github.com/agenson/cinema-booking/internal/pricing"
	"github.com/agenson/cinema-booking/internal/queue"
	"github.com/agenson/cinema-booking/internal/seat"
)

// TicketHandler exposes seat reservations.  A successful reservation also
// publishes a ticket.reserved event; broker failures are logged by the
// publisher and never fail the request.
type TicketHandler struct {
	Tickets *engine.TicketService
	Rooms   *engine.RoomService
	Movies  *engine.MovieService
}

func NewTicketHandler(tickets *engine.TicketService, rooms *engine.RoomService, movies *engine.MovieService) *TicketHandler {
	return &TicketHandler{Tickets: tickets, Rooms: rooms, Movies: movies}
}

type createTicketReq struct {
	RoomUUID  string `json:"room_uuid"`
	OrderUUID string `json:"order_uuid"`
	Seat      string `json:"seat"`
}

type ticketView struct {
	UUID      string  `json:"uuid"`
	RoomUUID  string  `json:"room_uuid"`
	OrderUUID *string `json:"order_uuid"`
	Seat      string  `json:"seat"`
}

func viewTicket(t *model.Ticket) ticketView {
	return ticketView{
		UUID:      t.UUID,
		RoomUUID:  t.RoomUUID,
		OrderUUID: t.OrderUUID,
		Seat:      t.Seat.String(),
	}
}

func viewTickets(tickets []model.Ticket) []ticketView {
	out := make([]ticketView, 0, len(tickets))
	for i := range tickets {
		out = append(out, viewTicket(&tickets[i]))
	}
	return out
}

// Create reserves a seat.  An absent seat field and a malformed one are
// different failures: the first is rejected by the engine, the second by
// the parser.
func (h *TicketHandler) Create(c echo.Context) error {
	var req createTicketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	var st *seat.Seat
	if req.Seat != "" {
		parsed, err := seat.Parse(req.Seat)
		if err != nil {
			return fail(c, err)
		}
		st = &parsed
	}

	ticket, err := h.Tickets.Create(c.Request().Context(), req.RoomUUID, req.OrderUUID, st)
	if err != nil {
		return fail(c, err)
	}

	go h.publishReserved(ticket)

	return c.JSON(http.StatusCreated, viewTicket(ticket))
}

// publishReserved enriches the ticket with room and movie details and
// publishes the reservation event.
func (h *TicketHandler) publishReserved(t *model.Ticket) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ev := queue.TicketReservedEvent{
		TicketUUID: t.UUID,
		RoomUUID:   t.RoomUUID,
		Seat:       t.Seat.String(),
		ReservedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if t.OrderUUID != nil {
		ev.OrderUUID = *t.OrderUUID
	}
	if room, err := h.Rooms.Find(ctx, t.RoomUUID); err == nil && room != nil {
		ev.RoomNumber = room.Number
		ev.Price = pricing.Price(room.Rows, room.Cols, t.Seat)
		if room.MovieUUID != nil {
			if movie, err := h.Movies.Find(ctx, *room.MovieUUID); err == nil && movie != nil {
				ev.MovieTitle = movie.Title
			}
		}
	}
	_ = queue.PublishTicketReserved(ctx, ev)
}

// Get returns one ticket by its public identifier.
func (h *TicketHandler) Get(c echo.Context) error {
	ticket, err := h.Tickets.Find(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return fail(c, err)
	}
	if ticket == nil {
		return notFound(c, "ticket not found")
	}
	return c.JSON(http.StatusOK, viewTicket(ticket))
}

// List returns every ticket.
func (h *TicketHandler) List(c echo.Context) error {
	tickets, err := h.Tickets.FindAll(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, viewTickets(tickets))
}

// Delete removes a ticket.
func (h *TicketHandler) Delete(c echo.Context) error {
	if err := h.Tickets.Remove(c.Request().Context(), middleware.Identity(c), c.Param("uuid")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
