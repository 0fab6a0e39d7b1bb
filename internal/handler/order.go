package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agenson/cinema-booking/internal/engine"
	"github.com/agenson/cinema-booking/internal/middleware"
	"github.com/agenson/cinema-booking/internal/model"
)

// OrderHandler exposes ticket baskets.
type OrderHandler struct {
	Orders  *engine.OrderService
	Tickets *engine.TicketService
}

func NewOrderHandler(orders *engine.OrderService, tickets *engine.TicketService) *OrderHandler {
	return &OrderHandler{Orders: orders, Tickets: tickets}
}

type createOrderReq struct {
	UserUUID string `json:"user_uuid"`
}

type orderView struct {
	UUID     string `json:"uuid"`
	UserUUID string `json:"user_uuid"`
}

func viewOrder(o *model.Order) orderView {
	return orderView{UUID: o.UUID, UserUUID: o.UserUUID}
}

func viewOrders(orders []model.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for i := range orders {
		out = append(out, viewOrder(&orders[i]))
	}
	return out
}

// Get returns one order by its public identifier.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.Orders.Find(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return fail(c, err)
	}
	if order == nil {
		return notFound(c, "order not found")
	}
	return c.JSON(http.StatusOK, viewOrder(order))
}

// List returns every order.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.Orders.FindAll(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, viewOrders(orders))
}

// ListByUser returns one user's orders.
func (h *OrderHandler) ListByUser(c echo.Context) error {
	orders, err := h.Orders.FindByUser(c.Request().Context(), middleware.Identity(c), c.Param("uuid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, viewOrders(orders))
}

// ListTickets returns the tickets attached to an order.
func (h *OrderHandler) ListTickets(c echo.Context) error {
	tickets, err := h.Tickets.FindByOrder(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, viewTickets(tickets))
}

// Create opens an empty order for a user.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	order, err := h.Orders.Create(c.Request().Context(), middleware.Identity(c), req.UserUUID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, viewOrder(order))
}

// Delete removes an order; its tickets stay but lose the order reference.
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.Orders.Remove(c.Request().Context(), middleware.Identity(c), c.Param("uuid")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
