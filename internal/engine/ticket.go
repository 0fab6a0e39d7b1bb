package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/agenson/cinema-booking/internal/model"
	"github.com/agenson/cinema-booking/internal/seat"
	"github.com/agenson/cinema-booking/internal/security"
)

// TicketService turns a (room, order, seat) request into a persisted
// ticket and answers ticket lookups. Creation is unguarded because the
// checkout flow invokes it on behalf of the logged-in customer; listing
// every ticket or a room's tickets is staff business.
type TicketService struct {
	st Store
}

// NewTicketService binds the service to its store.
func NewTicketService(st Store) *TicketService {
	return &TicketService{st: st}
}

// Find returns the ticket with the given public identifier, or nil when
// no such ticket exists.
func (s *TicketService) Find(ctx context.Context, ticketUUID string) (*model.Ticket, error) {
	t, err := s.st.Tickets().FindByUUID(ctx, ticketUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return t, err
}

// FindAll lists every ticket. Staff only.
func (s *TicketService) FindAll(ctx context.Context, ident *security.Identity) ([]model.Ticket, error) {
	if err := security.RequireStaff(ident); err != nil {
		return nil, err
	}
	return s.st.Tickets().FindAll(ctx)
}

// FindByRoom lists a room's tickets. Staff only. An unknown room yields an
// empty list, matching the lookup-then-project contract of the original.
func (s *TicketService) FindByRoom(ctx context.Context, ident *security.Identity, roomUUID string) ([]model.Ticket, error) {
	if err := security.RequireStaff(ident); err != nil {
		return nil, err
	}
	return s.st.Tickets().FindByRoom(ctx, roomUUID)
}

// FindByOrder lists the tickets attached to an order. An unknown order
// yields an empty list.
func (s *TicketService) FindByOrder(ctx context.Context, orderUUID string) ([]model.Ticket, error) {
	return s.st.Tickets().FindByOrder(ctx, orderUUID)
}

// Create reserves a seat. The validation order is contractual: the room is
// resolved first, then the order, then the seat is checked for presence,
// geometry and uniqueness within the room. Callers may rely on receiving
// the room/order failures before any seat failure. A duplicate-key
// violation surfaced by storage on insert maps to the same "already
// reserved" failure as the explicit check, so a concurrent reservation of
// the same seat never reports a fatal error.
func (s *TicketService) Create(ctx context.Context, roomUUID, orderUUID string, st *seat.Seat) (*model.Ticket, error) {
	room, err := s.st.Rooms().FindByUUID(ctx, roomUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	order, err := s.st.Orders().FindByUUID(ctx, orderUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if st == nil {
		return nil, ErrSeatRequired
	}
	if st.Col > room.Cols || st.Row > room.Rows {
		return nil, ErrSeatOutside
	}

	existing, err := s.st.Tickets().FindByRoom(ctx, room.UUID)
	if err != nil {
		return nil, err
	}
	for _, t := range existing {
		if t.Seat == *st {
			return nil, ErrSeatReserved
		}
	}

	orderRef := order.UUID
	ticket := &model.Ticket{
		UUID:      uuid.NewString(),
		RoomUUID:  room.UUID,
		OrderUUID: &orderRef,
		Seat:      *st,
	}
	if err := s.st.Tickets().Create(ctx, ticket); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrSeatReserved
		}
		return nil, err
	}
	return ticket, nil
}

// Remove deletes a ticket. Staff only; removing an unknown ticket is a
// no-op.
func (s *TicketService) Remove(ctx context.Context, ident *security.Identity, ticketUUID string) error {
	if err := security.RequireStaff(ident); err != nil {
		return err
	}
	return s.st.Tickets().DeleteByUUID(ctx, ticketUUID)
}
