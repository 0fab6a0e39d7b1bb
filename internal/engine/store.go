// Package engine implements the booking domain services: movies, rooms,
// orders, tickets and users. Each service validates against the access
// policy first, then against domain rules and persistence state, and only
// then commits. Persistence is consumed through the narrow Store
// interfaces below; the MySQL implementation lives in internal/repository
// and tests substitute an in-memory fake.
package engine

import (
	"context"
	"errors"

	"github.com/agenson/cinema-booking/internal/model"
	"github.com/agenson/cinema-booking/internal/seat"
)

// Storage-level sentinels. Implementations return ErrNotFound for lookups
// that match nothing and ErrDuplicate when an insert or update violates a
// unique key (seat within room, room number, movie title, username). The
// engine translates both into its domain failures.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// MovieStore persists movies. Titles are stored already normalized.
type MovieStore interface {
	FindByUUID(ctx context.Context, uuid string) (*model.Movie, error)
	FindByTitle(ctx context.Context, title string) (*model.Movie, error)
	FindAll(ctx context.Context) ([]model.Movie, error)
	Create(ctx context.Context, m *model.Movie) error
	UpdateTitle(ctx context.Context, uuid, title string) error
	DeleteByUUID(ctx context.Context, uuid string) error
}

// RoomStore persists rooms. Deleting a room cascade-deletes its tickets at
// the storage layer; deleting a movie nulls the movie reference on rooms.
type RoomStore interface {
	FindByUUID(ctx context.Context, uuid string) (*model.Room, error)
	FindByNumber(ctx context.Context, number int) (*model.Room, error)
	FindByMovie(ctx context.Context, movieUUID string) ([]model.Room, error)
	FindAll(ctx context.Context) ([]model.Room, error)
	Create(ctx context.Context, r *model.Room) error
	UpdateNumber(ctx context.Context, uuid string, number int) error
	SetMovie(ctx context.Context, uuid string, movieUUID *string) error
	DeleteByUUID(ctx context.Context, uuid string) error
}

// OrderStore persists orders. Deleting an order nulls the order reference
// on its remaining tickets at the storage layer.
type OrderStore interface {
	FindByUUID(ctx context.Context, uuid string) (*model.Order, error)
	FindByUser(ctx context.Context, userUUID string) ([]model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, o *model.Order) error
	DeleteByUUID(ctx context.Context, uuid string) error
}

// TicketStore persists tickets. Create must surface a (room, seat) unique
// key violation as ErrDuplicate so two concurrent reservations of the same
// seat cannot both succeed.
type TicketStore interface {
	FindByUUID(ctx context.Context, uuid string) (*model.Ticket, error)
	FindByRoom(ctx context.Context, roomUUID string) ([]model.Ticket, error)
	FindByOrder(ctx context.Context, orderUUID string) ([]model.Ticket, error)
	FindAll(ctx context.Context) ([]model.Ticket, error)
	Create(ctx context.Context, t *model.Ticket) error
	DeleteByUUID(ctx context.Context, uuid string) error
}

// UserStore persists users. Deleting a user cascade-deletes their orders
// at the storage layer.
type UserStore interface {
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, u *model.User) error
	UpdateUsername(ctx context.Context, uuid, username string) error
	UpdatePassword(ctx context.Context, uuid, passwordHash string) error
	UpdateRole(ctx context.Context, uuid string, role model.Role) error
	DeleteByUUID(ctx context.Context, uuid string) error
}

// Store bundles the entity stores with an atomic execution boundary.
// Atomic runs fn against a Store whose writes either all commit or all
// roll back; the cascades in this package run inside it so a room is never
// left pointing at a new movie while stale tickets survive.
type Store interface {
	Movies() MovieStore
	Rooms() RoomStore
	Orders() OrderStore
	Tickets() TicketStore
	Users() UserStore
	Atomic(ctx context.Context, fn func(Store) error) error
}

// ticketedSeats projects the seat coordinates out of a ticket list, for
// income calculations.
func ticketedSeats(tickets []model.Ticket) []seat.Seat {
	seats := make([]seat.Seat, 0, len(tickets))
	for _, t := range tickets {
		seats = append(seats, t.Seat)
	}
	return seats
}
