package engine_test

// An in-memory Store used by the service tests. It mirrors the semantics
// the MySQL layer gets from its schema: unique keys surface ErrDuplicate,
// deletes apply the declared referential actions (movie -> rooms nulled,
// room -> tickets deleted, user -> orders deleted, order -> tickets
// detached) and Atomic restores a snapshot when the callback fails.

import (
	"context"

	"github.com/agenson/cinema-booking/internal/engine"
	"github.com/agenson/cinema-booking/internal/model"
	"github.com/agenson/cinema-booking/internal/seat"
	"github.com/agenson/cinema-booking/internal/security"
)

// Fixture identities and seed helpers shared by the service tests.

func staff() *security.Identity {
	return &security.Identity{UUID: "staff-1", Role: model.RoleStaff}
}

func customer(uuid string) *security.Identity {
	return &security.Identity{UUID: uuid, Role: model.RoleCustomer}
}

func seedMovie(m *memStore, uuid, title string) {
	m.movies = append(m.movies, model.Movie{UUID: uuid, Title: title})
}

func seedRoom(m *memStore, uuid string, number, rows, cols int, movieUUID *string) {
	m.rooms = append(m.rooms, model.Room{UUID: uuid, Number: number, Rows: rows, Cols: cols, MovieUUID: movieUUID})
}

func seedUser(m *memStore, uuid, username string, role model.Role) {
	m.users = append(m.users, model.User{UUID: uuid, Username: username, Role: role})
}

func seedOrder(m *memStore, uuid, userUUID string) {
	m.orders = append(m.orders, model.Order{UUID: uuid, UserUUID: userUUID})
}

func seedTicket(m *memStore, uuid, roomUUID string, orderUUID *string, row, col int) {
	m.tickets = append(m.tickets, model.Ticket{
		UUID:      uuid,
		RoomUUID:  roomUUID,
		OrderUUID: orderUUID,
		Seat:      seat.Seat{Row: row, Col: col},
	})
}

func strptr(s string) *string { return &s }

type memStore struct {
	movies  []model.Movie
	rooms   []model.Room
	orders  []model.Order
	tickets []model.Ticket
	users   []model.User

	inTx bool

	// Error hooks for failure-path tests. The named operation returns the
	// error instead of running.
	orderDeleteErr error
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) Movies() engine.MovieStore   { return &memMovies{m} }
func (m *memStore) Rooms() engine.RoomStore     { return &memRooms{m} }
func (m *memStore) Orders() engine.OrderStore   { return &memOrders{m} }
func (m *memStore) Tickets() engine.TicketStore { return &memTickets{m} }
func (m *memStore) Users() engine.UserStore     { return &memUsers{m} }

func (m *memStore) Atomic(ctx context.Context, fn func(engine.Store) error) error {
	if m.inTx {
		return fn(m)
	}
	snap := m.snapshot()
	m.inTx = true
	err := fn(m)
	m.inTx = false
	if err != nil {
		m.restore(snap)
	}
	return err
}

type memSnapshot struct {
	movies  []model.Movie
	rooms   []model.Room
	orders  []model.Order
	tickets []model.Ticket
	users   []model.User
}

func (m *memStore) snapshot() memSnapshot {
	return memSnapshot{
		movies:  append([]model.Movie(nil), m.movies...),
		rooms:   append([]model.Room(nil), m.rooms...),
		orders:  append([]model.Order(nil), m.orders...),
		tickets: append([]model.Ticket(nil), m.tickets...),
		users:   append([]model.User(nil), m.users...),
	}
}

func (m *memStore) restore(s memSnapshot) {
	m.movies, m.rooms, m.orders, m.tickets, m.users =
		s.movies, s.rooms, s.orders, s.tickets, s.users
}

// ----- movies -----

type memMovies struct{ m *memStore }

func (r *memMovies) FindByUUID(_ context.Context, uuid string) (*model.Movie, error) {
	for i := range r.m.movies {
		if r.m.movies[i].UUID == uuid {
			out := r.m.movies[i]
			return &out, nil
		}
	}
	return nil, engine.ErrNotFound
}

func (r *memMovies) FindByTitle(_ context.Context, title string) (*model.Movie, error) {
	for i := range r.m.movies {
		if r.m.movies[i].Title == title {
			out := r.m.movies[i]
			return &out, nil
		}
	}
	return nil, engine.ErrNotFound
}

func (r *memMovies) FindAll(_ context.Context) ([]model.Movie, error) {
	return append([]model.Movie(nil), r.m.movies...), nil
}

func (r *memMovies) Create(_ context.Context, mv *model.Movie) error {
	for i := range r.m.movies {
		if r.m.movies[i].Title == mv.Title {
			return engine.ErrDuplicate
		}
	}
	r.m.movies = append(r.m.movies, *mv)
	return nil
}

func (r *memMovies) UpdateTitle(_ context.Context, uuid, title string) error {
	for i := range r.m.movies {
		if r.m.movies[i].UUID == uuid {
			r.m.movies[i].Title = title
		}
	}
	return nil
}

func (r *memMovies) DeleteByUUID(_ context.Context, uuid string) error {
	kept := r.m.movies[:0]
	for _, mv := range r.m.movies {
		if mv.UUID != uuid {
			kept = append(kept, mv)
		}
	}
	r.m.movies = kept
	// ON DELETE SET NULL on rooms.movie_uuid.
	for i := range r.m.rooms {
		if r.m.rooms[i].MovieUUID != nil && *r.m.rooms[i].MovieUUID == uuid {
			r.m.rooms[i].MovieUUID = nil
		}
	}
	return nil
}

// ----- rooms -----

type memRooms struct{ m *memStore }

func (r *memRooms) FindByUUID(_ context.Context, uuid string) (*model.Room, error) {
	for i := range r.m.rooms {
		if r.m.rooms[i].UUID == uuid {
			out := r.m.rooms[i]
			return &out, nil
		}
	}
	return nil, engine.ErrNotFound
}

func (r *memRooms) FindByNumber(_ context.Context, number int) (*model.Room, error) {
	for i := range r.m.rooms {
		if r.m.rooms[i].Number == number {
			out := r.m.rooms[i]
			return &out, nil
		}
	}
	return nil, engine.ErrNotFound
}

func (r *memRooms) FindByMovie(_ context.Context, movieUUID string) ([]model.Room, error) {
	var out []model.Room
	for i := range r.m.rooms {
		if r.m.rooms[i].MovieUUID != nil && *r.m.rooms[i].MovieUUID == movieUUID {
			out = append(out, r.m.rooms[i])
		}
	}
	return out, nil
}

func (r *memRooms) FindAll(_ context.Context) ([]model.Room, error) {
	return append([]model.Room(nil), r.m.rooms...), nil
}

func (r *memRooms) Create(_ context.Context, rm *model.Room) error {
	for i := range r.m.rooms {
		if r.m.rooms[i].Number == rm.Number {
			return engine.ErrDuplicate
		}
	}
	r.m.rooms = append(r.m.rooms, *rm)
	return nil
}

func (r *memRooms) UpdateNumber(_ context.Context, uuid string, number int) error {
	for i := range r.m.rooms {
		if r.m.rooms[i].UUID == uuid {
			r.m.rooms[i].Number = number
		}
	}
	return nil
}

func (r *memRooms) SetMovie(_ context.Context, uuid string, movieUUID *string) error {
	for i := range r.m.rooms {
		if r.m.rooms[i].UUID == uuid {
			r.m.rooms[i].MovieUUID = movieUUID
		}
	}
	return nil
}

func (r *memRooms) DeleteByUUID(_ context.Context, uuid string) error {
	kept := r.m.rooms[:0]
	for _, rm := range r.m.rooms {
		if rm.UUID != uuid {
			kept = append(kept, rm)
		}
	}
	r.m.rooms = kept
	// ON DELETE CASCADE on tickets.room_uuid.
	keptT := r.m.tickets[:0]
	for _, t := range r.m.tickets {
		if t.RoomUUID != uuid {
			keptT = append(keptT, t)
		}
	}
	r.m.tickets = keptT
	return nil
}

// ----- orders -----

type memOrders struct{ m *memStore }

func (r *memOrders) FindByUUID(_ context.Context, uuid string) (*model.Order, error) {
	for i := range r.m.orders {
		if r.m.orders[i].UUID == uuid {
			out := r.m.orders[i]
			return &out, nil
		}
	}
	return nil, engine.ErrNotFound
}

func (r *memOrders) FindByUser(_ context.Context, userUUID string) ([]model.Order, error) {
	var out []model.Order
	for i := range r.m.orders {
		if r.m.orders[i].UserUUID == userUUID {
			out = append(out, r.m.orders[i])
		}
	}
	return out, nil
}

func (r *memOrders) FindAll(_ context.Context) ([]model.Order, error) {
	return append([]model.Order(nil), r.m.orders...), nil
}

func (r *memOrders) Create(_ context.Context, o *model.Order) error {
	r.m.orders = append(r.m.orders, *o)
	return nil
}

func (r *memOrders) DeleteByUUID(_ context.Context, uuid string) error {
	if r.m.orderDeleteErr != nil {
		return r.m.orderDeleteErr
	}
	kept := r.m.orders[:0]
	for _, o := range r.m.orders {
		if o.UUID != uuid {
			kept = append(kept, o)
		}
	}
	r.m.orders = kept
	// ON DELETE SET NULL on tickets.order_uuid.
	for i := range r.m.tickets {
		if r.m.tickets[i].OrderUUID != nil && *r.m.tickets[i].OrderUUID == uuid {
			r.m.tickets[i].OrderUUID = nil
		}
	}
	return nil
}

// ----- tickets -----

type memTickets struct{ m *memStore }

func (r *memTickets) FindByUUID(_ context.Context, uuid string) (*model.Ticket, error) {
	for i := range r.m.tickets {
		if r.m.tickets[i].UUID == uuid {
			out := r.m.tickets[i]
			return &out, nil
		}
	}
	return nil, engine.ErrNotFound
}

func (r *memTickets) FindByRoom(_ context.Context, roomUUID string) ([]model.Ticket, error) {
	var out []model.Ticket
	for i := range r.m.tickets {
		if r.m.tickets[i].RoomUUID == roomUUID {
			out = append(out, r.m.tickets[i])
		}
	}
	return out, nil
}

func (r *memTickets) FindByOrder(_ context.Context, orderUUID string) ([]model.Ticket, error) {
	var out []model.Ticket
	for i := range r.m.tickets {
		if r.m.tickets[i].OrderUUID != nil && *r.m.tickets[i].OrderUUID == orderUUID {
			out = append(out, r.m.tickets[i])
		}
	}
	return out, nil
}

func (r *memTickets) FindAll(_ context.Context) ([]model.Ticket, error) {
	return append([]model.Ticket(nil), r.m.tickets...), nil
}

func (r *memTickets) Create(_ context.Context, t *model.Ticket) error {
	for i := range r.m.tickets {
		if r.m.tickets[i].RoomUUID == t.RoomUUID && r.m.tickets[i].Seat == t.Seat {
			return engine.ErrDuplicate
		}
	}
	r.m.tickets = append(r.m.tickets, *t)
	return nil
}

func (r *memTickets) DeleteByUUID(_ context.Context, uuid string) error {
	kept := r.m.tickets[:0]
	for _, t := range r.m.tickets {
		if t.UUID != uuid {
			kept = append(kept, t)
		}
	}
	r.m.tickets = kept
	return nil
}

// ----- users -----

type memUsers struct{ m *memStore }

func (r *memUsers) FindByUUID(_ context.Context, uuid string) (*model.User, error) {
	for i := range r.m.users {
		if r.m.users[i].UUID == uuid {
			out := r.m.users[i]
			return &out, nil
		}
	}
	return nil, engine.ErrNotFound
}

func (r *memUsers) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for i := range r.m.users {
		if r.m.users[i].Username == username {
			out := r.m.users[i]
			return &out, nil
		}
	}
	return nil, engine.ErrNotFound
}

func (r *memUsers) FindAll(_ context.Context) ([]model.User, error) {
	return append([]model.User(nil), r.m.users...), nil
}

func (r *memUsers) Create(_ context.Context, u *model.User) error {
	for i := range r.m.users {
		if r.m.users[i].Username == u.Username {
			return engine.ErrDuplicate
		}
	}
	r.m.users = append(r.m.users, *u)
	return nil
}

func (r *memUsers) UpdateUsername(_ context.Context, uuid, username string) error {
	for i := range r.m.users {
		if r.m.users[i].UUID == uuid {
			r.m.users[i].Username = username
		}
	}
	return nil
}

func (r *memUsers) UpdatePassword(_ context.Context, uuid, passwordHash string) error {
	for i := range r.m.users {
		if r.m.users[i].UUID == uuid {
			r.m.users[i].Password = passwordHash
		}
	}
	return nil
}

func (r *memUsers) UpdateRole(_ context.Context, uuid string, role model.Role) error {
	for i := range r.m.users {
		if r.m.users[i].UUID == uuid {
			r.m.users[i].Role = role
		}
	}
	return nil
}

func (r *memUsers) DeleteByUUID(ctx context.Context, uuid string) error {
	kept := r.m.users[:0]
	for _, u := range r.m.users {
		if u.UUID != uuid {
			kept = append(kept, u)
		}
	}
	r.m.users = kept
	// ON DELETE CASCADE on orders.user_uuid, which in turn detaches the
	// orders' tickets.
	var doomed []string
	for i := range r.m.orders {
		if r.m.orders[i].UserUUID == uuid {
			doomed = append(doomed, r.m.orders[i].UUID)
		}
	}
	for _, o := range doomed {
		if err := (&memOrders{r.m}).DeleteByUUID(ctx, o); err != nil {
			return err
		}
	}
	return nil
}
