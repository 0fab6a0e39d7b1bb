package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/agenson/cinema-booking/internal/engine"
	"github.com/agenson/cinema-booking/internal/model"
	"github.com/agenson/cinema-booking/internal/seat"
	"github.com/agenson/cinema-booking/internal/security"
)

// TestBookingScenario runs the whole flow against one store: accounts,
// catalog, checkout, income and the reassignment cascade.
func TestBookingScenario(t *testing.T) {
	st := newMemStore()
	users := engine.NewUserService(st, bcrypt.MinCost)
	movies := engine.NewMovieService(st)
	rooms := engine.NewRoomService(st)
	orders := engine.NewOrderService(st)
	tickets := engine.NewTicketService(st)
	ctx := context.Background()

	// A customer registers and logs in.
	alice, err := users.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)
	logged, err := users.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	aliceIdent := &security.Identity{UUID: logged.UUID, Role: logged.Role}

	// Staff set up the catalog: one movie, one large room showing it.
	admin := staff()
	seedUser(st, admin.UUID, "admin", model.RoleStaff)
	movie, err := movies.Create(ctx, admin, "Inception")
	require.NoError(t, err)
	room, err := rooms.Create(ctx, admin, 1, 10, 6)
	require.NoError(t, err)
	room, err = rooms.ReassignMovie(ctx, admin, room.UUID, &movie.UUID)
	require.NoError(t, err)
	require.NotNil(t, room.MovieUUID)

	// The customer may not open orders directly; staff do it for them.
	_, err = orders.Create(ctx, aliceIdent, alice.UUID)
	require.ErrorIs(t, err, security.ErrAuthorization)
	order, err := orders.Create(ctx, admin, alice.UUID)
	require.NoError(t, err)

	// Two seats: one premium front row, one base back row.
	front, err := tickets.Create(ctx, room.UUID, order.UUID, &seat.Seat{Row: 1, Col: 1})
	require.NoError(t, err)
	_, err = tickets.Create(ctx, room.UUID, order.UUID, &seat.Seat{Row: 10, Col: 6})
	require.NoError(t, err)

	// The front seat cannot be sold twice.
	_, err = tickets.Create(ctx, room.UUID, order.UUID, &seat.Seat{Row: 1, Col: 1})
	require.ErrorIs(t, err, engine.ErrSeatReserved)

	// The customer sees their order and its tickets.
	mine, err := orders.FindByUser(ctx, aliceIdent, alice.UUID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	sold, err := tickets.FindByOrder(ctx, order.UUID)
	require.NoError(t, err)
	assert.Len(t, sold, 2)

	// Income: 12 + 10 sold, 660 potential for the 60-seat room.
	income, potential, err := rooms.Income(ctx, admin, room.UUID)
	require.NoError(t, err)
	assert.Equal(t, 22, income)
	assert.Equal(t, 660, potential)

	// Reassigning the room's movie invalidates the whole reservation.
	other, err := movies.Create(ctx, admin, "Alien")
	require.NoError(t, err)
	room, err = rooms.ReassignMovie(ctx, admin, room.UUID, &other.UUID)
	require.NoError(t, err)
	assert.Equal(t, other.UUID, *room.MovieUUID)

	gone, err := tickets.Find(ctx, front.UUID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	emptied, err := orders.Find(ctx, order.UUID)
	require.NoError(t, err)
	assert.Nil(t, emptied)

	income, _, err = rooms.Income(ctx, admin, room.UUID)
	require.NoError(t, err)
	assert.Equal(t, 0, income)
}
