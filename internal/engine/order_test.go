package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenson/cinema-booking/internal/engine"
	"github.com/agenson/cinema-booking/internal/security"
)

func orderFixture() (*memStore, *engine.OrderService) {
	st := newMemStore()
	seedUser(st, "u-1", "alice", "CUSTOMER")
	seedUser(st, "u-2", "bob", "CUSTOMER")
	seedOrder(st, "o-1", "u-1")
	seedOrder(st, "o-2", "u-2")
	return st, engine.NewOrderService(st)
}

func TestOrderFind(t *testing.T) {
	_, svc := orderFixture()
	ctx := context.Background()

	order, err := svc.Find(ctx, "o-1")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "u-1", order.UserUUID)

	order, err = svc.Find(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestOrderFindAll(t *testing.T) {
	_, svc := orderFixture()
	ctx := context.Background()

	_, err := svc.FindAll(ctx, nil)
	assert.ErrorIs(t, err, security.ErrIdentification)
	_, err = svc.FindAll(ctx, customer("u-1"))
	assert.ErrorIs(t, err, security.ErrAuthorization)

	all, err := svc.FindAll(ctx, staff())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOrderFindByUser(t *testing.T) {
	_, svc := orderFixture()
	ctx := context.Background()

	_, err := svc.FindByUser(ctx, nil, "u-1")
	assert.ErrorIs(t, err, security.ErrIdentification)

	// Only the user themselves may list their orders; staff included.
	_, err = svc.FindByUser(ctx, customer("u-2"), "u-1")
	assert.ErrorIs(t, err, security.ErrAuthorization)
	_, err = svc.FindByUser(ctx, staff(), "u-1")
	assert.ErrorIs(t, err, security.ErrAuthorization)

	orders, err := svc.FindByUser(ctx, customer("u-1"), "u-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o-1", orders[0].UUID)
}

func TestOrderCreate(t *testing.T) {
	st, svc := orderFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, customer("u-1"), "u-1")
	assert.ErrorIs(t, err, security.ErrAuthorization)

	_, err = svc.Create(ctx, staff(), "nope")
	assert.ErrorIs(t, err, engine.ErrUserNotFound)

	order, err := svc.Create(ctx, staff(), "u-1")
	require.NoError(t, err)
	assert.NotEmpty(t, order.UUID)
	assert.Equal(t, "u-1", order.UserUUID)
	assert.Len(t, st.orders, 3)
}

func TestOrderRemoveDetachesTickets(t *testing.T) {
	st, svc := orderFixture()
	ctx := context.Background()
	seedRoom(st, "r-1", 1, 10, 20, nil)
	seedTicket(st, "t-1", "r-1", strptr("o-1"), 1, 1)
	seedTicket(st, "t-2", "r-1", strptr("o-2"), 2, 2)

	assert.ErrorIs(t, svc.Remove(ctx, customer("u-1"), "o-1"), security.ErrAuthorization)
	require.NoError(t, svc.Remove(ctx, staff(), "o-1"))

	// The order is gone but its ticket stays, now unattached.
	assert.Len(t, st.orders, 1)
	require.Len(t, st.tickets, 2)
	assert.Nil(t, st.tickets[0].OrderUUID)
	require.NotNil(t, st.tickets[1].OrderUUID)
	assert.Equal(t, "o-2", *st.tickets[1].OrderUUID)
}
