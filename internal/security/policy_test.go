package security

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agenson/cinema-booking/internal/model"
)

func TestRequireStaff(t *testing.T) {
	assert.ErrorIs(t, RequireStaff(nil), ErrIdentification)

	customer := &Identity{UUID: "u-1", Role: model.RoleCustomer}
	assert.ErrorIs(t, RequireStaff(customer), ErrAuthorization)

	staff := &Identity{UUID: "u-2", Role: model.RoleStaff}
	assert.NoError(t, RequireStaff(staff))
}

func TestRequireUser(t *testing.T) {
	assert.ErrorIs(t, RequireUser(nil, "u-1"), ErrIdentification)

	ident := &Identity{UUID: "u-1", Role: model.RoleCustomer}
	assert.NoError(t, RequireUser(ident, "u-1"))
	assert.ErrorIs(t, RequireUser(ident, "u-2"), ErrAuthorization)

	// Staff gets no shortcut on owner-only operations.
	staff := &Identity{UUID: "u-3", Role: model.RoleStaff}
	assert.ErrorIs(t, RequireUser(staff, "u-1"), ErrAuthorization)

	// An empty owner identifier never matches anyone.
	assert.ErrorIs(t, RequireUser(ident, ""), ErrAuthorization)
}

func TestIdentity(t *testing.T) {
	var nobody *Identity
	assert.False(t, nobody.IsStaff())
	assert.False(t, nobody.Is("u-1"))

	staff := &Identity{UUID: "u-1", Role: model.RoleStaff}
	assert.True(t, staff.IsStaff())
	assert.True(t, staff.Is("u-1"))
	assert.False(t, staff.Is("u-2"))
}

func TestDenylistWithoutRedis(t *testing.T) {
	// Without a Redis client the denylist degrades to a no-op instead of
	// blocking logins or logouts.
	d := NewDenylist(nil)
	ctx := context.Background()

	assert.NoError(t, d.Revoke(ctx, "token", time.Minute))
	assert.False(t, d.Revoked(ctx, "token"))
}
