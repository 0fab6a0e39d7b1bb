package engine_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenson/cinema-booking/internal/engine"
	"github.com/agenson/cinema-booking/internal/security"
)

func TestMovieCreate(t *testing.T) {
	st := newMemStore()
	svc := engine.NewMovieService(st)
	ctx := context.Background()

	_, err := svc.Create(ctx, nil, "Inception")
	assert.ErrorIs(t, err, security.ErrIdentification)
	_, err = svc.Create(ctx, customer("u-1"), "Inception")
	assert.ErrorIs(t, err, security.ErrAuthorization)

	// Titles are trimmed and upper-cased before storage.
	movie, err := svc.Create(ctx, staff(), "  Inception ")
	require.NoError(t, err)
	assert.Equal(t, "INCEPTION", movie.Title)

	// Uniqueness applies to the normalized form.
	_, err = svc.Create(ctx, staff(), "inception")
	assert.ErrorIs(t, err, engine.ErrTitleExists)

	_, err = svc.Create(ctx, staff(), "   ")
	assert.ErrorIs(t, err, engine.ErrTitleRequired)
	_, err = svc.Create(ctx, staff(), strings.Repeat("A", 33))
	assert.ErrorIs(t, err, engine.ErrTitleTooLong)

	// 32 characters exactly is still allowed.
	movie, err = svc.Create(ctx, staff(), strings.Repeat("B", 32))
	require.NoError(t, err)
	assert.Len(t, movie.Title, 32)
}

func TestMovieUpdateTitle(t *testing.T) {
	st := newMemStore()
	svc := engine.NewMovieService(st)
	ctx := context.Background()
	seedMovie(st, "m-1", "INCEPTION")
	seedMovie(st, "m-2", "ALIEN")

	movie, err := svc.UpdateTitle(ctx, staff(), "nope", "Dune")
	require.NoError(t, err)
	assert.Nil(t, movie)

	_, err = svc.UpdateTitle(ctx, staff(), "m-1", "alien")
	assert.ErrorIs(t, err, engine.ErrTitleExists)

	// Re-asserting the current title is not a collision.
	movie, err = svc.UpdateTitle(ctx, staff(), "m-1", "inception")
	require.NoError(t, err)
	assert.Equal(t, "INCEPTION", movie.Title)

	movie, err = svc.UpdateTitle(ctx, staff(), "m-1", "Dune")
	require.NoError(t, err)
	assert.Equal(t, "DUNE", movie.Title)
	assert.Equal(t, "DUNE", st.movies[0].Title)
}

func TestMovieFind(t *testing.T) {
	st := newMemStore()
	svc := engine.NewMovieService(st)
	ctx := context.Background()
	seedMovie(st, "m-1", "INCEPTION")

	movie, err := svc.Find(ctx, "m-1")
	require.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, "INCEPTION", movie.Title)

	movie, err = svc.Find(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, movie)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMovieRemoveCascade(t *testing.T) {
	st := cascadeFixture()
	svc := engine.NewMovieService(st)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Remove(ctx, customer("u-1"), "m-2"), security.ErrAuthorization)

	// Both rooms show m-2, so removing it clears every reservation and
	// the rooms stop pointing at the movie.
	require.NoError(t, svc.Remove(ctx, staff(), "m-2"))
	assert.Len(t, st.movies, 1)
	assert.Empty(t, st.tickets)
	assert.Empty(t, st.orders)
	assert.Nil(t, st.rooms[0].MovieUUID)
	assert.Nil(t, st.rooms[1].MovieUUID)
}

func TestMovieRemoveUnknown(t *testing.T) {
	st := cascadeFixture()
	svc := engine.NewMovieService(st)

	require.NoError(t, svc.Remove(context.Background(), staff(), "nope"))
	assert.Len(t, st.movies, 2)
	assert.Len(t, st.tickets, 3)
}
