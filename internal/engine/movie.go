package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/agenson/cinema-booking/internal/model"
	"github.com/agenson/cinema-booking/internal/security"
)

// maxTitleLen bounds a movie title after normalization.
const maxTitleLen = 32

// MovieService manages the movie catalog. Titles are normalized (trimmed,
// upper-cased) before validation and storage so uniqueness is
// case-insensitive. All mutations are staff-only.
type MovieService struct {
	st Store
}

// NewMovieService binds the service to its store.
func NewMovieService(st Store) *MovieService {
	return &MovieService{st: st}
}

// Find returns the movie with the given public identifier, or nil when no
// such movie exists.
func (s *MovieService) Find(ctx context.Context, movieUUID string) (*model.Movie, error) {
	m, err := s.st.Movies().FindByUUID(ctx, movieUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return m, err
}

// FindAll lists the whole catalog.
func (s *MovieService) FindAll(ctx context.Context) ([]model.Movie, error) {
	return s.st.Movies().FindAll(ctx)
}

// Create adds a movie with a normalized, unique title.
func (s *MovieService) Create(ctx context.Context, ident *security.Identity, title string) (*model.Movie, error) {
	if err := security.RequireStaff(ident); err != nil {
		return nil, err
	}
	formatted := formatTitle(title)
	if err := s.validateTitle(ctx, "", formatted); err != nil {
		return nil, err
	}

	movie := &model.Movie{UUID: uuid.NewString(), Title: formatted}
	if err := s.st.Movies().Create(ctx, movie); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrTitleExists
		}
		return nil, err
	}
	return movie, nil
}

// UpdateTitle renames a movie, keeping titles unique. Returns nil when the
// movie does not exist.
func (s *MovieService) UpdateTitle(ctx context.Context, ident *security.Identity, movieUUID, title string) (*model.Movie, error) {
	if err := security.RequireStaff(ident); err != nil {
		return nil, err
	}
	movie, err := s.st.Movies().FindByUUID(ctx, movieUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	formatted := formatTitle(title)
	if err := s.validateTitle(ctx, movieUUID, formatted); err != nil {
		return nil, err
	}
	if err := s.st.Movies().UpdateTitle(ctx, movieUUID, formatted); err != nil {
		return nil, err
	}
	movie.Title = formatted
	return movie, nil
}

// Remove deletes a movie. Every room showing it has its reservations
// invalidated first (tickets deleted, their distinct orders deleted),
// atomically with the movie delete; the rooms' movie reference then nulls
// out at the storage layer. Removing an unknown movie is a no-op.
func (s *MovieService) Remove(ctx context.Context, ident *security.Identity, movieUUID string) error {
	if err := security.RequireStaff(ident); err != nil {
		return err
	}
	return s.st.Atomic(ctx, func(tx Store) error {
		rooms, err := tx.Rooms().FindByMovie(ctx, movieUUID)
		if err != nil {
			return err
		}
		for _, room := range rooms {
			if err := clearRoomReservations(ctx, tx, room.UUID); err != nil {
				return err
			}
		}
		return tx.Movies().DeleteByUUID(ctx, movieUUID)
	})
}

// validateTitle rejects empty or over-long titles and titles already used
// by a different movie. selfUUID is empty on creation. The title must be
// pre-normalized.
func (s *MovieService) validateTitle(ctx context.Context, selfUUID, formatted string) error {
	if formatted == "" {
		return ErrTitleRequired
	}
	if len(formatted) > maxTitleLen {
		return ErrTitleTooLong
	}
	other, err := s.st.Movies().FindByTitle(ctx, formatted)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.UUID != selfUUID {
		return ErrTitleExists
	}
	return nil
}

func formatTitle(title string) string {
	return strings.ToUpper(strings.TrimSpace(title))
}
