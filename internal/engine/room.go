package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/agenson/cinema-booking/internal/model"
	"github.com/agenson/cinema-booking/internal/pricing"
	"github.com/agenson/cinema-booking/internal/security"
)

// RoomService manages screening rooms and keeps tickets and orders
// consistent when a room's movie changes. All mutations are staff-only.
type RoomService struct {
	st Store
}

// NewRoomService binds the service to its store.
func NewRoomService(st Store) *RoomService {
	return &RoomService{st: st}
}

// Find returns the room with the given public identifier, or nil when no
// such room exists.
func (s *RoomService) Find(ctx context.Context, roomUUID string) (*model.Room, error) {
	r, err := s.st.Rooms().FindByUUID(ctx, roomUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return r, err
}

// FindAll lists every room.
func (s *RoomService) FindAll(ctx context.Context) ([]model.Room, error) {
	return s.st.Rooms().FindAll(ctx)
}

// Create registers a new room. The number must be positive and unique;
// rows and columns must both be positive.
func (s *RoomService) Create(ctx context.Context, ident *security.Identity, number, rows, cols int) (*model.Room, error) {
	if err := security.RequireStaff(ident); err != nil {
		return nil, err
	}
	if err := s.validateNumber(ctx, "", number); err != nil {
		return nil, err
	}
	if rows < 1 {
		return nil, ErrRoomRows
	}
	if cols < 1 {
		return nil, ErrRoomCols
	}

	room := &model.Room{
		UUID:   uuid.NewString(),
		Number: number,
		Rows:   rows,
		Cols:   cols,
	}
	if err := s.st.Rooms().Create(ctx, room); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrRoomNumberUsed
		}
		return nil, err
	}
	return room, nil
}

// UpdateNumber renumbers a room, keeping numbers unique. Returns nil when
// the room does not exist.
func (s *RoomService) UpdateNumber(ctx context.Context, ident *security.Identity, roomUUID string, number int) (*model.Room, error) {
	if err := security.RequireStaff(ident); err != nil {
		return nil, err
	}
	room, err := s.st.Rooms().FindByUUID(ctx, roomUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.validateNumber(ctx, roomUUID, number); err != nil {
		return nil, err
	}
	if err := s.st.Rooms().UpdateNumber(ctx, roomUUID, number); err != nil {
		return nil, err
	}
	room.Number = number
	return room, nil
}

// ReassignMovie points a room at a new movie (or clears the reference when
// movieUUID is nil) and invalidates every reservation in the room: each
// ticket is deleted and each distinct order those tickets referenced is
// deleted with it, even when that order still holds tickets in other rooms
// (those lose their order reference at the storage layer). The whole
// cascade runs atomically with the movie change. An unknown room is a
// no-op returning nil.
func (s *RoomService) ReassignMovie(ctx context.Context, ident *security.Identity, roomUUID string, movieUUID *string) (*model.Room, error) {
	if err := security.RequireStaff(ident); err != nil {
		return nil, err
	}

	var updated *model.Room
	err := s.st.Atomic(ctx, func(tx Store) error {
		room, err := tx.Rooms().FindByUUID(ctx, roomUUID)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if movieUUID != nil {
			if _, err := tx.Movies().FindByUUID(ctx, *movieUUID); err != nil {
				if errors.Is(err, ErrNotFound) {
					return ErrMovieNotFound
				}
				return err
			}
		}
		if err := tx.Rooms().SetMovie(ctx, room.UUID, movieUUID); err != nil {
			return err
		}
		if err := clearRoomReservations(ctx, tx, room.UUID); err != nil {
			return err
		}

		room.MovieUUID = movieUUID
		updated = room
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Income reports a room's current income (sum of the price of every
// ticketed seat) and its potential income when fully booked. Staff only.
func (s *RoomService) Income(ctx context.Context, ident *security.Identity, roomUUID string) (income, potential int, err error) {
	if err := security.RequireStaff(ident); err != nil {
		return 0, 0, err
	}
	room, err := s.st.Rooms().FindByUUID(ctx, roomUUID)
	if errors.Is(err, ErrNotFound) {
		return 0, 0, ErrRoomNotFound
	}
	if err != nil {
		return 0, 0, err
	}
	tickets, err := s.st.Tickets().FindByRoom(ctx, room.UUID)
	if err != nil {
		return 0, 0, err
	}
	income = pricing.Income(room.Rows, room.Cols, ticketedSeats(tickets))
	potential = pricing.PotentialIncome(room.Rows, room.Cols)
	return income, potential, nil
}

// Remove deletes a room. Tickets referencing it are cascade-deleted by the
// storage layer's foreign-key policy; the engine issues only the top-level
// delete. Removing an unknown room is a no-op.
func (s *RoomService) Remove(ctx context.Context, ident *security.Identity, roomUUID string) error {
	if err := security.RequireStaff(ident); err != nil {
		return err
	}
	return s.st.Rooms().DeleteByUUID(ctx, roomUUID)
}

// validateNumber rejects non-positive numbers and numbers already used by
// a different room. selfUUID is empty on creation.
func (s *RoomService) validateNumber(ctx context.Context, selfUUID string, number int) error {
	if number < 1 {
		return ErrRoomNumber
	}
	other, err := s.st.Rooms().FindByNumber(ctx, number)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.UUID != selfUUID {
		return ErrRoomNumberUsed
	}
	return nil
}

// clearRoomReservations deletes every ticket in the room and each distinct
// order those tickets referenced. Shared between the movie-reassignment
// and movie-removal cascades; must run inside Atomic.
func clearRoomReservations(ctx context.Context, tx Store, roomUUID string) error {
	tickets, err := tx.Tickets().FindByRoom(ctx, roomUUID)
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(tickets))
	for _, t := range tickets {
		if err := tx.Tickets().DeleteByUUID(ctx, t.UUID); err != nil {
			return err
		}
		if t.OrderUUID == nil {
			continue
		}
		if _, ok := seen[*t.OrderUUID]; ok {
			continue
		}
		seen[*t.OrderUUID] = struct{}{}
		if err := tx.Orders().DeleteByUUID(ctx, *t.OrderUUID); err != nil {
			return err
		}
	}
	return nil
}
