package repository

import (
	"context"
	"database/sql"

	"github.com/agenson/cinema-booking/internal/model"
)

// RoomRepo provides CRUD operations for screening rooms. The room number
// carries a unique key; the movie reference is nullable and nulls out when
// the movie is deleted.
type RoomRepo struct {
	q dbtx
}

const roomColumns = `id, uuid, number, seat_rows, seat_cols, movie_uuid`

// scanRoom reads one room row, converting the nullable movie reference.
func scanRoom(row interface{ Scan(dest ...any) error }) (*model.Room, error) {
	var r model.Room
	var movie sql.NullString
	if err := row.Scan(&r.ID, &r.UUID, &r.Number, &r.Rows, &r.Cols, &movie); err != nil {
		return nil, err
	}
	if movie.Valid {
		r.MovieUUID = &movie.String
	}
	return &r, nil
}

// FindByUUID returns the room with the given public identifier.
func (r *RoomRepo) FindByUUID(ctx context.Context, uuid string) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE uuid = ?`
	room, err := scanRoom(r.q.QueryRowContext(ctx, q, uuid))
	if err != nil {
		return nil, translate(err)
	}
	return room, nil
}

// FindByNumber returns the room with the given room number.
func (r *RoomRepo) FindByNumber(ctx context.Context, number int) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE number = ?`
	room, err := scanRoom(r.q.QueryRowContext(ctx, q, number))
	if err != nil {
		return nil, translate(err)
	}
	return room, nil
}

// FindByMovie returns every room currently showing the given movie.
func (r *RoomRepo) FindByMovie(ctx context.Context, movieUUID string) ([]model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE movie_uuid = ? ORDER BY number`
	return r.list(ctx, q, movieUUID)
}

// FindAll returns every room ordered by number.
func (r *RoomRepo) FindAll(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms ORDER BY number`
	return r.list(ctx, q)
}

func (r *RoomRepo) list(ctx context.Context, query string, args ...any) ([]model.Room, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a room and populates its generated ID.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	const q = `INSERT INTO rooms (uuid, number, seat_rows, seat_cols, movie_uuid)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.q.ExecContext(ctx, q, room.UUID, room.Number, room.Rows, room.Cols, room.MovieUUID)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = uint64(id)
	return nil
}

// UpdateNumber renumbers a room.
func (r *RoomRepo) UpdateNumber(ctx context.Context, uuid string, number int) error {
	const q = `UPDATE rooms SET number = ? WHERE uuid = ?`
	_, err := r.q.ExecContext(ctx, q, number, uuid)
	return translate(err)
}

// SetMovie points a room at a movie, or clears the reference when
// movieUUID is nil.
func (r *RoomRepo) SetMovie(ctx context.Context, uuid string, movieUUID *string) error {
	const q = `UPDATE rooms SET movie_uuid = ? WHERE uuid = ?`
	_, err := r.q.ExecContext(ctx, q, movieUUID, uuid)
	return err
}

// DeleteByUUID removes a room. Its tickets are cascade-deleted by the
// foreign-key action. Deleting an unknown room is a no-op.
func (r *RoomRepo) DeleteByUUID(ctx context.Context, uuid string) error {
	const q = `DELETE FROM rooms WHERE uuid = ?`
	_, err := r.q.ExecContext(ctx, q, uuid)
	return err
}
