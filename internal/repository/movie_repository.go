package repository

import (
	"context"

	"github.com/agenson/cinema-booking/internal/model"
)

// MovieRepo provides CRUD operations for movies. Titles arrive already
// normalized from the engine; the unique key on title backs the
// duplicate-title failure.
type MovieRepo struct {
	q dbtx
}

// FindByUUID returns the movie with the given public identifier.
func (r *MovieRepo) FindByUUID(ctx context.Context, uuid string) (*model.Movie, error) {
	const q = `SELECT id, uuid, title FROM movies WHERE uuid = ?`
	var m model.Movie
	err := r.q.QueryRowContext(ctx, q, uuid).Scan(&m.ID, &m.UUID, &m.Title)
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// FindByTitle returns the movie with the given normalized title.
func (r *MovieRepo) FindByTitle(ctx context.Context, title string) (*model.Movie, error) {
	const q = `SELECT id, uuid, title FROM movies WHERE title = ?`
	var m model.Movie
	err := r.q.QueryRowContext(ctx, q, title).Scan(&m.ID, &m.UUID, &m.Title)
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// FindAll returns the whole catalog ordered by title.
func (r *MovieRepo) FindAll(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT id, uuid, title FROM movies ORDER BY title`
	rows, err := r.q.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.UUID, &m.Title); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}

// Create inserts a movie and populates its generated ID.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	const q = `INSERT INTO movies (uuid, title) VALUES (?, ?)`
	res, err := r.q.ExecContext(ctx, q, m.UUID, m.Title)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// UpdateTitle renames a movie.
func (r *MovieRepo) UpdateTitle(ctx context.Context, uuid, title string) error {
	const q = `UPDATE movies SET title = ? WHERE uuid = ?`
	_, err := r.q.ExecContext(ctx, q, title, uuid)
	return translate(err)
}

// DeleteByUUID removes a movie. Rooms showing it have their movie
// reference nulled by the foreign-key action. Deleting an unknown movie
// is a no-op.
func (r *MovieRepo) DeleteByUUID(ctx context.Context, uuid string) error {
	const q = `DELETE FROM movies WHERE uuid = ?`
	_, err := r.q.ExecContext(ctx, q, uuid)
	return err
}
