package repository

import (
	"context"

	"github.com/agenson/cinema-booking/internal/model"
)

// UserRepo provides CRUD operations for accounts. Usernames carry a
// unique key; deleting a user cascade-deletes their orders via the
// foreign-key action.
type UserRepo struct {
	q dbtx
}

const userColumns = `id, uuid, username, password_hash, role`

// FindByUUID returns the user with the given public identifier.
func (r *UserRepo) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE uuid = ?`
	return r.one(ctx, q, uuid)
}

// FindByUsername returns the user with the given login name.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	return r.one(ctx, q, username)
}

func (r *UserRepo) one(ctx context.Context, query string, args ...any) (*model.User, error) {
	var u model.User
	err := r.q.QueryRowContext(ctx, query, args...).
		Scan(&u.ID, &u.UUID, &u.Username, &u.Password, &u.Role)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// FindAll returns every account ordered by username.
func (r *UserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY username`
	rows, err := r.q.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.UUID, &u.Username, &u.Password, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts an account and populates its generated ID.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users (uuid, username, password_hash, role) VALUES (?, ?, ?, ?)`
	res, err := r.q.ExecContext(ctx, q, u.UUID, u.Username, u.Password, u.Role)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// UpdateUsername renames an account.
func (r *UserRepo) UpdateUsername(ctx context.Context, uuid, username string) error {
	const q = `UPDATE users SET username = ? WHERE uuid = ?`
	_, err := r.q.ExecContext(ctx, q, username, uuid)
	return translate(err)
}

// UpdatePassword stores a new bcrypt hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, uuid, passwordHash string) error {
	const q = `UPDATE users SET password_hash = ? WHERE uuid = ?`
	_, err := r.q.ExecContext(ctx, q, passwordHash, uuid)
	return err
}

// UpdateRole changes an account's role.
func (r *UserRepo) UpdateRole(ctx context.Context, uuid string, role model.Role) error {
	const q = `UPDATE users SET role = ? WHERE uuid = ?`
	_, err := r.q.ExecContext(ctx, q, role, uuid)
	return err
}

// DeleteByUUID removes an account and, via the foreign-key action, its
// orders. Deleting an unknown account is a no-op.
func (r *UserRepo) DeleteByUUID(ctx context.Context, uuid string) error {
	const q = `DELETE FROM users WHERE uuid = ?`
	_, err := r.q.ExecContext(ctx, q, uuid)
	return err
}
