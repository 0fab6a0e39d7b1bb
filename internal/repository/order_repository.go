package repository

import (
	"context"

	"github.com/agenson/cinema-booking/internal/model"
)

// OrderRepo provides CRUD operations for orders. Orders cascade-delete
// with their user; tickets referencing a deleted order have the reference
// nulled by the foreign-key action.
type OrderRepo struct {
	q dbtx
}

// FindByUUID returns the order with the given public identifier.
func (r *OrderRepo) FindByUUID(ctx context.Context, uuid string) (*model.Order, error) {
	const q = `SELECT id, uuid, user_uuid FROM orders WHERE uuid = ?`
	var o model.Order
	err := r.q.QueryRowContext(ctx, q, uuid).Scan(&o.ID, &o.UUID, &o.UserUUID)
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

// FindByUser returns every order belonging to the given user, newest
// first. An unknown user yields an empty slice.
func (r *OrderRepo) FindByUser(ctx context.Context, userUUID string) ([]model.Order, error) {
	const q = `SELECT id, uuid, user_uuid FROM orders WHERE user_uuid = ? ORDER BY id DESC`
	return r.list(ctx, q, userUUID)
}

// FindAll returns every order.
func (r *OrderRepo) FindAll(ctx context.Context) ([]model.Order, error) {
	const q = `SELECT id, uuid, user_uuid FROM orders ORDER BY id`
	return r.list(ctx, q)
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UUID, &o.UserUUID); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// Create inserts an order and populates its generated ID.
func (r *OrderRepo) Create(ctx context.Context, o *model.Order) error {
	const q = `INSERT INTO orders (uuid, user_uuid) VALUES (?, ?)`
	res, err := r.q.ExecContext(ctx, q, o.UUID, o.UserUUID)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = uint64(id)
	return nil
}

// DeleteByUUID removes an order. Remaining tickets lose their order
// reference via the foreign-key action. Deleting an unknown order is a
// no-op.
func (r *OrderRepo) DeleteByUUID(ctx context.Context, uuid string) error {
	const q = `DELETE FROM orders WHERE uuid = ?`
	_, err := r.q.ExecContext(ctx, q, uuid)
	return err
}
