package repository

import (
	"context"
	"database/sql"

	"github.com/agenson/cinema-booking/internal/model"
)

// TicketRepo provides CRUD operations for tickets. The unique key on
// (room_uuid, seat_row, seat_col) is the storage-side guard behind the
// engine's seat-uniqueness invariant: a concurrent insert of the same seat
// fails with a duplicate-key error that the engine reports as "already
// reserved".
type TicketRepo struct {
	q dbtx
}

const ticketColumns = `id, uuid, room_uuid, order_uuid, seat_row, seat_col`

// scanTicket reads one ticket row, converting the nullable order
// reference.
func scanTicket(row interface{ Scan(dest ...any) error }) (*model.Ticket, error) {
	var t model.Ticket
	var order sql.NullString
	if err := row.Scan(&t.ID, &t.UUID, &t.RoomUUID, &order, &t.Seat.Row, &t.Seat.Col); err != nil {
		return nil, err
	}
	if order.Valid {
		t.OrderUUID = &order.String
	}
	return &t, nil
}

// FindByUUID returns the ticket with the given public identifier.
func (r *TicketRepo) FindByUUID(ctx context.Context, uuid string) (*model.Ticket, error) {
	const q = `SELECT ` + ticketColumns + ` FROM tickets WHERE uuid = ?`
	t, err := scanTicket(r.q.QueryRowContext(ctx, q, uuid))
	if err != nil {
		return nil, translate(err)
	}
	return t, nil
}

// FindByRoom returns a room's tickets ordered by seat for deterministic
// output.
func (r *TicketRepo) FindByRoom(ctx context.Context, roomUUID string) ([]model.Ticket, error) {
	const q = `SELECT ` + ticketColumns + ` FROM tickets
	           WHERE room_uuid = ? ORDER BY seat_row, seat_col`
	return r.list(ctx, q, roomUUID)
}

// FindByOrder returns an order's tickets ordered by seat.
func (r *TicketRepo) FindByOrder(ctx context.Context, orderUUID string) ([]model.Ticket, error) {
	const q = `SELECT ` + ticketColumns + ` FROM tickets
	           WHERE order_uuid = ? ORDER BY seat_row, seat_col`
	return r.list(ctx, q, orderUUID)
}

// FindAll returns every ticket.
func (r *TicketRepo) FindAll(ctx context.Context) ([]model.Ticket, error) {
	const q = `SELECT ` + ticketColumns + ` FROM tickets ORDER BY id`
	return r.list(ctx, q)
}

func (r *TicketRepo) list(ctx context.Context, query string, args ...any) ([]model.Ticket, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]model.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tickets, nil
}

// Create inserts a ticket and populates its generated ID. A duplicate-key
// violation on the room/seat unique key surfaces as engine.ErrDuplicate.
func (r *TicketRepo) Create(ctx context.Context, t *model.Ticket) error {
	const q = `INSERT INTO tickets (uuid, room_uuid, order_uuid, seat_row, seat_col)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.q.ExecContext(ctx, q, t.UUID, t.RoomUUID, t.OrderUUID, t.Seat.Row, t.Seat.Col)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// DeleteByUUID removes a ticket. Deleting an unknown ticket is a no-op.
func (r *TicketRepo) DeleteByUUID(ctx context.Context, uuid string) error {
	const q = `DELETE FROM tickets WHERE uuid = ?`
	_, err := r.q.ExecContext(ctx, q, uuid)
	return err
}
