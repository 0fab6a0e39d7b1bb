// Package repository implements the engine's persistence interfaces on
// MySQL. Entities are addressed by their public UUID; foreign keys
// reference the UUID columns so the declared referential actions (CASCADE
// and SET NULL, see migrations/001_init.sql) implement the cascade policy
// the engine relies on. All methods take a context and run against either
// the root connection pool or an open transaction.
package repository

import (
	"context"
	"database/sql"

	"github.com/agenson/cinema-booking/internal/engine"
)

// dbtx is the subset of *sql.DB and *sql.Tx the repositories need. Binding
// repos to this interface lets the same query code run inside and outside
// a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store bundles the MySQL repositories and implements engine.Store. The
// zero value is not usable; construct with NewStore.
type Store struct {
	db      *sql.DB // nil when the store is bound to a transaction
	q       dbtx
	movies  *MovieRepo
	rooms   *RoomRepo
	orders  *OrderRepo
	tickets *TicketRepo
	users   *UserRepo
}

// NewStore builds a Store over the given connection pool.
func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, q dbtx) *Store {
	return &Store{
		db:      db,
		q:       q,
		movies:  &MovieRepo{q: q},
		rooms:   &RoomRepo{q: q},
		orders:  &OrderRepo{q: q},
		tickets: &TicketRepo{q: q},
		users:   &UserRepo{q: q},
	}
}

// Movies returns the movie repository.
func (s *Store) Movies() engine.MovieStore { return s.movies }

// Rooms returns the room repository.
func (s *Store) Rooms() engine.RoomStore { return s.rooms }

// Orders returns the order repository.
func (s *Store) Orders() engine.OrderStore { return s.orders }

// Tickets returns the ticket repository.
func (s *Store) Tickets() engine.TicketStore { return s.tickets }

// Users returns the user repository.
func (s *Store) Users() engine.UserStore { return s.users }

// Atomic runs fn against a transaction-bound Store. The transaction is
// committed when fn returns nil and rolled back otherwise. Nested Atomic
// calls reuse the already-open transaction.
func (s *Store) Atomic(ctx context.Context, fn func(engine.Store) error) error {
	if s.db == nil {
		// Already inside a transaction.
		return fn(s)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(newStore(nil, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
