// Error translation between the MySQL driver and the engine's storage
// sentinels. Repositories return engine.ErrNotFound for empty lookups and
// engine.ErrDuplicate for unique-key violations so the engine can map them
// to domain failures (a duplicate on the (room, seat) key becomes the
// "seat already reserved" failure).
package repository

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/agenson/cinema-booking/internal/engine"
)

// mysqlDupEntry is the server error number for a unique-key violation.
const mysqlDupEntry = 1062

// translate converts driver-level errors into the engine's storage
// sentinels and passes everything else through untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return engine.ErrNotFound
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDupEntry {
		return engine.ErrDuplicate
	}
	return err
}
