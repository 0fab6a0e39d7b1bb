package model

import "github.com/agenson/cinema-booking/internal/seat"

// Ticket is a committed reservation of one seat in one room. Within a room
// no two tickets share a seat coordinate; the storage layer enforces this
// with a unique key on (room_uuid, seat). The order reference is optional
// and nulls out when the order is removed.
type Ticket struct {
	ID        uint64    // tickets.id
	UUID      string    // tickets.uuid
	RoomUUID  string    // tickets.room_uuid
	OrderUUID *string   // tickets.order_uuid (nullable)
	Seat      seat.Seat // tickets.seat_row + tickets.seat_col
}
