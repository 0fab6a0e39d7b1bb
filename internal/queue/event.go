// Package queue publishes and consumes domain events over RabbitMQ.
package queue

// TicketReservedEvent is published when a seat is successfully reserved.
// It carries enough information for downstream consumers to log, notify or
// feed analytics without querying the primary database.
type TicketReservedEvent struct {
	TicketUUID string `json:"ticket_uuid"`
	RoomUUID   string `json:"room_uuid"`
	RoomNumber int    `json:"room_number"`
	OrderUUID  string `json:"order_uuid"`
	MovieTitle string `json:"movie_title,omitempty"`
	Seat       string `json:"seat"`
	Price      int    `json:"price"`
	ReservedAt string `json:"reserved_at"`
}
