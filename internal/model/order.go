package model

// Order is a basket of tickets belonging to one user. Orders are created
// by the checkout flow and removed either explicitly or as part of a
// room/movie cascade. Removing an order nulls the order reference on any
// tickets it still holds.
type Order struct {
	ID       uint64 // orders.id
	UUID     string // orders.uuid
	UserUUID string // orders.user_uuid
}
