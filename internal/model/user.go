package model

// Role classifies a user for access decisions. Staff manage the catalog;
// customers book seats.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
)

// User is an account that can log in and own orders. Passwords are stored
// bcrypt-hashed. Removing a user cascade-deletes their orders at the
// storage layer.
type User struct {
	ID       uint64 // users.id
	UUID     string // users.uuid
	Username string // users.username
	Password string // users.password_hash
	Role     Role   // users.role
}
