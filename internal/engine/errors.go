package engine

import "errors"

// Domain failures. Each is a fixed, non-retryable condition signaled to
// the caller with a stable message; handlers match them with errors.Is and
// map them to HTTP statuses. Access failures (identification and
// authorization) live in internal/security.
var (
	// Ticket creation, in contractual validation order.
	ErrRoomNotFound  = errors.New("room not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrSeatRequired  = errors.New("seat is mandatory")
	ErrSeatOutside   = errors.New("seat is out of boundary")
	ErrSeatReserved  = errors.New("seat already reserved")

	// Room management.
	ErrRoomNumber     = errors.New("room number needs to be > 0")
	ErrRoomNumberUsed = errors.New("room number is already used")
	ErrRoomRows       = errors.New("number of rows needs to be > 0")
	ErrRoomCols       = errors.New("number of columns needs to be > 0")
	ErrMovieNotFound  = errors.New("movie not found")

	// Movie management.
	ErrTitleRequired = errors.New("title is mandatory")
	ErrTitleTooLong  = errors.New("title must be less than 32 characters")
	ErrTitleExists   = errors.New("title already exists")

	// Orders and users.
	ErrUserNotFound     = errors.New("user was not found")
	ErrUsernameRequired = errors.New("username is mandatory")
	ErrUsernameTooLong  = errors.New("username must be less than 16 characters")
	ErrUsernameExists   = errors.New("username is already used")
	ErrPasswordRequired = errors.New("password is mandatory")
	ErrPasswordTooLong  = errors.New("password must be less than 16 characters")
)
