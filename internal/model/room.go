package model

// Room is a screening room with a fixed seat grid. A room optionally
// references the movie it is currently showing; when the movie is removed,
// the reference nulls out at the storage layer.
type Room struct {
	ID        uint64  // rooms.id
	UUID      string  // rooms.uuid
	Number    int     // rooms.number
	Rows      int     // rooms.seat_rows
	Cols      int     // rooms.seat_cols
	MovieUUID *string // rooms.movie_uuid (nullable)
}
