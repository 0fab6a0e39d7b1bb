package model

// Movie is a film shown in zero or more rooms. Titles are stored trimmed
// and upper-cased and are unique across the catalog.
type Movie struct {
	ID    uint64 // movies.id
	UUID  string // movies.uuid
	Title string // movies.title
}
