package model

import "time"

// Show books an artist at a venue at a given time.  Both references must
// resolve; the schema enforces this with foreign keys.
type Show struct {
	ID        uint64    // shows.id
	ArtistID  uint64    // shows.artist_id
	VenueID   uint64    // shows.venue_id
	StartTime time.Time // shows.start_time (UTC)
}

// ShowListing is a show joined with the names and images of both sides.
// Venue pages read the artist fields, artist pages read the venue fields.
type ShowListing struct {
	ShowID          uint64
	VenueID         uint64
	VenueName       string
	VenueImageLink  string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ShowTimeRow is one row of an entity LEFT JOIN shows scan: an entity with
// one of its show start times, or a nil StartTime when it has no shows.
// An entity with n shows contributes n rows.
type ShowTimeRow struct {
	ID        uint64
	Name      string
	City      string
	State     State
	StartTime *time.Time
}
