package model

import "time"

// Venue is a place that hosts shows.  This struct corresponds to a row in
// the `venues` table.  Genres are stored as a JSON array.
type Venue struct {
	ID                 uint64    // venues.id
	Name               string    // venues.name
	Genres             []Genre   // venues.genres (JSON)
	Address            string    // venues.address
	City               string    // venues.city
	State              State     // venues.state
	Phone              string    // venues.phone
	Website            string    // venues.website
	FacebookLink       string    // venues.facebook_link
	ImageLink          string    // venues.image_link
	SeekingTalent      bool      // venues.seeking_talent
	SeekingDescription string    // venues.seeking_description
	CreatedAt          time.Time // venues.created_at
	UpdatedAt          time.Time // venues.updated_at
}

// Kind selects which entity table a search or listing runs against.
type Kind int

const (
	KindVenue Kind = iota
	KindArtist
)

func (k Kind) String() string {
	if k == KindArtist {
		return "artist"
	}
	return "venue"
}
