package model

import "time"

// Artist is a performer.  This struct corresponds to a row in the
// `artists` table.
type Artist struct {
	ID                 uint64    // artists.id
	Name               string    // artists.name
	Genres             []Genre   // artists.genres (JSON)
	City               string    // artists.city
	State              State     // artists.state
	Phone              string    // artists.phone
	Website            string    // artists.website
	FacebookLink       string    // artists.facebook_link
	ImageLink          string    // artists.image_link
	SeekingVenue       bool      // artists.seeking_venue
	SeekingDescription string    // artists.seeking_description
	CreatedAt          time.Time // artists.created_at
	UpdatedAt          time.Time // artists.updated_at
}
