package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

// startTimeLayouts are tried in order.  Layouts without a zone are read as UTC.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04", // <input type="datetime-local">
	time.RFC3339,
}

// ParseStartTime parses a submitted start time.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised start time %q", s)
}

// ShowForm is the form used to list a new show.
type ShowForm struct {
	ArtistID  string `form:"artist_id" validate:"required,id"`
	VenueID   string `form:"venue_id" validate:"required,id"`
	StartTime string `form:"start_time" validate:"required,showtime"`
}

// NewShowForm returns a form whose start time defaults to now, formatted
// for a datetime-local input.
func NewShowForm(now time.Time) *ShowForm {
	return &ShowForm{StartTime: now.UTC().Format("2006-01-02T15:04")}
}

func (f *ShowForm) Normalize() {
	f.ArtistID = strings.TrimSpace(f.ArtistID)
	f.VenueID = strings.TrimSpace(f.VenueID)
	f.StartTime = strings.TrimSpace(f.StartTime)
}

func (f *ShowForm) Validate() Errors {
	return check(f)
}

// Show converts a validated form into a model.Show.  Whether the artist
// and venue exist is decided by the store.
func (f *ShowForm) Show() (*model.Show, error) {
	artistID, err := strconv.ParseUint(f.ArtistID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("artist_id: %w", err)
	}
	venueID, err := strconv.ParseUint(f.VenueID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("venue_id: %w", err)
	}
	start, err := ParseStartTime(f.StartTime)
	if err != nil {
		return nil, err
	}
	return &model.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}, nil
}
