// Package catalog turns store rows into the shapes the pages render: shows
// split into past and upcoming, venues grouped by area, and search
// summaries.  Everything here is pure and takes the reference instant as an
// argument so callers control the clock.
package catalog

import (
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

// StartTimeLayout is the format of ShowEntry.StartTime.
const StartTimeLayout = "2006-01-02 15:04:05"

// IsUpcoming reports whether a show starting at start is upcoming relative
// to now.  A show starting exactly at now is upcoming; every other bucket
// decision in the package goes through this predicate.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// FormatStartTime renders t in UTC using StartTimeLayout.
func FormatStartTime(t time.Time) string {
	return t.UTC().Format(StartTimeLayout)
}

// ShowEntry describes one show from the point of view of its owner: the
// counterpart's id, name and image plus the formatted start time.  On a
// venue page the counterpart is the artist and vice versa.
type ShowEntry struct {
	ID        uint64
	Name      string
	ImageLink string
	StartTime string
}

// Schedule is a venue's or artist's shows split around a reference instant.
// Both slices are non-nil so templates can range over them directly.
type Schedule struct {
	Past          []ShowEntry
	Upcoming      []ShowEntry
	PastCount     int
	UpcomingCount int
}

// Classify partitions the shows owned by the venue or artist identified by
// (owner, id) into past and upcoming relative to now.  Listings belonging to
// a different owner are ignored, so an unknown id yields empty buckets.
// Input order is preserved within each bucket.
func Classify(owner model.Kind, id uint64, listings []model.ShowListing, now time.Time) Schedule {
	s := Schedule{Past: []ShowEntry{}, Upcoming: []ShowEntry{}}
	for _, l := range listings {
		var e ShowEntry
		switch owner {
		case model.KindVenue:
			if l.VenueID != id {
				continue
			}
			e = ShowEntry{ID: l.ArtistID, Name: l.ArtistName, ImageLink: l.ArtistImageLink}
		case model.KindArtist:
			if l.ArtistID != id {
				continue
			}
			e = ShowEntry{ID: l.VenueID, Name: l.VenueName, ImageLink: l.VenueImageLink}
		default:
			continue
		}
		e.StartTime = FormatStartTime(l.StartTime)
		if IsUpcoming(l.StartTime, now) {
			s.Upcoming = append(s.Upcoming, e)
		} else {
			s.Past = append(s.Past, e)
		}
	}
	s.PastCount = len(s.Past)
	s.UpcomingCount = len(s.Upcoming)
	return s
}
