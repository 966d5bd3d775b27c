package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/model"
)

var now = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func listing(showID, venueID, artistID uint64, d time.Duration) model.ShowListing {
	return model.ShowListing{
		ShowID:          showID,
		VenueID:         venueID,
		VenueName:       "venue",
		VenueImageLink:  "venue.png",
		ArtistID:        artistID,
		ArtistName:      "artist",
		ArtistImageLink: "artist.png",
		StartTime:       now.Add(d),
	}
}

func TestIsUpcoming(t *testing.T) {
	assert.True(t, IsUpcoming(now.Add(time.Second), now))
	assert.True(t, IsUpcoming(now, now), "equal to now counts as upcoming")
	assert.False(t, IsUpcoming(now.Add(-time.Nanosecond), now))
}

func TestFormatStartTime(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	ts := time.Date(2019, 5, 21, 16, 30, 0, 0, est)
	assert.Equal(t, "2019-05-21 21:30:00", FormatStartTime(ts))
}

func TestClassifyVenue(t *testing.T) {
	ls := []model.ShowListing{
		listing(1, 1, 10, -time.Hour),
		listing(2, 1, 11, time.Hour),
		listing(3, 1, 12, 0),
		listing(4, 2, 10, time.Hour), // another venue
	}
	s := Classify(model.KindVenue, 1, ls, now)

	assert.Equal(t, 1, s.PastCount)
	assert.Equal(t, 2, s.UpcomingCount)
	require.Len(t, s.Past, 1)
	assert.Equal(t, ShowEntry{ID: 10, Name: "artist", ImageLink: "artist.png", StartTime: "2026-03-14 17:00:00"}, s.Past[0])
	assert.Equal(t, uint64(11), s.Upcoming[0].ID)
	assert.Equal(t, uint64(12), s.Upcoming[1].ID)
}

func TestClassifyArtistUsesVenueSide(t *testing.T) {
	ls := []model.ShowListing{listing(1, 3, 7, time.Hour), listing(2, 4, 8, time.Hour)}
	s := Classify(model.KindArtist, 7, ls, now)

	require.Len(t, s.Upcoming, 1)
	assert.Equal(t, uint64(3), s.Upcoming[0].ID)
	assert.Equal(t, "venue.png", s.Upcoming[0].ImageLink)
	assert.Empty(t, s.Past)
}

func TestClassifyUnknownIDIsEmpty(t *testing.T) {
	s := Classify(model.KindVenue, 99, []model.ShowListing{listing(1, 1, 1, time.Hour)}, now)
	assert.NotNil(t, s.Past)
	assert.NotNil(t, s.Upcoming)
	assert.Zero(t, s.PastCount)
	assert.Zero(t, s.UpcomingCount)
}

func TestClassifyEveryShowInExactlyOneBucket(t *testing.T) {
	var ls []model.ShowListing
	for i := -50; i <= 50; i++ {
		ls = append(ls, listing(uint64(i+100), 1, 1, time.Duration(i)*time.Minute))
	}
	s := Classify(model.KindVenue, 1, ls, now)
	assert.Equal(t, len(ls), s.PastCount+s.UpcomingCount)
	assert.Equal(t, 50, s.PastCount)
	assert.Equal(t, 51, s.UpcomingCount)
}

func TestGroupByArea(t *testing.T) {
	rows := []model.ShowTimeRow{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", StartTime: at(time.Hour)},
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", StartTime: at(-time.Hour)},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", StartTime: at(2 * time.Hour)},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", StartTime: at(0)},
	}
	areas := GroupByArea(rows, now)

	require.Len(t, areas, 2)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, model.State("CA"), areas[0].State)
	assert.Equal(t, []Summary{
		{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 1},
		{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 2},
	}, areas[0].Venues)
	assert.Equal(t, []Summary{{ID: 2, Name: "The Dueling Pianos Bar"}}, areas[1].Venues)
}

func TestGroupByAreaPartitionsVenues(t *testing.T) {
	cities := []struct {
		city  string
		state model.State
	}{{"Austin", "TX"}, {"Portland", "OR"}, {"Portland", "ME"}}
	var rows []model.ShowTimeRow
	for id := uint64(1); id <= 30; id++ {
		c := cities[id%3]
		rows = append(rows, model.ShowTimeRow{ID: id, Name: "v", City: c.city, State: c.state})
	}
	areas := GroupByArea(rows, now)

	require.Len(t, areas, 3, "same city in different states is a different area")
	seen := map[uint64]int{}
	for _, a := range areas {
		for _, v := range a.Venues {
			seen[v.ID]++
			c := cities[v.ID%3]
			assert.Equal(t, c.city, a.City)
			assert.Equal(t, c.state, a.State)
		}
	}
	assert.Len(t, seen, 30)
	for id, n := range seen {
		assert.Equal(t, 1, n, "venue %d", id)
	}
}

func TestGroupByAreaEmpty(t *testing.T) {
	areas := GroupByArea(nil, now)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestSummarize(t *testing.T) {
	rows := []model.ShowTimeRow{
		{ID: 4, Name: "The Rock Room", StartTime: at(time.Hour)},
		{ID: 4, Name: "The Rock Room", StartTime: at(3 * time.Hour)},
		{ID: 9, Name: "Rockefeller Hall"},
	}
	res := Summarize(rows, now)

	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []Summary{
		{ID: 4, Name: "The Rock Room", NumUpcomingShows: 2},
		{ID: 9, Name: "Rockefeller Hall"},
	}, res.Data)
}

func TestSummarizeNoMatch(t *testing.T) {
	res := Summarize(nil, now)
	assert.Zero(t, res.Count)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}
