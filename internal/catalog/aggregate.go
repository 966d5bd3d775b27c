package catalog

import (
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

// Summary is the short form of a venue or artist used by the area listing
// and by search results.
type Summary struct {
	ID               uint64
	Name             string
	NumUpcomingShows int
}

// Area is one (city, state) group of venues.
type Area struct {
	City   string
	State  model.State
	Venues []Summary
}

// SearchResult is what a name search returns.
type SearchResult struct {
	Count int
	Data  []Summary
}

type entity struct {
	Summary
	city  string
	state model.State
}

// collapse folds entity/show rows into one entry per entity id, counting
// upcoming shows against that entity's own rows.  Entities keep the order
// in which their id first appears.
func collapse(rows []model.ShowTimeRow, now time.Time) []entity {
	index := make(map[uint64]int)
	var out []entity
	for _, r := range rows {
		i, ok := index[r.ID]
		if !ok {
			i = len(out)
			index[r.ID] = i
			out = append(out, entity{
				Summary: Summary{ID: r.ID, Name: r.Name},
				city:    r.City,
				state:   r.State,
			})
		}
		if r.StartTime != nil && IsUpcoming(*r.StartTime, now) {
			out[i].NumUpcomingShows++
		}
	}
	return out
}

// GroupByArea groups venues by (city, state).  Every venue lands in
// exactly one area keyed by its own city and state.  Areas appear in the
// order their first venue does; venues keep row order within an area.
func GroupByArea(rows []model.ShowTimeRow, now time.Time) []Area {
	type key struct {
		city  string
		state model.State
	}
	index := make(map[key]int)
	areas := []Area{}
	for _, e := range collapse(rows, now) {
		k := key{e.city, e.state}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: e.city, State: e.state})
		}
		areas[i].Venues = append(areas[i].Venues, e.Summary)
	}
	return areas
}

// Summarize builds a search result from the rows of matching entities.
func Summarize(rows []model.ShowTimeRow, now time.Time) SearchResult {
	es := collapse(rows, now)
	res := SearchResult{Count: len(es), Data: make([]Summary, 0, len(es))}
	for _, e := range es {
		res.Data = append(res.Data, e.Summary)
	}
	return res
}
