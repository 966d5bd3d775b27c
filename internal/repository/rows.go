package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/iliyamo/fyyur/internal/model"
)

// encodeGenres renders genres for the JSON column.  A nil slice is stored
// as an empty array so the NOT NULL column never sees SQL NULL.
func encodeGenres(gs []model.Genre) (string, error) {
	ss := model.GenreStrings(gs)
	b, err := json.Marshal(ss)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeGenres is the inverse of encodeGenres.  Unknown identifiers are
// kept as-is; the form layer is what keeps them out of the table.
func decodeGenres(raw []byte) ([]model.Genre, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ss []string
	if err := json.Unmarshal(raw, &ss); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}
	gs := make([]model.Genre, len(ss))
	for i, s := range ss {
		gs[i] = model.Genre(s)
	}
	return gs, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into a lower-cased LIKE pattern that
// matches the term anywhere.  Wildcards in the term match literally; an
// empty term matches every name.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// scanShowTimeRows reads (id, name, city, state, start_time) rows produced
// by an entity LEFT JOIN shows query.
func scanShowTimeRows(rows *sql.Rows) ([]model.ShowTimeRow, error) {
	defer rows.Close()
	var out []model.ShowTimeRow
	for rows.Next() {
		var (
			r     model.ShowTimeRow
			state string
			start sql.NullTime
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.City, &state, &start); err != nil {
			return nil, err
		}
		r.State = model.State(state)
		if start.Valid {
			t := start.Time.UTC()
			r.StartTime = &t
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// searchRows returns one row per (entity, show) for entities of the given
// kind whose name contains term, ordered by entity id.  Entities without
// shows yield a single row with a nil start time.
func searchRows(ctx context.Context, q querier, kind model.Kind, term string) ([]model.ShowTimeRow, error) {
	query := `SELECT v.id, v.name, v.city, v.state, s.start_time
	          FROM venues v
	          LEFT JOIN shows s ON s.venue_id = v.id
	          WHERE LOWER(v.name) LIKE ?
	          ORDER BY v.id, s.start_time`
	if kind == model.KindArtist {
		query = `SELECT a.id, a.name, a.city, a.state, s.start_time
		         FROM artists a
		         LEFT JOIN shows s ON s.artist_id = a.id
		         WHERE LOWER(a.name) LIKE ?
		         ORDER BY a.id, s.start_time`
	}
	rows, err := q.QueryContext(ctx, query, containsPattern(term))
	if err != nil {
		return nil, err
	}
	return scanShowTimeRows(rows)
}

const listingSelect = `SELECT s.id, s.venue_id, v.name, v.image_link,
	       s.artist_id, a.name, a.image_link, s.start_time
	FROM shows s
	JOIN venues v  ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

// queryListings runs listingSelect with an optional WHERE clause and
// returns the shows ordered by start time, then id.
func queryListings(ctx context.Context, q querier, where string, args ...any) ([]model.ShowListing, error) {
	query := listingSelect
	if where != "" {
		query += "\n\tWHERE " + where
	}
	query += "\n\tORDER BY s.start_time, s.id"
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.ShowListing{}
	for rows.Next() {
		var l model.ShowListing
		if err := rows.Scan(&l.ShowID, &l.VenueID, &l.VenueName, &l.VenueImageLink,
			&l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, err
		}
		l.StartTime = l.StartTime.UTC()
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
