package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/fyyur/internal/model"
)

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

const artistColumns = `id, name, genres, city, state, phone, website,
	facebook_link, image_link, seeking_venue, seeking_description, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtist(s rowScanner) (*model.Artist, error) {
	var (
		a      model.Artist
		genres []byte
		state  string
	)
	if err := s.Scan(&a.ID, &a.Name, &genres, &a.City, &state, &a.Phone, &a.Website,
		&a.FacebookLink, &a.ImageLink, &a.SeekingVenue, &a.SeekingDescription,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.State = model.State(state)
	var err error
	if a.Genres, err = decodeGenres(genres); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new artist and assigns the generated ID.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	genres, err := encodeGenres(a.Genres)
	if err != nil {
		return err
	}
	const q = `INSERT INTO artists
	           (name, genres, city, state, phone, website, facebook_link, image_link, seeking_venue, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q, a.Name, genres, a.City, string(a.State), a.Phone,
			a.Website, a.FacebookLink, a.ImageLink, a.SeekingVenue, a.SeekingDescription)
		if err != nil {
			return classify(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		a.ID = uint64(id)
		return nil
	})
}

// GetByID retrieves an artist by ID or returns ErrArtistNotFound.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	a, err := scanArtist(r.db.QueryRowContext(ctx, "SELECT "+artistColumns+" FROM artists WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListAll returns all artists ordered by id.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]*model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+artistColumns+" FROM artists ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []*model.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every mutable field of the artist.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	genres, err := encodeGenres(a.Genres)
	if err != nil {
		return err
	}
	const q = `UPDATE artists
	           SET name = ?, genres = ?, city = ?, state = ?, phone = ?, website = ?,
	               facebook_link = ?, image_link = ?, seeking_venue = ?, seeking_description = ?
	           WHERE id = ?`
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := lockRow(ctx, tx, "artists", a.ID, ErrArtistNotFound); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, q, a.Name, genres, a.City, string(a.State), a.Phone,
			a.Website, a.FacebookLink, a.ImageLink, a.SeekingVenue, a.SeekingDescription, a.ID)
		return classify(err)
	})
}

// Delete removes an artist, or returns ErrConflict while shows reference it.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := lockRow(ctx, tx, "artists", id, ErrArtistNotFound); err != nil {
			return err
		}
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE artist_id = ?`, id).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return ErrConflict
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
		return classify(err)
	})
}

// SearchRows returns the artists whose name contains term joined with their
// show start times.
func (r *ArtistRepo) SearchRows(ctx context.Context, term string) ([]model.ShowTimeRow, error) {
	return searchRows(ctx, r.db, model.KindArtist, term)
}

// ShowsForArtist lists the shows an artist plays with their venues.
func (r *ArtistRepo) ShowsForArtist(ctx context.Context, id uint64) ([]model.ShowListing, error) {
	return queryListings(ctx, r.db, "s.artist_id = ?", id)
}
