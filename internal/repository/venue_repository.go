// Package repository contains data access logic separated from HTTP handlers.
// This file defines the venue repository: CRUD plus the reads that feed
// the area listing, venue search and the venue detail page.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to match sentinel values

	"github.com/iliyamo/fyyur/internal/model"
)

// VenueRepo encapsulates all database queries related to venues.  It
// depends on a sql.DB connection which should be configured elsewhere.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

const venueColumns = `id, name, genres, address, city, state, phone, website,
	facebook_link, image_link, seeking_talent, seeking_description, created_at, updated_at`

// Create inserts a new venue in its own transaction.  On success the
// venue's ID field is populated with the auto-generated value.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	genres, err := encodeGenres(v.Genres)
	if err != nil {
		return err
	}
	const q = `INSERT INTO venues
	           (name, genres, address, city, state, phone, website, facebook_link, image_link, seeking_talent, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q, v.Name, genres, v.Address, v.City, string(v.State),
			v.Phone, v.Website, v.FacebookLink, v.ImageLink, v.SeekingTalent, v.SeekingDescription)
		if err != nil {
			return classify(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		v.ID = uint64(id)
		return nil
	})
}

func scanVenue(s rowScanner) (*model.Venue, error) {
	var (
		v      model.Venue
		genres []byte
		state  string
	)
	if err := s.Scan(&v.ID, &v.Name, &genres, &v.Address, &v.City, &state,
		&v.Phone, &v.Website, &v.FacebookLink, &v.ImageLink, &v.SeekingTalent, &v.SeekingDescription,
		&v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.State = model.State(state)
	var err error
	if v.Genres, err = decodeGenres(genres); err != nil {
		return nil, err
	}
	return &v, nil
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	v, err := scanVenue(r.db.QueryRowContext(ctx, "SELECT "+venueColumns+" FROM venues WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListAll returns every venue ordered by id.
func (r *VenueRepo) ListAll(ctx context.Context) ([]*model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+venueColumns+" FROM venues ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var venues []*model.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

// Update replaces every mutable field of the venue.  The row is locked
// first so a missing venue is reported as ErrVenueNotFound even though
// MySQL reports zero affected rows for an update that changes nothing.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	genres, err := encodeGenres(v.Genres)
	if err != nil {
		return err
	}
	const q = `UPDATE venues
	           SET name = ?, genres = ?, address = ?, city = ?, state = ?, phone = ?, website = ?,
	               facebook_link = ?, image_link = ?, seeking_talent = ?, seeking_description = ?
	           WHERE id = ?`
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := lockRow(ctx, tx, "venues", v.ID, ErrVenueNotFound); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, q, v.Name, genres, v.Address, v.City, string(v.State), v.Phone,
			v.Website, v.FacebookLink, v.ImageLink, v.SeekingTalent, v.SeekingDescription, v.ID)
		return classify(err)
	})
}

// Delete removes a venue.  Deletion is rejected with ErrConflict while any
// show still references the venue; the foreign key is RESTRICT as well so
// a show inserted concurrently cannot slip past the check.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := lockRow(ctx, tx, "venues", id, ErrVenueNotFound); err != nil {
			return err
		}
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE venue_id = ?`, id).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return ErrConflict
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
		return classify(err)
	})
}

// ListAreaRows returns every venue joined with its show start times,
// ordered by venue id.  The area listing groups and counts these rows.
func (r *VenueRepo) ListAreaRows(ctx context.Context) ([]model.ShowTimeRow, error) {
	const q = `SELECT v.id, v.name, v.city, v.state, s.start_time
	           FROM venues v
	           LEFT JOIN shows s ON s.venue_id = v.id
	           ORDER BY v.id, s.start_time`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	return scanShowTimeRows(rows)
}

// SearchRows returns the venues whose name contains term (case-insensitive)
// joined with their show start times.
func (r *VenueRepo) SearchRows(ctx context.Context, term string) ([]model.ShowTimeRow, error) {
	return searchRows(ctx, r.db, model.KindVenue, term)
}

// ShowsForVenue lists the shows booked at a venue with their artists.  An
// unknown venue id yields an empty list.
func (r *VenueRepo) ShowsForVenue(ctx context.Context, id uint64) ([]model.ShowListing, error) {
	return queryListings(ctx, r.db, "s.venue_id = ?", id)
}

// lockRow selects the row FOR UPDATE and maps a missing row to notFound.
func lockRow(ctx context.Context, tx *sql.Tx, table string, id uint64, notFound error) error {
	var got uint64
	err := tx.QueryRowContext(ctx, "SELECT id FROM "+table+" WHERE id = ? FOR UPDATE", id).Scan(&got)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return err
}
