// Package repository contains data access logic for Show domain operations.
// Shows are only ever created and listed; they are not edited or deleted
// through the application.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction

	"github.com/iliyamo/fyyur/internal/model"
)

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the
// struct.  A missing artist or venue surfaces as ErrInvalidReference via
// the foreign key constraints.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (artist_id, venue_id, start_time) VALUES (?, ?, ?)`
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q, s.ArtistID, s.VenueID, s.StartTime.UTC())
		if err != nil {
			return classify(err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		s.ID = uint64(id)
		return nil
	})
}

// ListAll returns every show with venue and artist details, ordered by
// start time.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.ShowListing, error) {
	return queryListings(ctx, r.db, "")
}
