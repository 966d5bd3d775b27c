// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrConflict signals that an operation cannot proceed due to
// existing dependent records (deleting a venue that still has shows),
// while ErrInvalidReference means a show points at a missing artist or
// venue.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrConflict is returned when a delete cannot be performed because
// dependent shows exist. Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrInvalidReference is returned when a show references an artist or
// venue that does not exist.
var ErrInvalidReference = errors.New("invalid reference")

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// MySQL server error numbers for foreign key violations.
const (
	errRowIsReferenced = 1451 // delete/update of a parent row with children
	errNoReferencedRow = 1452 // insert/update of a child row with a missing parent
)

// classify maps driver errors onto the sentinels above.  Errors it does not
// recognise are returned unchanged.
func classify(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case errRowIsReferenced:
			return ErrConflict
		case errNoReferencedRow:
			return ErrInvalidReference
		}
	}
	return err
}
