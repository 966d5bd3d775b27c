//go:build integration

package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mysql"

	"github.com/iliyamo/fyyur/internal/catalog"
	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/repository"
)

// setupDB starts a MySQL container and applies the schema.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	c, err := mysql.Run(ctx, "mysql:8.0.36",
		mysql.WithDatabase("fyyur"),
		mysql.WithUsername("fyyur"),
		mysql.WithPassword("fyyur"),
	)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(c); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})
	require.NoError(t, err)

	dsn, err := c.ConnectionString(ctx, "parseTime=true", "loc=UTC")
	require.NoError(t, err)
	db, err := database.OpenDSN(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(ctx, db))
	return db
}

func TestRepositoriesAgainstMySQL(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)
	now := time.Now().UTC().Truncate(time.Second)

	hall := &model.Venue{
		Name: "Test Hall", City: "Springfield", State: "IL", Address: "1 Main St",
		Phone: "217-555-0100", Genres: []model.Genre{model.GenreJazz, model.GenreBlues},
		FacebookLink: "https://facebook.com/testhall",
	}
	require.NoError(t, venues.Create(ctx, hall))
	require.NotZero(t, hall.ID)

	got, err := venues.GetByID(ctx, hall.ID)
	require.NoError(t, err)
	assert.Equal(t, hall.Genres, got.Genres)
	assert.Equal(t, model.State("IL"), got.State)

	listings, err := venues.ShowsForVenue(ctx, hall.ID)
	require.NoError(t, err)
	s := catalog.Classify(model.KindVenue, hall.ID, listings, now)
	assert.Zero(t, s.PastCount)
	assert.Zero(t, s.UpcomingCount)

	band := &model.Artist{
		Name: "Guns N Petals", City: "San Francisco", State: "CA", Phone: "326-123-5000",
		Genres: []model.Genre{model.GenreRocknRoll}, SeekingVenue: true,
	}
	require.NoError(t, artists.Create(ctx, band))

	require.NoError(t, shows.Create(ctx, &model.Show{ArtistID: band.ID, VenueID: hall.ID, StartTime: now.Add(time.Hour)}))
	require.NoError(t, shows.Create(ctx, &model.Show{ArtistID: band.ID, VenueID: hall.ID, StartTime: now.Add(-time.Hour)}))

	t.Run("schedule", func(t *testing.T) {
		listings, err := venues.ShowsForVenue(ctx, hall.ID)
		require.NoError(t, err)
		s := catalog.Classify(model.KindVenue, hall.ID, listings, now)
		assert.Equal(t, 1, s.PastCount)
		assert.Equal(t, 1, s.UpcomingCount)
		assert.Equal(t, "Guns N Petals", s.Upcoming[0].Name)

		listings, err = artists.ShowsForArtist(ctx, band.ID)
		require.NoError(t, err)
		s = catalog.Classify(model.KindArtist, band.ID, listings, now)
		assert.Equal(t, "Test Hall", s.Past[0].Name)
	})

	t.Run("areas", func(t *testing.T) {
		rows, err := venues.ListAreaRows(ctx)
		require.NoError(t, err)
		areas := catalog.GroupByArea(rows, now)
		require.Len(t, areas, 1)
		assert.Equal(t, []catalog.Summary{{ID: hall.ID, Name: "Test Hall", NumUpcomingShows: 1}}, areas[0].Venues)
	})

	t.Run("search", func(t *testing.T) {
		rows, err := artists.SearchRows(ctx, "PETALS")
		require.NoError(t, err)
		res := catalog.Summarize(rows, now)
		assert.Equal(t, 1, res.Count)
		assert.Equal(t, 1, res.Data[0].NumUpcomingShows)

		rows, err = venues.SearchRows(ctx, "100%")
		require.NoError(t, err)
		assert.Zero(t, catalog.Summarize(rows, now).Count)
	})

	t.Run("invalid reference", func(t *testing.T) {
		err := shows.Create(ctx, &model.Show{ArtistID: 9999, VenueID: hall.ID, StartTime: now})
		assert.ErrorIs(t, err, repository.ErrInvalidReference)
	})

	t.Run("identical update", func(t *testing.T) {
		require.NoError(t, venues.Update(ctx, hall))
		assert.ErrorIs(t, venues.Update(ctx, &model.Venue{ID: 9999, Name: "x"}), repository.ErrVenueNotFound)
	})

	t.Run("delete with shows", func(t *testing.T) {
		assert.ErrorIs(t, venues.Delete(ctx, hall.ID), repository.ErrConflict)
		assert.ErrorIs(t, artists.Delete(ctx, band.ID), repository.ErrConflict)
		_, err := venues.GetByID(ctx, hall.ID)
		assert.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		empty := &model.Venue{Name: "Empty Room", City: "Austin", State: "TX"}
		require.NoError(t, venues.Create(ctx, empty))
		require.NoError(t, venues.Delete(ctx, empty.ID))
		_, err := venues.GetByID(ctx, empty.ID)
		assert.ErrorIs(t, err, repository.ErrVenueNotFound)
		assert.ErrorIs(t, venues.Delete(ctx, empty.ID), repository.ErrVenueNotFound)
	})
}
