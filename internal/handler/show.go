package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/catalog"
	"github.com/iliyamo/fyyur/internal/flash"
	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/logging"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

// ShowFormPage is the data of forms/new_show.
type ShowFormPage struct {
	Form   *form.ShowForm
	Errors form.Errors
}

// ListShows renders every show with its venue and artist.
func (h *Handler) ListShows(c echo.Context) error {
	shows, err := h.Shows.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "pages/shows", "Shows", shows)
}

// NewShowForm renders the show form with the start time set to now.
func (h *Handler) NewShowForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "forms/new_show", "New Show", ShowFormPage{Form: form.NewShowForm(h.Now())})
}

// CreateShow lists a show.  Ids that do not resolve to an artist and a
// venue re-render the form with 422.
func (h *Handler) CreateShow(c echo.Context) error {
	var f form.ShowForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	f.Normalize()
	page := ShowFormPage{Form: &f}
	if page.Errors = f.Validate(); page.Errors != nil {
		h.addFlash(c, flash.Error("Please correct the errors below."))
		return h.render(c, http.StatusUnprocessableEntity, "forms/new_show", "New Show", page)
	}
	s, err := f.Show()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.Shows.Create(c.Request().Context(), s)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrInvalidReference):
		page.Errors = form.Errors{
			"artist_id": "artist_id must be the id of a listed artist",
			"venue_id":  "venue_id must be the id of a listed venue",
		}
		h.addFlash(c, flash.Error("An error occurred. Show could not be listed."))
		return h.render(c, http.StatusUnprocessableEntity, "forms/new_show", "New Show", page)
	default:
		logging.Error().Err(err).Uint64("artist_id", s.ArtistID).Uint64("venue_id", s.VenueID).Msg("create show failed")
		h.addFlash(c, flash.Error("An error occurred. Show could not be listed."))
		return h.render(c, http.StatusInternalServerError, "pages/home", "", nil)
	}

	h.publish(c, queue.ActivityEvent{
		Type:      queue.ShowListed,
		Entity:    "show",
		EntityID:  s.ID,
		VenueID:   s.VenueID,
		ArtistID:  s.ArtistID,
		StartTime: catalog.FormatStartTime(s.StartTime),
	})
	h.addFlash(c, flash.Info("Show was successfully listed!"))
	return h.render(c, http.StatusOK, "pages/home", "", nil)
}
