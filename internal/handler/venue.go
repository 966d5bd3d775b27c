package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/catalog"
	"github.com/iliyamo/fyyur/internal/flash"
	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/logging"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

// VenuePage is the data of pages/show_venue.
type VenuePage struct {
	Venue    *model.Venue
	Schedule catalog.Schedule
}

// SearchPage is the data of pages/search_venues and pages/search_artists.
type SearchPage struct {
	Term   string
	Result catalog.SearchResult
}

// VenueFormPage is the data of forms/new_venue and forms/edit_venue.  ID
// and Name identify the venue being edited.
type VenueFormPage struct {
	ID     uint64
	Name   string
	Form   *form.VenueForm
	Errors form.Errors
}

// ListVenues renders every venue grouped by city and state.
func (h *Handler) ListVenues(c echo.Context) error {
	rows, err := h.Venues.ListAreaRows(c.Request().Context())
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "pages/venues", "Venues", catalog.GroupByArea(rows, h.Now()))
}

// SearchVenues matches search_term against venue names.
func (h *Handler) SearchVenues(c echo.Context) error {
	term := c.FormValue("search_term")
	rows, err := h.Venues.SearchRows(c.Request().Context(), term)
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "pages/search_venues", "Venues",
		SearchPage{Term: term, Result: catalog.Summarize(rows, h.Now())})
}

// ShowVenue renders a venue with its past and upcoming shows.
func (h *Handler) ShowVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	v, err := h.Venues.GetByID(ctx, id)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Venue not found")
	}
	if err != nil {
		return err
	}
	listings, err := h.Venues.ShowsForVenue(ctx, id)
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "pages/show_venue", v.Name, VenuePage{
		Venue:    v,
		Schedule: catalog.Classify(model.KindVenue, id, listings, h.Now()),
	})
}

// NewVenueForm renders an empty venue form.
func (h *Handler) NewVenueForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "forms/new_venue", "New Venue", VenueFormPage{Form: &form.VenueForm{}})
}

// CreateVenue validates the submission, stores the venue and redirects to
// its page.  An invalid form is re-rendered with 422 and nothing is stored.
func (h *Handler) CreateVenue(c echo.Context) error {
	var f form.VenueForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	f.Normalize()
	page := VenueFormPage{Form: &f}
	if page.Errors = f.Validate(); page.Errors != nil {
		h.addFlash(c, flash.Error("Please correct the errors below."))
		return h.render(c, http.StatusUnprocessableEntity, "forms/new_venue", "New Venue", page)
	}

	v := &model.Venue{}
	f.Apply(v)
	if err := h.Venues.Create(c.Request().Context(), v); err != nil {
		logging.Error().Err(err).Str("venue", v.Name).Msg("create venue failed")
		h.addFlash(c, flash.Error(fmt.Sprintf("An error occurred. Venue %s could not be listed.", v.Name)))
		return h.render(c, http.StatusInternalServerError, "forms/new_venue", "New Venue", page)
	}
	h.publish(c, queue.ActivityEvent{Type: queue.VenueCreated, Entity: "venue", EntityID: v.ID, Name: v.Name})
	h.addFlash(c, flash.Info(fmt.Sprintf("Venue %s was successfully listed!", v.Name)))
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", v.ID))
}

// EditVenueForm renders the edit form prefilled from the stored venue.
func (h *Handler) EditVenueForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	v, err := h.Venues.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Venue not found")
	}
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "forms/edit_venue", "Edit "+v.Name,
		VenueFormPage{ID: id, Name: v.Name, Form: form.FromVenue(v)})
}

// UpdateVenue replaces every field of the venue with the submission.
func (h *Handler) UpdateVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var f form.VenueForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	f.Normalize()
	page := VenueFormPage{ID: id, Name: f.Name, Form: &f}
	if page.Errors = f.Validate(); page.Errors != nil {
		h.addFlash(c, flash.Error("Please correct the errors below."))
		return h.render(c, http.StatusUnprocessableEntity, "forms/edit_venue", "Edit Venue", page)
	}

	v := &model.Venue{ID: id}
	f.Apply(v)
	err = h.Venues.Update(c.Request().Context(), v)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Venue not found")
	}
	if err != nil {
		logging.Error().Err(err).Uint64("venue_id", id).Msg("update venue failed")
		h.addFlash(c, flash.Error(fmt.Sprintf("An error occurred. Venue %s could not be updated.", v.Name)))
		return h.render(c, http.StatusInternalServerError, "forms/edit_venue", "Edit Venue", page)
	}
	h.publish(c, queue.ActivityEvent{Type: queue.VenueUpdated, Entity: "venue", EntityID: id, Name: v.Name})
	h.addFlash(c, flash.Info(fmt.Sprintf("Venue %s was successfully updated!", v.Name)))
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", id))
}

// DeleteVenue removes a venue and renders the home page with the outcome.
// Venues with shows are kept and answered with 409.
func (h *Handler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	err = h.Venues.Delete(c.Request().Context(), id)
	switch {
	case err == nil:
		h.publish(c, queue.ActivityEvent{Type: queue.VenueDeleted, Entity: "venue", EntityID: id})
		h.addFlash(c, flash.Info(fmt.Sprintf("Venue %d was successfully deleted.", id)))
		return h.render(c, http.StatusOK, "pages/home", "", nil)
	case errors.Is(err, repository.ErrConflict):
		h.addFlash(c, flash.Error(fmt.Sprintf("Venue %d has shows booked and could not be deleted.", id)))
		return h.render(c, http.StatusConflict, "pages/home", "", nil)
	case errors.Is(err, repository.ErrVenueNotFound):
		h.addFlash(c, flash.Error(fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id)))
		return h.render(c, http.StatusNotFound, "pages/home", "", nil)
	default:
		logging.Error().Err(err).Uint64("venue_id", id).Msg("delete venue failed")
		h.addFlash(c, flash.Error(fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id)))
		return h.render(c, http.StatusInternalServerError, "pages/home", "", nil)
	}
}
