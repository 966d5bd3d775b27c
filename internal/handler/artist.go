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

// ArtistPage is the data of pages/show_artist.
type ArtistPage struct {
	Artist   *model.Artist
	Schedule catalog.Schedule
}

// ArtistFormPage is the data of forms/new_artist and forms/edit_artist.
type ArtistFormPage struct {
	ID     uint64
	Name   string
	Form   *form.ArtistForm
	Errors form.Errors
}

func (h *Handler) ListArtists(c echo.Context) error {
	artists, err := h.Artists.ListAll(c.Request().Context())
	if err != nil {
		logging.Error().Err(err).Msg("list artists failed")
		h.addFlash(c, flash.Error("An error occurred listing Artists"))
		artists = nil
	}
	return h.render(c, http.StatusOK, "pages/artists", "Artists", artists)
}

func (h *Handler) SearchArtists(c echo.Context) error {
	term := c.FormValue("search_term")
	rows, err := h.Artists.SearchRows(c.Request().Context(), term)
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "pages/search_artists", "Artists",
		SearchPage{Term: term, Result: catalog.Summarize(rows, h.Now())})
}

// ShowArtist renders an artist with the venues of its past and upcoming shows.
func (h *Handler) ShowArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	a, err := h.Artists.GetByID(ctx, id)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Artist not found")
	}
	if err != nil {
		return err
	}
	listings, err := h.Artists.ShowsForArtist(ctx, id)
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "pages/show_artist", a.Name, ArtistPage{
		Artist:   a,
		Schedule: catalog.Classify(model.KindArtist, id, listings, h.Now()),
	})
}

func (h *Handler) NewArtistForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "forms/new_artist", "New Artist", ArtistFormPage{Form: &form.ArtistForm{}})
}

func (h *Handler) CreateArtist(c echo.Context) error {
	var f form.ArtistForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	f.Normalize()
	page := ArtistFormPage{Form: &f}
	if page.Errors = f.Validate(); page.Errors != nil {
		h.addFlash(c, flash.Error("Please correct the errors below."))
		return h.render(c, http.StatusUnprocessableEntity, "forms/new_artist", "New Artist", page)
	}

	a := &model.Artist{}
	f.Apply(a)
	if err := h.Artists.Create(c.Request().Context(), a); err != nil {
		logging.Error().Err(err).Str("artist", a.Name).Msg("create artist failed")
		h.addFlash(c, flash.Error(fmt.Sprintf("An error occurred. Artist %s could not be listed.", a.Name)))
		return h.render(c, http.StatusInternalServerError, "forms/new_artist", "New Artist", page)
	}
	h.publish(c, queue.ActivityEvent{Type: queue.ArtistCreated, Entity: "artist", EntityID: a.ID, Name: a.Name})
	h.addFlash(c, flash.Info(fmt.Sprintf("Artist %s was successfully listed!", a.Name)))
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", a.ID))
}

func (h *Handler) EditArtistForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	a, err := h.Artists.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Artist not found")
	}
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "forms/edit_artist", "Edit "+a.Name,
		ArtistFormPage{ID: id, Name: a.Name, Form: form.FromArtist(a)})
}

func (h *Handler) UpdateArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var f form.ArtistForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	f.Normalize()
	page := ArtistFormPage{ID: id, Name: f.Name, Form: &f}
	if page.Errors = f.Validate(); page.Errors != nil {
		h.addFlash(c, flash.Error("Please correct the errors below."))
		return h.render(c, http.StatusUnprocessableEntity, "forms/edit_artist", "Edit Artist", page)
	}

	a := &model.Artist{ID: id}
	f.Apply(a)
	err = h.Artists.Update(c.Request().Context(), a)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Artist not found")
	}
	if err != nil {
		logging.Error().Err(err).Uint64("artist_id", id).Msg("update artist failed")
		h.addFlash(c, flash.Error(fmt.Sprintf("An error occurred. Artist %s could not be updated.", a.Name)))
		return h.render(c, http.StatusInternalServerError, "forms/edit_artist", "Edit Artist", page)
	}
	h.publish(c, queue.ActivityEvent{Type: queue.ArtistUpdated, Entity: "artist", EntityID: id, Name: a.Name})
	h.addFlash(c, flash.Info(fmt.Sprintf("Artist %s was successfully updated!", a.Name)))
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", id))
}

// DeleteArtist mirrors DeleteVenue.
func (h *Handler) DeleteArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	err = h.Artists.Delete(c.Request().Context(), id)
	switch {
	case err == nil:
		h.publish(c, queue.ActivityEvent{Type: queue.ArtistDeleted, Entity: "artist", EntityID: id})
		h.addFlash(c, flash.Info(fmt.Sprintf("Artist %d was successfully deleted.", id)))
		return h.render(c, http.StatusOK, "pages/home", "", nil)
	case errors.Is(err, repository.ErrConflict):
		h.addFlash(c, flash.Error(fmt.Sprintf("Artist %d has shows booked and could not be deleted.", id)))
		return h.render(c, http.StatusConflict, "pages/home", "", nil)
	case errors.Is(err, repository.ErrArtistNotFound):
		h.addFlash(c, flash.Error(fmt.Sprintf("An error occurred. Artist %d could not be deleted.", id)))
		return h.render(c, http.StatusNotFound, "pages/home", "", nil)
	default:
		logging.Error().Err(err).Uint64("artist_id", id).Msg("delete artist failed")
		h.addFlash(c, flash.Error(fmt.Sprintf("An error occurred. Artist %d could not be deleted.", id)))
		return h.render(c, http.StatusInternalServerError, "pages/home", "", nil)
	}
}
