// Package handler implements the HTML endpoints.  Handlers read and write
// through the store interfaces below, shape data with the catalog package
// and render templates from the view package.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/flash"
	"github.com/iliyamo/fyyur/internal/logging"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/service"
	"github.com/iliyamo/fyyur/internal/view"
)

// VenueStore is implemented by repository.VenueRepo.
type VenueStore interface {
	Create(ctx context.Context, v *model.Venue) error
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
	Update(ctx context.Context, v *model.Venue) error
	Delete(ctx context.Context, id uint64) error
	ListAreaRows(ctx context.Context) ([]model.ShowTimeRow, error)
	SearchRows(ctx context.Context, term string) ([]model.ShowTimeRow, error)
	ShowsForVenue(ctx context.Context, id uint64) ([]model.ShowListing, error)
}

// ArtistStore is implemented by repository.ArtistRepo.
type ArtistStore interface {
	Create(ctx context.Context, a *model.Artist) error
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
	Update(ctx context.Context, a *model.Artist) error
	Delete(ctx context.Context, id uint64) error
	ListAll(ctx context.Context) ([]*model.Artist, error)
	SearchRows(ctx context.Context, term string) ([]model.ShowTimeRow, error)
	ShowsForArtist(ctx context.Context, id uint64) ([]model.ShowListing, error)
}

// ShowStore is implemented by repository.ShowRepo.
type ShowStore interface {
	Create(ctx context.Context, s *model.Show) error
	ListAll(ctx context.Context) ([]model.ShowListing, error)
}

// Handler aggregates the dependencies every endpoint needs.  It is built
// once in main and shared by all requests.
type Handler struct {
	Venues  VenueStore
	Artists ArtistStore
	Shows   ShowStore
	Flash   flash.Store
	Events  service.EventPublisher
	Now     func() time.Time // clock used to split past and upcoming shows
	Pinger  interface{ PingContext(context.Context) error }
}

// New returns a Handler with a UTC wall clock.  A nil publisher drops events.
func New(v VenueStore, a ArtistStore, s ShowStore, fs flash.Store, ev service.EventPublisher) *Handler {
	if ev == nil {
		ev = service.Noop{}
	}
	return &Handler{
		Venues:  v,
		Artists: a,
		Shows:   s,
		Flash:   fs,
		Events:  ev,
		Now:     func() time.Time { return time.Now().UTC() },
	}
}

// render pops pending flashes and executes the named template.
func (h *Handler) render(c echo.Context, code int, name, title string, data any) error {
	msgs, err := h.Flash.Pop(c)
	if err != nil {
		logging.Warn().Err(err).Msg("flash pop failed")
	}
	return c.Render(code, name, view.Page{Title: title, Flashes: msgs, Data: data})
}

// addFlash queues m; a failing store only costs the notice.
func (h *Handler) addFlash(c echo.Context, m flash.Message) {
	if err := h.Flash.Add(c, m); err != nil {
		logging.Warn().Err(err).Msg("flash add failed")
	}
}

// publish sends ev without letting a slow broker hold the response.
func (h *Handler) publish(c echo.Context, ev queue.ActivityEvent) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	ev.OccurredAt = h.Now().UTC().Format(time.RFC3339)
	_ = h.Events.Publish(ctx, ev) // failures are logged by the publisher
}

// parseID reads the :id path parameter.  Anything that is not a positive
// integer is reported as not found.
func parseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Not Found")
	}
	return id, nil
}

// Home renders the landing page.
func (h *Handler) Home(c echo.Context) error {
	return h.render(c, http.StatusOK, "pages/home", "", nil)
}
