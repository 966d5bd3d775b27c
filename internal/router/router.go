package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iliyamo/fyyur/internal/handler" // import the handlers that implement each page
)

// RegisterRoutes registers the operational endpoints: a health check for
// load balancers and the Prometheus scrape endpoint.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterPages registers the HTML pages.  Forms are served by GET and
// submitted by POST on the same path.  Delete accepts GET and POST so it
// works from a plain link or a form, and DELETE for scripted clients.
func RegisterPages(e *echo.Echo, h *handler.Handler) {
	e.GET("/", h.Home)

	v := e.Group("/venues")
	v.GET("", h.ListVenues)
	v.POST("/search", h.SearchVenues)
	v.GET("/create", h.NewVenueForm)
	v.POST("/create", h.CreateVenue)
	v.GET("/:id", h.ShowVenue)
	v.GET("/:id/edit", h.EditVenueForm)
	v.POST("/:id/edit", h.UpdateVenue)
	v.Match(deleteMethods, "/:id/delete", h.DeleteVenue)

	a := e.Group("/artists")
	a.GET("", h.ListArtists)
	a.POST("/search", h.SearchArtists)
	a.GET("/create", h.NewArtistForm)
	a.POST("/create", h.CreateArtist)
	a.GET("/:id", h.ShowArtist)
	a.GET("/:id/edit", h.EditArtistForm)
	a.POST("/:id/edit", h.UpdateArtist)
	a.Match(deleteMethods, "/:id/delete", h.DeleteArtist)

	s := e.Group("/shows")
	s.GET("", h.ListShows)
	s.GET("/create", h.NewShowForm)
	s.POST("/create", h.CreateShow)
}

var deleteMethods = []string{echo.GET, echo.POST, echo.DELETE}
