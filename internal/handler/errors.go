package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/logging"
	"github.com/iliyamo/fyyur/internal/view"
)

// ErrorPage is the data of errors/error.
type ErrorPage struct {
	Code    int
	Message string
}

// HTTPErrorHandler renders errors/404 and errors/500, and errors/error for
// any other status.  It replaces Echo's JSON error responses.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}
	if code >= http.StatusInternalServerError {
		logging.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	var rerr error
	switch code {
	case http.StatusNotFound:
		rerr = c.Render(code, "errors/404", view.Page{Title: "Not Found", Data: msg})
	case http.StatusInternalServerError:
		rerr = c.Render(code, "errors/500", view.Page{Title: "Server Error"})
	default:
		rerr = c.Render(code, "errors/error", view.Page{Title: http.StatusText(code), Data: ErrorPage{Code: code, Message: msg}})
	}
	if rerr != nil {
		logging.Error().Err(rerr).Msg("render error page failed")
		_ = c.String(code, http.StatusText(code))
	}
}
