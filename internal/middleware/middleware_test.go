package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/logging"
)

func TestMetricsLabelsByRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/venues/:id", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusConflict, "no") })

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/venues/:id", "200"))
	for _, path := range []string{"/venues/1", "/venues/2"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/venues/:id", "200")))

	conflicts := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/boom", "409"))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, conflicts+1, testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/boom", "409")))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	defer logging.SetLogger(prev)

	e := echo.New()
	e.Use(RequestLogger())
	e.GET("/artists/:id", func(c echo.Context) error { return c.NoContent(http.StatusNotFound) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artists/9", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "request", line["message"])
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "/artists/:id", line["route"])
	assert.Equal(t, "/artists/9", line["uri"])
	assert.EqualValues(t, 404, line["status"])
}
