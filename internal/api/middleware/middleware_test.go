package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"sheet-music-backend/internal/api/middleware"
	"sheet-music-backend/internal/config"
	"sheet-music-backend/internal/logger"
	"sheet-music-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(middleware.RequestID())
	h.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.ContextKeyRequestID))
	})

	t.Run("generates an id", func(t *testing.T) {
		recorder := h.MakeRequest(http.MethodGet, "/ping", nil)

		id := recorder.Header().Get(middleware.RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, recorder.Body.String())
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		recorder := h.MakeRequestWithHeaders(http.MethodGet, "/ping", nil, map[string]string{middleware.RequestIDHeader: "abc-123"})

		assert.Equal(t, "abc-123", recorder.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger.Setup("error", &buf)
	t.Cleanup(func() { logger.Setup("info", nil) })

	h := testutils.SetupHTTPTest()
	h.Router.Use(middleware.RequestID(), middleware.Recovery())
	h.Router.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	recorder := h.MakeRequest(http.MethodGet, "/boom", nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Internal server error")
	assert.Contains(t, buf.String(), "kaboom")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.Setup("info", &buf)
	t.Cleanup(func() { logger.Setup("info", nil) })

	h := testutils.SetupHTTPTest()
	h.Router.Use(middleware.RequestID(), middleware.Logger())
	h.Router.GET("/groups", func(c *gin.Context) {
		c.Set(logger.ContextKeyEmail, "ana@example.com")
		c.Status(http.StatusNotFound)
	})

	h.MakeRequest(http.MethodGet, "/groups", nil)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "request rejected", line["msg"])
	assert.Equal(t, float64(http.StatusNotFound), line["status"])
	assert.Equal(t, "/groups", line["path"])
	assert.Equal(t, "ana@example.com", line["user"])
	assert.NotEmpty(t, line["request_id"])
}

func TestCORS(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(middleware.CORS(&config.Config{AllowedOrigins: []string{"http://localhost:3000"}}))
	h.Router.GET("/groups", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		recorder := h.MakeRequestWithHeaders(http.MethodGet, "/groups", nil, map[string]string{"Origin": "http://localhost:3000"})

		assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		recorder := h.MakeRequestWithHeaders(http.MethodGet, "/groups", nil, map[string]string{"Origin": "http://evil.example.com"})

		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		recorder := h.MakeRequestWithHeaders(http.MethodOptions, "/groups", nil, map[string]string{"Origin": "http://localhost:3000"})

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
	})
}

func TestMetrics(t *testing.T) {
	metrics := middleware.NewMetrics()
	h := testutils.SetupHTTPTest()
	h.Router.Use(metrics.Middleware())
	h.Router.GET("/groups/:key", func(c *gin.Context) { c.Status(http.StatusOK) })
	h.Router.GET("/metrics", metrics.Handler())

	h.MakeRequest(http.MethodGet, "/groups/1", nil)
	h.MakeRequest(http.MethodGet, "/groups/coro-norte", nil)
	h.MakeRequest(http.MethodGet, "/nowhere", nil)

	expected := `
# HELP sheet_music_http_requests_total HTTP requests by method, route and status code.
# TYPE sheet_music_http_requests_total counter
sheet_music_http_requests_total{method="GET",route="/groups/:key",status="200"} 2
sheet_music_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(metrics.Registry(), strings.NewReader(expected), "sheet_music_http_requests_total"))

	recorder := h.MakeRequest(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "sheet_music_http_request_duration_seconds")
}
