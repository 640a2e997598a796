package handlers_test

import (
	"net/http"
	"testing"

	"caregiver-shifts-backend/internal/api/handlers"
	"caregiver-shifts-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestHealthWithoutStore(t *testing.T) {
	s := testutils.SetupHTTPTest()
	h := handlers.NewHealthHandler(nil)
	s.Router.GET("/health", h.Health)
	s.Router.GET("/health/ready", h.Ready)
	s.Router.GET("/health/live", h.Live)

	var health handlers.HealthResponse
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &health)
	assert.Equal(t, "unhealthy", health.Status)
	assert.Equal(t, "error: not configured", health.Services["database"])
	assert.Equal(t, handlers.Version, health.Version)

	var ready map[string]interface{}
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &ready)
	assert.Equal(t, false, ready["ready"])

	var live map[string]interface{}
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &live)
	assert.Equal(t, true, live["alive"])
}
