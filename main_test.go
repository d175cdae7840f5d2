package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kendall-kelly/business-dashboard-api/config"
	"github.com/kendall-kelly/business-dashboard-api/middleware"
	"github.com/kendall-kelly/business-dashboard-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// newTestRouter builds the full application router over the seed 42 corpus at fixedNow
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.GoEnv = "test"
	config.SetConfig(cfg)

	corpus := services.NewOrderCorpus(cfg.Seed, services.CorpusOrderCount, fixedClock)
	services.InitDashboardService(corpus, services.WithClock(fixedClock))

	return setupRouter(cfg)
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestHealthCheck verifies the health route is wired
func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code, "Expected status code 200")
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "Response should be valid JSON")
	assert.Len(t, response, 3)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Business Dashboard API is running", response["message"])
	assert.Equal(t, float64(2000), response["orders"])
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodGet, "/api/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestRequestIDOnEveryResponse(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/health", "/api/dashboard", "/api/nope"} {
		w := serve(router, http.MethodGet, path)
		_, err := uuid.Parse(w.Header().Get(middleware.RequestIDHeader))
		assert.NoError(t, err, "%s should carry a request id", path)
	}
}

func TestPanicBecomesInternalServerError(t *testing.T) {
	router := newTestRouter(t)
	router.GET("/api/boom", func(c *gin.Context) {
		panic("corpus exploded")
	})

	w := serve(router, http.MethodGet, "/api/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestExportsUnavailableWithoutBucket(t *testing.T) {
	router := newTestRouter(t)
	services.SetS3Service(nil)

	w := serve(router, http.MethodPost, "/api/orders/exports")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
