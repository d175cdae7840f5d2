package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS())
	router.GET("/resource", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.OPTIONS("/resource", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestCORSHeadersWithoutOrigin(t *testing.T) {
	router := corsRouter()

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORSPreflightFromBrowser(t *testing.T) {
	router := corsRouter()

	req := httptest.NewRequest(http.MethodOptions, "/resource", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	// headers as they were when the status was written
	sent := w.Result().Header
	assert.Equal(t, "*", sent.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, []string{"GET, OPTIONS"}, sent.Values("Access-Control-Allow-Methods"))
	assert.Equal(t, []string{"Content-Type"}, sent.Values("Access-Control-Allow-Headers"))
}

func TestCORSSimpleRequestFromBrowser(t *testing.T) {
	router := corsRouter()

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
