package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// CORS opens the API to any origin for GET and OPTIONS. The headers are set on
// every response, including requests without an Origin header, and preflight
// requests are answered with 200 and an empty body.
func CORS() gin.HandlerFunc {
	preflight := cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:              []string{"Content-Type"},
		OptionsResponseStatusCode: http.StatusOK,
	})

	return func(c *gin.Context) {
		setCORSHeaders(c.Writer.Header())

		writer := c.Writer
		c.Writer = &corsWriter{ResponseWriter: writer}
		preflight(c)
		c.Writer = writer

		if c.IsAborted() {
			return
		}
		c.Next()
	}
}

func setCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", corsAllowOrigin)
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
}

// corsWriter restores the API's header values over the comma-joined lists
// gin-contrib writes on preflight, right before the status goes out
type corsWriter struct {
	gin.ResponseWriter
}

func (w *corsWriter) WriteHeader(code int) {
	setCORSHeaders(w.Header())
	w.ResponseWriter.WriteHeader(code)
}

func (w *corsWriter) WriteHeaderNow() {
	setCORSHeaders(w.Header())
	w.ResponseWriter.WriteHeaderNow()
}
