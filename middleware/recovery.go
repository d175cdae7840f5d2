package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InternalServerErrorBody is the opaque body returned for any internal failure
var InternalServerErrorBody = gin.H{"error": "Internal server error"}

// Recovery converts panics into an opaque 500 and logs the cause
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[%s] panic serving %s %s: %v", GetRequestID(c), c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, InternalServerErrorBody)
	})
}
