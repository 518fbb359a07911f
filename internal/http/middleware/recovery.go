package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery converts panics to the generic 500 envelope. Internals are logged
// but never leave the process.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				requestID, _ := c.Get("request_id")
				reqID, _ := requestID.(string)
				logger.Error().
					Interface("panic", r).
					Str("request_id", reqID).
					Str("path", c.Request.URL.Path).
					Msg("handler panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": gin.H{
					"message":    "internal server error",
					"code":       "INTERNAL_ERROR",
					"statusCode": http.StatusInternalServerError,
					"requestId":  reqID,
				}})
			}
		}()
		c.Next()
	}
}
