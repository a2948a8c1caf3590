package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/inlethq/leadgate/internal/telemetry"
)

// RateLimit bounds how fast submissions are accepted across all
// clients. The form is public, so one shared bucket is enough.
func RateLimit(limiter *rate.Limiter, tel *telemetry.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			tel.Metrics.SubmissionsThrottled.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "too many submissions, slow down",
			})
			return
		}
		c.Next()
	}
}
