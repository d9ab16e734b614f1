package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"subtrack/internal/infrastructure/ratelimit"
	"subtrack/internal/shared/constants"
	"subtrack/internal/shared/logger"
	"subtrack/internal/shared/utils"
)

// RateLimit guards an endpoint with the given limiter, keyed by user ID
// when authenticated and client IP otherwise.
func RateLimit(limiter ratelimit.Limiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if userID := c.GetUint(constants.ContextKeyUserID); userID != 0 {
			key = fmt.Sprintf("user:%d", userID)
		}

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// A broken limiter backend must not take the endpoint down
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
