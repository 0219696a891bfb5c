package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travelease/callcenter/internal/infrastructure/ratelimit"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/utils"
)

const msgRateLimited = "Too many requests, please try again later"

// RateLimit enforces limiter per client IP under the given scope. Limiter
// failures let the request through.
func RateLimit(limiter ratelimit.Limiter, scope string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Infow("rate limit exceeded", "key", key, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusTooManyRequests, msgRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
