package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"propflow/internal/infrastructure/ratelimit"
	"propflow/internal/shared/constants"
	"propflow/internal/shared/logger"
	"propflow/internal/shared/utils"
)

type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

// NewRateLimitMiddleware builds the limiter middleware. A nil limiter
// disables limiting entirely (redis not configured).
func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		config:  config,
		logger:  logger,
	}
}

// Limit enforces the sliding window per authenticated user, falling back to
// client IP for unauthenticated requests. Limiter failures let the request
// through rather than blocking all traffic.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := c.ClientIP()
		if userID, exists := c.Get(constants.ContextKeyUserID); exists {
			key = fmt.Sprintf("user:%v", userID)
		}

		allowed, err := m.limiter.Allow(key, m.config)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable", "error", err)
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
