package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/infrastructure/ratelimit"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

// RateLimitMiddleware limits requests per client IP. Each Limit call names
// a scope so separate route groups keep separate counters.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

func (m *RateLimitMiddleware) Limit(scope string, config ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:ip:%s", scope, c.ClientIP())

		decision, err := m.limiter.Allow(c.Request.Context(), key, config)
		if err != nil {
			// A broken limiter backend must not take the API down with it.
			m.logger.Warnw("rate limit check failed, allowing request",
				"error", err,
				"scope", scope)
			c.Next()
			return
		}

		if config.RequestsPerMinute > 0 && decision.Remaining >= 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerMinute))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		}

		if !decision.Allowed {
			m.logger.Warnw("rate limit exceeded",
				"scope", scope,
				"client_ip", c.ClientIP())
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(decision.RetryAfter)))
			utils.ErrorResponseWithError(c, apperrors.NewTooManyRequestsError("Too many requests, please try again later."))
			c.Abort()
			return
		}

		c.Next()
	}
}


// retryAfterSeconds rounds up to whole seconds within [1s, 24h].
func retryAfterSeconds(d time.Duration) int {
	const maxRetry = 24 * time.Hour
	if d <= 0 {
		return 1
	}
	if d > maxRetry {
		d = maxRetry
	}
	return int((d + time.Second - 1) / time.Second)
}
