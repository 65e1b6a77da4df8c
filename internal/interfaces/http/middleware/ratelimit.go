package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/infrastructure/ratelimit"
	"github.com/GraziArcH/domain-sales/internal/shared/constants"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
	"github.com/GraziArcH/domain-sales/internal/shared/utils"
)

// RateLimit enforces a per client IP limit on the routes it wraps.
// When the limiter backend fails the request is let through.
func RateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		decision, err := limiter.Allow(c.Request.Context(), "ip:"+clientIP)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "client_ip", clientIP, "error", err)
			c.Next()
			return
		}

		if decision.Limit > 0 {
			c.Header(constants.HeaderRateLimitLimit, strconv.Itoa(decision.Limit))
			c.Header(constants.HeaderRateLimitRemaining, strconv.Itoa(decision.Remaining))
			c.Header(constants.HeaderRateLimitReset, strconv.Itoa(int(math.Ceil(decision.ResetIn.Seconds()))))
		}

		if !decision.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(decision.ResetIn.Seconds()))))
			utils.ErrorResponse(c, http.StatusTooManyRequests, constants.ErrMsgRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
