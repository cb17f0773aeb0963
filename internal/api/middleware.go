package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/youruser/jashn/internal/config"
)

// RateLimit throttles each client IP to cfg.RequestsPerMinute with the
// configured burst. Idle limiters are dropped after ten minutes.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.RequestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	every := rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	limiters := cache.New(10*time.Minute, 5*time.Minute)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		var l *rate.Limiter
		if v, ok := limiters.Get(ip); ok {
			l = v.(*rate.Limiter)
		} else {
			l = rate.NewLimiter(every, burst)
			if err := limiters.Add(ip, l, cache.DefaultExpiration); err != nil {
				// another request created it first
				if v, ok := limiters.Get(ip); ok {
					l = v.(*rate.Limiter)
				}
			}
		}
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		limiters.SetDefault(ip, l)
		c.Next()
	}
}
