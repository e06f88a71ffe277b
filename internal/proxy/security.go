package proxy

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// clientLimiter keeps one token bucket per client IP. Idle clients expire
// from the table so the map stays bounded.
type clientLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func newClientLimiter(limit rate.Limit, burst, maxClients int, ttl time.Duration) *clientLimiter {
	return &clientLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, ttl),
		limit:    limit,
		burst:    burst,
	}
}

func (cl *clientLimiter) allow(ip string) bool {
	limiter, ok := cl.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(cl.limit, cl.burst)
		cl.limiters.Add(ip, limiter)
	}
	return limiter.Allow()
}

// RateLimit rejects clients that exceed the per-IP budget.
func (p *Proxy) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)
		if !p.limiter.allow(ip) {
			p.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests",
			})
			return
		}
		c.Next()
	}
}

// clientIP resolves the caller's address, honoring proxy headers.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if i := strings.Index(xff, ","); i >= 0 {
			xff = xff[:i]
		}
		return strings.TrimSpace(xff)
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.ClientIP()
}
