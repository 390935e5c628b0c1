package middleware

import (
	"net/http"
	"sync"
	"time"

	"salonbook/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ipLimiters keeps one token bucket per client IP. Entries live for the
// process lifetime; the key space is bounded by the clients actually seen.
type ipLimiters struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

var limiters = &ipLimiters{buckets: make(map[string]*rate.Limiter)}

func (l *ipLimiters) bucket(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[ip]; ok {
		return b
	}
	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 100
	}
	b := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
	l.buckets[ip] = b
	return b
}

// RateLimitMiddleware rejects requests once a client IP exhausts its
// per-minute budget. gin's ClientIP honors X-Forwarded-For and X-Real-IP
// before falling back to the remote address.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiters.bucket(ip).Allow() {
			zap.L().Warn("rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate limited",
				"message": "too many requests, try again later",
			})
			return
		}
		c.Next()
	}
}
