package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// limiterIdleTTL is how long a client's limiter survives without traffic.
	// A full bucket refills well within it, so dropping it loses nothing.
	limiterIdleTTL = 10 * time.Minute
	sweepInterval  = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds a map of client IPs to their rate limiters.
type rateLimiterStore struct {
	limiters  map[string]*clientLimiter
	perMinute int
	now       func() time.Time
	lastSweep time.Time
	mu        sync.Mutex
}

func newRateLimiterStore(perMinute int) *rateLimiterStore {
	return &rateLimiterStore{
		limiters:  make(map[string]*clientLimiter),
		perMinute: perMinute,
		now:       time.Now,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.evictIdle(now)
		s.lastSweep = now
	}

	entry, exists := s.limiters[ip]
	if !exists {
		// Refill evenly across the minute, allowing a full minute's burst.
		entry = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMinute)), s.perMinute),
		}
		s.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// evictIdle drops limiters untouched for limiterIdleTTL. Caller holds mu.
func (s *rateLimiterStore) evictIdle(now time.Time) {
	for ip, entry := range s.limiters {
		if now.Sub(entry.lastSeen) >= limiterIdleTTL {
			delete(s.limiters, ip)
		}
	}
}

func (s *rateLimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// RateLimitMiddleware limits each client IP to perMinute requests. A
// non-positive limit disables limiting. The client IP comes from
// gin's ClientIP, so forwarding headers only count when the engine
// trusts the peer that sent them.
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return newRateLimitHandler(newRateLimiterStore(perMinute))
}

func newRateLimitHandler(store *rateLimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.getLimiter(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
			return
		}
		c.Next()
	}
}
