package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/aspireai/aspire-site/internal/api/dto/common"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second, per client IP
	RPS float64
	// Burst size (number of requests that can be made in a single burst)
	Burst int
	// OnLimited, when set, runs for every rejected request before the 429 is written
	OnLimited func(c *gin.Context)
}

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiterSet struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	config    RateLimitConfig
	lastSweep time.Time
}

func (s *limiterSet) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > time.Minute {
		for k, cl := range s.clients {
			if now.Sub(cl.lastSeen) > limiterIdleTTL {
				delete(s.clients, k)
			}
		}
		s.lastSweep = now
	}

	cl, ok := s.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(s.config.RPS), s.config.Burst)}
		s.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// RateLimitMiddleware creates a rate limiting middleware with one token
// bucket per client IP. Clients are keyed by c.ClientIP(), so forwarding
// headers only count when the engine trusts the peer they came from.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	set := &limiterSet{
		clients: make(map[string]*clientLimiter),
		config:  config,
	}
	limit := strconv.FormatFloat(config.RPS, 'f', -1, 64)
	retryAfter := strconv.Itoa(int(math.Ceil(1 / config.RPS)))

	return func(c *gin.Context) {
		now := time.Now()
		limiter := set.get(c.ClientIP(), now)

		if !limiter.AllowN(now, 1) {
			if config.OnLimited != nil {
				config.OnLimited(c)
			}
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.NewErrorResponse(
				common.ErrCodeTooManyRequests,
				"Rate limit exceeded. Please try again later.",
				nil,
			))
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.TokensAt(now))))

		c.Next()
	}
}
