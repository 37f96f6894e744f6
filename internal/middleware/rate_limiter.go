package middleware

import (
	"net/http"
	"sync"
	"time"

	"spendlens/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterState struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rps      int
	burst    int
}

// RateLimiter creates a middleware for rate limiting requests per IP
func RateLimiter(requestsPerSecond, burst int) echo.MiddlewareFunc {
	state := &rateLimiterState{
		visitors: make(map[string]*visitor),
		rps:      requestsPerSecond,
		burst:    burst,
	}

	go state.cleanupLoop()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := state.getVisitor(getIP(c))
			if !limiter.Allow() {
				traceID := GetTraceID(c)
				response := errors.NewErrorResponse(errors.SystemRateLimitExceeded, traceID)
				return c.JSON(http.StatusTooManyRequests, response)
			}

			return next(c)
		}
	}
}

func (s *rateLimiterState) getVisitor(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(s.rps), s.burst)
		s.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (s *rateLimiterState) cleanupLoop() {
	for {
		time.Sleep(time.Minute)

		s.mu.Lock()
		for ip, v := range s.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(s.visitors, ip)
			}
		}
		s.mu.Unlock()
	}
}

func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}
