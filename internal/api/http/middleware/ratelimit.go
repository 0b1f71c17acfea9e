package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/dtroode/jobmarket-server/internal/api/http/apierror"
	"github.com/dtroode/jobmarket-server/internal/api/http/response"
	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/ratelimit"
)

// RateLimiter decides whether a client may make another request.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
}

// RateLimit throttles credential endpoints per client address.
type RateLimit struct {
	limiter RateLimiter
	logger  *logger.Logger
}

// NewRateLimit creates a new RateLimit middleware.
func NewRateLimit(limiter RateLimiter, logger *logger.Logger) *RateLimit {
	return &RateLimit{limiter: limiter, logger: logger}
}

// Handle keys the limiter by route and client address. RemoteAddr is expected
// to be rewritten by chi's RealIP middleware upstream. Limiter failures let
// the request through.
func (m *RateLimit) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path + ":" + clientIP(r)

		d, err := m.limiter.Allow(r.Context(), key)
		if err != nil {
			m.logger.Warn("Rate limiter unavailable, allowing request",
				"key", key,
				"error", err.Error())
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

		if !d.Allowed {
			retryAfter := max(int(time.Until(d.ResetAt).Seconds()), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			response.Error(w, apierror.ErrRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
