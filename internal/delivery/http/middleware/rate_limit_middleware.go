package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/service"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/response"

	"github.com/sirupsen/logrus"
)

type RateLimitMiddleware struct {
	limiter service.RateLimiter
	log     *logrus.Logger
}

func NewRateLimitMiddleware(limiter service.RateLimiter, log *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		log:     log,
	}
}

// Handle limits requests per authenticated user, or per client address when
// no actor is known. Requests pass through if the limiter is unavailable.
func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := m.limiter.Allow(r.Context(), rateLimitKey(r))
		if err != nil {
			m.log.Warnf("Failed to check rate limit: %+v", err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			seconds := int(math.Ceil(result.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			response.TooManyRequests(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func rateLimitKey(r *http.Request) string {
	if actor, ok := GetActorFromContext(r.Context()); ok {
		return "user:" + actor.UserID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
