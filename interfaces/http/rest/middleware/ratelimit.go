package middleware

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	apperrors "survey-backend/pkg/errors"
	"survey-backend/pkg/ratelimit"
)

// RateLimit rejects requests over the limit with 429. Requests are keyed by
// remote address, so it must run after RealIP. Limiter failures let the
// request through.
func RateLimit(limiter ratelimit.Limiter, errs *apperrors.ErrorHandler, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warn("Rate limiter failed", zap.String("client", key), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				w.Header().Set("Retry-After", "60")
				errs.HandleStatus(w, r, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + host
}
