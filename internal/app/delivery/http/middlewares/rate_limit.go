package middlewares

import (
	"carelink-service/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// ConditionalRateLimit uses apiKeyLimiter for requests already authenticated by API key.
func (m *Middlewares) ConditionalRateLimit(normalLimiter, apiKeyLimiter func(next http.Handler) http.Handler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		normal := normalLimiter(next)
		apiKey := apiKeyLimiter(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKeyAuth, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH).(bool); ok && apiKeyAuth {
				apiKey.ServeHTTP(w, r)
				return
			}
			normal.ServeHTTP(w, r)
		})
	}
}

// CreateRateLimiters builds per-IP limiters for public and API key traffic.
func (m *Middlewares) CreateRateLimiters() (normalLimiter, apiKeyLimiter func(next http.Handler) http.Handler) {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	normalLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, window)
	apiKeyLimiter = httprate.LimitByIP(m.InternalConfig.App.SuperadminAPIKeyRateLimit, time.Minute)
	return normalLimiter, apiKeyLimiter
}
