package middlewares

import (
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a token bucket per client IP. A client that drains its bucket is
// rejected for blockTime before it gets a fresh bucket.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	burst     int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
}

func NewRateLimiter(burst int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		burst:     burst,
		per:       per,
		blockTime: blockTime,
		log:       logger,
	}
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if retryAfter, ok := l.allow(ip, time.Now()); !ok {
			l.log.Warn("RateLimiter.Limit client blocked",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingRemoteAddrKey, ip),
			)
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())+1))
			utils.BuildErrorResponse(l.log, w, exceptions.ErrTooManyRequests(nil, ip))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(ip string, now time.Time) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if blockedUntil, found := l.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return blockedUntil.Sub(now), false
		}
		delete(l.blocked, ip)
		delete(l.limiters, ip)
	}

	limiter, exists := l.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(l.per), l.burst)
		l.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		l.blocked[ip] = now.Add(l.blockTime)
		return l.blockTime, false
	}
	return 0, true
}
