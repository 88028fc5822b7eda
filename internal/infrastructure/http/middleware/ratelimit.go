package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	apperrors "github.com/dietpartner/v2/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimitConfig configures the per-client limiter
type RateLimitConfig struct {
	RequestsPerMin  int
	BurstSize       int
	CleanupInterval time.Duration
	// OnReject is called for every rejected request
	OnReject func()
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter holds one token bucket per client IP
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	idle    time.Duration
	logger  *zap.Logger
	reject  func()
	now     func() time.Time

	// retryAfter is the refill time of one token in whole seconds
	retryAfter int
}

// NewRateLimiter creates a per-client rate limiter
func NewRateLimiter(cfg RateLimitConfig, logger *zap.Logger) *RateLimiter {
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = time.Minute
	}
	if cfg.OnReject == nil {
		cfg.OnReject = func() {}
	}
	retryAfter := 60
	if cfg.RequestsPerMin > 0 {
		retryAfter = (60 + cfg.RequestsPerMin - 1) / cfg.RequestsPerMin
	}
	return &RateLimiter{
		clients:    make(map[string]*client),
		limit:      rate.Limit(cfg.RequestsPerMin) / 60,
		burst:      cfg.BurstSize,
		idle:       cfg.CleanupInterval,
		logger:     logger,
		reject:     cfg.OnReject,
		now:        time.Now,
		retryAfter: retryAfter,
	}
}

// Allow reports whether key may make a request now
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = l.now()
	l.mu.Unlock()

	return c.limiter.Allow()
}

// Cleanup drops clients idle for longer than the cleanup interval
func (l *RateLimiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.idle)
	removed := 0
	for key, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Run cleans up idle clients until ctx is done
func (l *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(l.idle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := l.Cleanup(); n > 0 {
				l.logger.Debug("Rate limiter cleanup", zap.Int("removed", n))
			}
		}
	}
}

// Middleware rejects requests over the limit with 429
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if l.Allow(key) {
			next.ServeHTTP(w, r)
			return
		}

		l.reject()
		l.logger.Warn("Rate limit exceeded",
			zap.String("client", key),
			zap.String("request_id", GetRequestID(r.Context())))

		w.Header().Set("Retry-After", strconv.Itoa(l.retryAfter))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(apperrors.ToErrorResponse(apperrors.NewTooManyRequestsError()))
	})
}

// clientIP relies on chi's RealIP having rewritten RemoteAddr
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
