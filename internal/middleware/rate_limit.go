package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/vietts/insicuri/internal/config"
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limit throttles requests per client IP with a token bucket sized by
// cfg. Idle buckets are evicted after cfg.IdleTTL so the map stays
// bounded by the active client set.
func Limit(cfg config.RateLimitConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	l := &ipLimiter{
		buckets: make(map[string]*bucket),
		cfg:     cfg,
		logger:  logger,
	}

	go l.evictIdle()

	return l.handler
}

type ipLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	cfg     config.RateLimitConfig
	logger  *slog.Logger
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(l.cfg.RPS), l.cfg.Burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = time.Now()

	return b.limiter.Allow()
}

func (l *ipLimiter) evictIdle() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		for ip, b := range l.buckets {
			if time.Since(b.lastSeen) > l.cfg.IdleTTL {
				delete(l.buckets, ip)
			}
		}
		l.mu.Unlock()
	}
}

func (l *ipLimiter) handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			l.logger.Error("Rate limiter cannot parse remote addr", slog.String("error", err.Error()))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !l.allow(ip) {
			l.logger.Warn("Rate limit exceeded", slog.String("ip", ip))
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
