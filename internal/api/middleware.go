package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// ClientIDHeader optionally identifies the calling system for rate limiting
// and request logs.
const ClientIDHeader = "X-Client-ID"

func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chiMiddleware.GetReqID(r.Context()),
				"client", r.Header.Get(ClientIDHeader),
			)
		})
	}
}

// clientLimiter is one client's token bucket and when it was last used.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps a token bucket per client key. A bucket idle for a full
// refill period is full again, so it is evicted and recreated on demand.
type rateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
}

func newRateLimiter(requestsPerMinute int) *rateLimiter {
	return &rateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:   requestsPerMinute,
		idle:    time.Minute,
	}
}

// RateLimitMiddleware allows requestsPerMinute per client, refilled evenly
// over the minute. A limit of zero or less disables it.
func RateLimitMiddleware(requestsPerMinute int) func(http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	rl := newRateLimiter(requestsPerMinute)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(ClientIDHeader)
			if key == "" {
				key = r.RemoteAddr
			}
			if !rl.allow(key, time.Now()) {
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *rateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) >= rl.idle {
		rl.sweep(now)
	}
	c, ok := rl.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// sweep drops clients idle for at least one refill period. Callers hold mu.
func (rl *rateLimiter) sweep(now time.Time) {
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) >= rl.idle {
			delete(rl.clients, key)
		}
	}
	rl.lastSweep = now
}

// size reports how many client buckets are held.
func (rl *rateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}
