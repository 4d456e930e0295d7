package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter limits requests per client IP using an in-memory store.
type RateLimiter struct {
	store limiter.Store
	log   *slog.Logger
	now   func() time.Time
}

// NewRateLimiter creates a rate limiter. Each Limit call gets its own quota
// namespace on the shared store.
func NewRateLimiter(logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		store: memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          "lostfound",
			CleanUpInterval: time.Minute,
		}),
		log: logger,
		now: time.Now,
	}
}

// Limit returns middleware that allows at most maxPerMinute requests per IP.
func (rl *RateLimiter) Limit(name string, maxPerMinute int64) Middleware {
	instance := limiter.New(rl.store, limiter.Rate{Period: time.Minute, Limit: maxPerMinute})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := name + ":" + clientIP(r)

			lctx, err := instance.Get(r.Context(), key)
			if err != nil {
				// Fail open.
				rl.log.ErrorContext(r.Context(), "rate limiter", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

			if lctx.Reached {
				retryAfter := max(lctx.Reset-rl.now().Unix(), 1)
				w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
