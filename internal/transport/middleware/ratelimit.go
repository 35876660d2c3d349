package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scolaria/scolaria-backend/pkg/ctxutil"
)

// RateLimiter implements a fixed-window request counter backed by Redis.
// Keys are scoped per user when authenticated, per client IP otherwise, so
// all instances of the server share one limit.
type RateLimiter struct {
	rdb      *redis.Client
	requests int
	window   time.Duration
	log      *slog.Logger
}

// NewRateLimiter creates a Redis-backed rate limiter.
func NewRateLimiter(rdb *redis.Client, requests int, window time.Duration, log *slog.Logger) *RateLimiter {
	return &RateLimiter{rdb: rdb, requests: requests, window: window, log: log}
}

// Limit returns middleware enforcing the configured rate. Redis failures
// fail open: an unreachable limiter must not take the API down with it.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rl.key(r)

			count, err := rl.rdb.Incr(r.Context(), key).Result()
			if err != nil {
				rl.log.WarnContext(r.Context(), "rate limiter unavailable", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := rl.rdb.Expire(r.Context(), key, rl.window).Err(); err != nil {
					rl.log.WarnContext(r.Context(), "rate limiter expire failed", slog.Any("error", err))
				}
			}

			if count > int64(rl.requests) {
				w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) key(r *http.Request) string {
	window := time.Now().Unix() / int64(rl.window.Seconds())
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return fmt.Sprintf("ratelimit:user:%s:%d", userID, window)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return fmt.Sprintf("ratelimit:ip:%s:%d", host, window)
}
