package middleware

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"carmarket/config"
	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/delivery/http/response"
	domainerrors "carmarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const defaultLimiterCleanupInterval = 5 * time.Minute

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// RateLimiter throttles requests per client with a token bucket each.
// Authenticated callers are keyed by user, anonymous ones by client IP.
type RateLimiter struct {
	enabled         bool
	limit           rate.Limit
	burst           int
	cleanupInterval time.Duration
	logger          *slog.Logger

	mu       sync.RWMutex
	limiters map[string]*clientLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter from config and ties its cleanup loop to the Fx lifecycle.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	rl := newRateLimiter(params.Config.RateLimit, defaultLimiterCleanupInterval, params.Logger)
	if rl.enabled {
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go rl.cleanupLoop()

				return nil
			},
			OnStop: func(context.Context) error {
				rl.Stop()

				return nil
			},
		})
	}

	return rl
}

func newRateLimiter(cfg *config.RateLimitConfig, cleanupInterval time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		cleanupInterval: cleanupInterval,
		logger:          logger,
		limiters:        make(map[string]*clientLimiter),
		stopCh:          make(chan struct{}),
	}
	if cfg != nil && cfg.Enabled && cfg.RequestsPerSecond > 0 {
		rl.enabled = true
		rl.limit = rate.Limit(cfg.RequestsPerSecond)
		rl.burst = max(cfg.Burst, 1)
	}

	return rl
}

// Stop ends the background cleanup loop.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Limit is the echo middleware enforcing the per-client budget.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		key := clientKey(c)
		if !rl.limiterFor(key).Allow() {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), rl.logger).Warn("rate limit exceeded",
				slog.String("client", key),
				slog.String("path", c.Path()),
			)
			c.Response().Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))

			return response.AppError(c, domainerrors.ErrTooManyRequests)
		}

		return next(c)
	}
}

// LimiterCount returns the number of tracked clients.
func (rl *RateLimiter) LimiterCount() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	return len(rl.limiters)
}

func clientKey(c echo.Context) string {
	if principal, ok := deliverycontext.GetPrincipal(c); ok {
		return "user:" + strconv.FormatInt(principal.UserID, 10)
	}

	return "ip:" + c.RealIP()
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.RLock()
	cl, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if exists {
		rl.mu.Lock()
		cl.lastAccess = time.Now()
		rl.mu.Unlock()

		return cl.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cl, exists := rl.limiters[key]; exists {
		cl.lastAccess = time.Now()

		return cl.limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[key] = &clientLimiter{limiter: limiter, lastAccess: time.Now()}

	return limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops clients idle for more than two cleanup intervals.
func (rl *RateLimiter) cleanup(now time.Time) {
	ttl := rl.cleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
}

// retryAfterSeconds estimates how long until one token is refilled.
func (rl *RateLimiter) retryAfterSeconds() int {
	return max(int(math.Ceil(1.0/float64(rl.limit))), 1)
}
