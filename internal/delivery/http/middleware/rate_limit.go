package middleware

import (
	"context"
	"log"
	"time"

	"jobtrack/internal/config"

	"github.com/gofiber/fiber/v3"
)

// Counter is the fixed-window counter the limiter needs; the redis cache
// wrapper implements it.
type Counter interface {
	IncrWithinWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitMiddleware caps requests per client IP within a fixed window.
// It fails open: if the counter backend is unreachable the request passes.
type RateLimitMiddleware struct {
	counter Counter
	window  time.Duration
	max     int
	logger  *log.Logger
}

func NewRateLimitMiddleware(counter Counter, cfg config.RateLimitConfig, logger *log.Logger) *RateLimitMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &RateLimitMiddleware{counter: counter, window: cfg.Window, max: cfg.Max, logger: logger}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m.counter == nil || m.max <= 0 {
			return c.Next()
		}

		key := "ratelimit:" + c.Path() + ":" + c.IP()
		n, err := m.counter.IncrWithinWindow(c.Context(), key, m.window)
		if err != nil {
			m.logger.Printf("rate limit bypassed | key=%s err=%v", key, err)
			return c.Next()
		}

		if n > int64(m.max) {
			return NewAppError(
				fiber.StatusTooManyRequests,
				"Too many requests from this IP, please try again after 15 minutes",
				nil,
			)
		}

		return c.Next()
	}
}
