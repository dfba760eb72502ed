package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"jobtrack/internal/config"

	"github.com/redis/go-redis/v9"
)

// Redis backs the auth rate limiter. A missing or unreachable server is not
// fatal: the wrapper degrades to a no-op and the limiter fails open.
type Redis struct {
	client *redis.Client
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	if logger == nil {
		logger = log.Default()
	}

	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Printf("[Cache] Redis unavailable, rate limiting disabled: %v", err)
		_ = client.Close()
		return &Redis{client: nil, logger: logger}
	}

	return &Redis{client: client, logger: logger}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis unavailable: %v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

// IncrWithinWindow bumps the counter at key and returns the new value. The
// window TTL is set when the counter is created, so the count resets as a
// whole rather than sliding.
func (r *Redis) IncrWithinWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	if r.isUnavailable() {
		return 0, errors.New("redis unavailable")
	}
	if window <= 0 {
		window = time.Minute
	}

	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		r.warnUnavailableOnce(err)
		return 0, err
	}
	if n == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			r.warnUnavailableOnce(err)
			return n, err
		}
	}
	return n, nil
}
