package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

// Limiter decides whether one more request under key is allowed now.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type redisLimiter struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedis returns a fixed-window limiter shared by every replica using addr.
func NewRedis(log *logger.Logger, addr string, perWindow int, window time.Duration) (Limiter, func() error, error) {
	if log == nil {
		return nil, nil, fmt.Errorf("logger required")
	}
	if addr == "" {
		return nil, nil, fmt.Errorf("missing redis address")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	return &redisLimiter{
		log:    log.With("service", "RedisRateLimiter"),
		rdb:    rdb,
		prefix: "animalloo:ratelimit:",
		limit:  int64(perWindow),
		window: window,
		now:    time.Now,
	}, rdb.Close, nil
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.now().UnixNano() / int64(l.window)
	k := l.prefix + key + ":" + strconv.FormatInt(bucket, 10)

	var incr *goredis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		p.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit: %w", err)
	}
	return incr.Val() <= l.limit, nil
}

type memoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
	burst    int
	maxKeys  int
}

// NewMemory returns a per-process token bucket limiter allowing perWindow
// requests per window, with a burst of perWindow.
func NewMemory(perWindow int, window time.Duration) Limiter {
	if perWindow <= 0 {
		perWindow = 1
	}
	return &memoryLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    rate.Every(window / time.Duration(perWindow)),
		burst:    perWindow,
		maxKeys:  10000,
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= l.maxKeys {
			l.limiters = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(l.every, l.burst)
		l.limiters[key] = lim
	}
	l.mu.Unlock()
	return lim.Allow(), nil
}

// Disabled allows everything.
type Disabled struct{}

func (Disabled) Allow(context.Context, string) (bool, error) { return true, nil }
