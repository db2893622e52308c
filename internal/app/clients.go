package app

import (
	"context"
	"fmt"
	"time"

	"github.com/animalloo/animalloo-backend/internal/platform/llm"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/platform/opendata"
	"github.com/animalloo/animalloo-backend/internal/platform/ratelimit"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

type Clients struct {
	Graph       *sparql.Client
	OpenData    *opendata.Client
	Generator   llm.Generator
	ChatLimiter ratelimit.Limiter

	closeLimiter func() error
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	graph, err := sparql.New(cfg.GraphConfig(), log)
	if err != nil {
		return Clients{}, fmt.Errorf("init graph client: %w", err)
	}

	od, err := opendata.New(cfg.OpenDataConfig(), log)
	if err != nil {
		graph.Close()
		return Clients{}, fmt.Errorf("init open data client: %w", err)
	}

	gen, err := llm.New(ctx, cfg.LLM, log)
	if err != nil {
		graph.Close()
		return Clients{}, fmt.Errorf("init text generator: %w", err)
	}

	// Redis
	var (
		limiter      ratelimit.Limiter = ratelimit.Disabled{}
		closeLimiter func() error
	)
	switch {
	case cfg.ChatRateLimitPerMinute <= 0:
	case cfg.RedisAddr != "":
		l, closeFn, err := ratelimit.NewRedis(log, cfg.RedisAddr, cfg.ChatRateLimitPerMinute, time.Minute)
		if err != nil {
			graph.Close()
			return Clients{}, fmt.Errorf("init redis rate limiter: %w", err)
		}
		limiter, closeLimiter = l, closeFn
	default:
		limiter = ratelimit.NewMemory(cfg.ChatRateLimitPerMinute, time.Minute)
	}

	return Clients{
		Graph:        graph,
		OpenData:     od,
		Generator:    gen,
		ChatLimiter:  limiter,
		closeLimiter: closeLimiter,
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Graph != nil {
		c.Graph.Close()
	}
	if c.closeLimiter != nil {
		_ = c.closeLimiter()
	}
}
