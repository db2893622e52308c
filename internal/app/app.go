package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/animalloo/animalloo-backend/internal/data/db"
	apphttp "github.com/animalloo/animalloo-backend/internal/http"
	"github.com/animalloo/animalloo-backend/internal/observability"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

type App struct {
	Log       *logger.Logger
	Cfg       Config
	DB        *gorm.DB
	Router    *gin.Engine
	Clients   Clients
	Knowledge Knowledge
	Repos     Repos
	Services  Services
	Metrics   *observability.Metrics

	dbService    *db.Service
	otelShutdown func(context.Context) error
	cancel       context.CancelFunc
}

// Options trims what New wires. The query CLI runs without a database.
type Options struct {
	SkipDatabase bool
}

func New(ctx context.Context, opts Options) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log.Info("Loaded configuration", "env", cfg.Env, "graph_endpoint", cfg.GraphEndpoint, "llm_provider", cfg.LLM.Provider)

	a := &App{Log: log, Cfg: cfg}
	a.otelShutdown = observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: serviceName,
		Environment: cfg.Env,
	})
	a.Metrics = observability.Init(log)

	a.Clients, err = wireClients(ctx, log, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Knowledge, err = wireKnowledge(log, cfg, a.Clients)
	if err != nil {
		a.Close()
		return nil, err
	}

	if !opts.SkipDatabase {
		svc, err := db.Open(log, cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("init database: %w", err)
		}
		a.dbService = svc
		a.DB = svc.DB()
		if err := db.AutoMigrateAll(a.DB); err != nil {
			a.Close()
			return nil, fmt.Errorf("automigrate: %w", err)
		}
		a.Repos = wireRepos(a.DB, log)
	}

	a.Services = wireServices(log, cfg, a.Clients, a.Knowledge, a.Repos)
	handlerset := wireHandlers(log, a.Services, a.Clients)
	middleware := wireMiddleware(log, a.Services)
	a.Router = wireRouter(log, cfg, a.Clients, a.Metrics, handlerset, middleware)
	return a, nil
}

// Start launches the background metric collectors.
func (a *App) Start() {
	if a == nil || a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	a.Metrics.StartGraphCollector(ctx, a.Log, a.Clients.Graph)
	a.Metrics.StartDBCollector(ctx, a.Log, a.DB)
	a.Metrics.StartRedisCollector(ctx, a.Log, a.Cfg.RedisAddr)
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	srv := &apphttp.Server{Engine: a.Router}
	a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr())
	return srv.Run(ctx, a.Cfg.Addr(), a.Cfg.Shutdown)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.Clients.Close()
	if a.dbService != nil {
		if err := a.dbService.Close(); err != nil {
			a.Log.Warn("database close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
