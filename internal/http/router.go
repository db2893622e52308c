package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/animalloo/animalloo-backend/internal/http/handlers"
	httpMW "github.com/animalloo/animalloo-backend/internal/http/middleware"
	"github.com/animalloo/animalloo-backend/internal/observability"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/platform/ratelimit"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowedOrigins []string
	Metrics        *observability.Metrics
	ChatLimiter    ratelimit.Limiter

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler   *httpH.HealthHandler
	FacilityHandler *httpH.FacilityHandler
	SearchHandler   *httpH.SearchHandler
	AnimalHandler   *httpH.AnimalHandler
	StatsHandler    *httpH.StatsHandler
	ChatHandler     *httpH.ChatHandler
	FavoriteHandler *httpH.FavoriteHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		if cfg.FacilityHandler != nil {
			api.GET("/facilities", cfg.FacilityHandler.List)
			api.GET("/facility/detail", cfg.FacilityHandler.Detail)
		}
		if cfg.SearchHandler != nil {
			api.GET("/search", cfg.SearchHandler.Search)
		}
		if cfg.AnimalHandler != nil {
			api.GET("/animals", cfg.AnimalHandler.List)
		}
		if cfg.StatsHandler != nil {
			api.GET("/stats/pet-names", cfg.StatsHandler.PetNames)
		}
		if cfg.ChatHandler != nil {
			api.POST("/chat", httpMW.RateLimit(cfg.Log, cfg.ChatLimiter, "chat"), cfg.ChatHandler.Chat)
		}
	}

	// Favorites need a verified user; without an auth middleware they are not served.
	if cfg.AuthMiddleware != nil && cfg.FavoriteHandler != nil {
		protected := api.Group("/")
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		protected.GET("/favorites", cfg.FavoriteHandler.List)
		protected.POST("/favorites", cfg.FavoriteHandler.Add)
		protected.DELETE("/favorites", cfg.FavoriteHandler.Remove)
	}

	return r
}
