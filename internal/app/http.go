package app

import (
	"github.com/gin-gonic/gin"

	"github.com/animalloo/animalloo-backend/internal/http"
	httpH "github.com/animalloo/animalloo-backend/internal/http/handlers"
	httpMW "github.com/animalloo/animalloo-backend/internal/http/middleware"
	"github.com/animalloo/animalloo-backend/internal/observability"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

const serviceName = "animalloo-backend"

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Facility *httpH.FacilityHandler
	Search   *httpH.SearchHandler
	Animal   *httpH.AnimalHandler
	Stats    *httpH.StatsHandler
	Chat     *httpH.ChatHandler
	Favorite *httpH.FavoriteHandler
}

func wireHandlers(log *logger.Logger, services Services, clients Clients) Handlers {
	log.Info("Wiring handlers...")
	h := Handlers{
		Health:   httpH.NewHealthHandler(clients.Graph),
		Facility: httpH.NewFacilityHandler(services.Facility),
		Search:   httpH.NewSearchHandler(services.Search),
		Animal:   httpH.NewAnimalHandler(services.Animal),
		Stats:    httpH.NewStatsHandler(services.Stats),
		Chat:     httpH.NewChatHandler(services.Chat),
	}
	if services.Favorite != nil {
		h.Favorite = httpH.NewFavoriteHandler(services.Favorite)
	}
	return h
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	if services.Auth == nil {
		log.Warn("JWT_SECRET_KEY not set; favorites disabled")
		return Middleware{}
	}
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, clients Clients, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:             log,
		ServiceName:     serviceName,
		AllowedOrigins:  cfg.AllowedOrigins,
		Metrics:         metrics,
		ChatLimiter:     clients.ChatLimiter,
		AuthMiddleware:  middleware.Auth,
		HealthHandler:   handlers.Health,
		FacilityHandler: handlers.Facility,
		SearchHandler:   handlers.Search,
		AnimalHandler:   handlers.Animal,
		StatsHandler:    handlers.Stats,
		ChatHandler:     handlers.Chat,
		FavoriteHandler: handlers.Favorite,
	})
}
