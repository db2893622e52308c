package app

import (
	"fmt"

	"github.com/animalloo/animalloo-backend/internal/knowledge"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/services"
)

// Knowledge is the graph-side toolkit shared by the services.
type Knowledge struct {
	Dictionaries knowledge.Dictionaries
	Resolver     *knowledge.Resolver
	Builder      *knowledge.Builder
	Grounder     *knowledge.ContextBuilder
	Risks        *knowledge.RiskFinder
}

type Services struct {
	Search   services.SearchService
	Facility services.FacilityService
	Stats    services.StatsService
	Chat     services.ChatService
	Animal   services.AnimalService
	Favorite services.FavoriteService
	Auth     services.AuthService
}

func loadDictionaries(path string) (knowledge.Dictionaries, error) {
	if path == "" {
		return knowledge.DefaultDictionaries()
	}
	return knowledge.LoadDictionaries(path)
}

func wireKnowledge(log *logger.Logger, cfg Config, clients Clients) (Knowledge, error) {
	dicts, err := loadDictionaries(cfg.DictionariesPath)
	if err != nil {
		return Knowledge{}, fmt.Errorf("load dictionaries: %w", err)
	}
	log.Info("dictionaries loaded",
		"species", dicts.Species.Len(),
		"districts", dicts.Districts.Len(),
		"categories", dicts.Categories.Len(),
		"path", cfg.DictionariesPath,
	)
	builder := knowledge.NewBuilder()
	return Knowledge{
		Dictionaries: dicts,
		Resolver:     knowledge.NewResolver(dicts),
		Builder:      builder,
		Grounder:     knowledge.NewContextBuilder(clients.Graph, builder, log),
		Risks:        knowledge.NewRiskFinder(clients.Graph, builder),
	}, nil
}

func wireServices(log *logger.Logger, cfg Config, clients Clients, kn Knowledge, reposet Repos) Services {
	log.Info("Wiring services...")
	s := Services{
		Search:   services.NewSearchService(log, clients.Graph, kn.Resolver, kn.Builder),
		Facility: services.NewFacilityService(log, clients.Graph, kn.Resolver, kn.Builder),
		Stats:    services.NewStatsService(log, clients.Graph, kn.Resolver, kn.Builder),
		Chat:     services.NewChatService(log, kn.Dictionaries, kn.Grounder, clients.Generator),
		Animal:   services.NewAnimalService(log, clients.OpenData, kn.Resolver, kn.Risks),
	}
	if reposet.Favorite != nil {
		s.Favorite = services.NewFavoriteService(log, reposet.Favorite)
	}
	if cfg.FavoritesEnabled() {
		s.Auth = services.NewAuthService(log, cfg.JWTSecretKey)
	}
	return s
}
