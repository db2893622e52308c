package services

import (
	"context"
	"fmt"
	"strings"

	types "github.com/animalloo/animalloo-backend/internal/domain"
	"github.com/animalloo/animalloo-backend/internal/knowledge"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

type StatsService interface {
	PetNames(ctx context.Context, district string) ([]types.PetNameStat, error)
}

type statsService struct {
	log      *logger.Logger
	graph    sparql.Executor
	resolver *knowledge.Resolver
	builder  *knowledge.Builder
}

func NewStatsService(log *logger.Logger, graph sparql.Executor, resolver *knowledge.Resolver, builder *knowledge.Builder) StatsService {
	return &statsService{log: log.With("service", "StatsService"), graph: graph, resolver: resolver, builder: builder}
}

func (ss *statsService) PetNames(ctx context.Context, district string) ([]types.PetNameStat, error) {
	district = strings.TrimSpace(district)
	if district == "" {
		return nil, fmt.Errorf("%w: gu required", ErrInvalidRequest)
	}
	if _, ok := ss.resolver.DistrictByName(district); !ok {
		return []types.PetNameStat{}, nil
	}
	q, err := ss.builder.PetNames(district)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	rows, err := ss.graph.Execute(ctx, q)
	if err != nil {
		logDegraded(ss.log, "pet_names", err)
		return []types.PetNameStat{}, nil
	}
	return knowledge.PetNameStats(rows), nil
}
