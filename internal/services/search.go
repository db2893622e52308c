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

type SearchService interface {
	Search(ctx context.Context, query string) (*types.SearchResponse, error)
}

type searchService struct {
	log      *logger.Logger
	graph    sparql.Executor
	resolver *knowledge.Resolver
	builder  *knowledge.Builder
}

func NewSearchService(log *logger.Logger, graph sparql.Executor, resolver *knowledge.Resolver, builder *knowledge.Builder) SearchService {
	serviceLog := log.With("service", "SearchService")
	return &searchService{log: serviceLog, graph: graph, resolver: resolver, builder: builder}
}

// Search resolves the query into a district and/or category filter, falling
// back to a label/address text match. Graph failures yield an empty result.
func (ss *searchService) Search(ctx context.Context, query string) (*types.SearchResponse, error) {
	if strings.TrimSpace(knowledge.SanitizeText(query)) == "" {
		return nil, fmt.Errorf("%w: search term required", ErrInvalidRequest)
	}

	intent := ss.resolver.ParseSearch(query)
	resp := &types.SearchResponse{Results: []types.SearchResult{}, LinkedData: intent.Linked()}

	q, err := ss.builder.Build(intent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	rows, err := ss.graph.Execute(ctx, q)
	if err != nil {
		logDegraded(ss.log, "search", err)
		return resp, nil
	}

	resp.Results = knowledge.SearchResults(rows)
	resp.Total = len(resp.Results)
	ss.log.Debug("search", "intent", intent.Kind.String(), "results", resp.Total)
	return resp, nil
}
