package services

import (
	"context"
	"fmt"
	"strings"

	types "github.com/animalloo/animalloo-backend/internal/domain"
	"github.com/animalloo/animalloo-backend/internal/knowledge"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/platform/opendata"
)

const (
	DefaultAnimalStart = 1
	DefaultAnimalEnd   = 50
	MaxAnimalPage      = 1000
)

// Upstream fields the species is read from, in order.
var speciesFields = []string{"SPCS", "BREEDS"}

type AnimalPager interface {
	FetchPage(ctx context.Context, start, end int) (*opendata.Page, error)
}

type AnimalService interface {
	List(ctx context.Context, start, end int) (*types.AnimalPage, error)
}

type animalService struct {
	log      *logger.Logger
	source   AnimalPager
	resolver *knowledge.Resolver
	risks    knowledge.RiskSource
}

func NewAnimalService(log *logger.Logger, source AnimalPager, resolver *knowledge.Resolver, risks knowledge.RiskSource) AnimalService {
	serviceLog := log.With("service", "AnimalService")
	return &animalService{log: serviceLog, source: source, resolver: resolver, risks: risks}
}

// List fetches shelter rows start..end and attaches the medical risks known
// for each row's species. Risk lookups are memoised for this call only.
func (as *animalService) List(ctx context.Context, start, end int) (*types.AnimalPage, error) {
	if start < 1 || end < start {
		return nil, fmt.Errorf("%w: invalid range %d..%d", ErrInvalidRequest, start, end)
	}
	if end-start+1 > MaxAnimalPage {
		return nil, fmt.Errorf("%w: at most %d rows per request", ErrInvalidRequest, MaxAnimalPage)
	}

	page, err := as.source.FetchPage(ctx, start, end)
	if err != nil {
		return nil, err
	}

	cache := knowledge.NewRiskCache(as.risks, as.log)
	out := &types.AnimalPage{
		ListTotalCount: page.TotalCount,
		Row:            make([]types.AnimalRow, 0, len(page.Rows)),
	}
	for _, raw := range page.Rows {
		row := types.AnimalRow(raw)
		if row == nil {
			row = types.AnimalRow{}
		}
		species := as.speciesOf(row)
		row["knowledge_graph"] = types.KnowledgeGraphInfo{
			Species:      species,
			MedicalRisks: cache.Lookup(ctx, species),
		}
		out.Row = append(out.Row, row)
	}
	as.log.Debug("animals enriched", "rows", len(out.Row), "species", cache.Len())
	return out, nil
}

func (as *animalService) speciesOf(row types.AnimalRow) string {
	for _, field := range speciesFields {
		s, _ := row[field].(string)
		if strings.TrimSpace(s) == "" {
			continue
		}
		uri, _ := as.resolver.Species(s)
		return uri
	}
	return ""
}
