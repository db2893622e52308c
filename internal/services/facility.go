package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	types "github.com/animalloo/animalloo-backend/internal/domain"
	"github.com/animalloo/animalloo-backend/internal/knowledge"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

type FacilityService interface {
	ListByDistrict(ctx context.Context, district string) ([]types.FacilityRecord, error)
	Detail(ctx context.Context, id string) (types.FacilityDetail, error)
}

type facilityService struct {
	log      *logger.Logger
	graph    sparql.Executor
	resolver *knowledge.Resolver
	builder  *knowledge.Builder
}

func NewFacilityService(log *logger.Logger, graph sparql.Executor, resolver *knowledge.Resolver, builder *knowledge.Builder) FacilityService {
	serviceLog := log.With("service", "FacilityService")
	return &facilityService{log: serviceLog, graph: graph, resolver: resolver, builder: builder}
}

// ListByDistrict returns the facilities of a district by its exact name.
// Unknown districts and graph failures both yield an empty list.
func (fs *facilityService) ListByDistrict(ctx context.Context, district string) ([]types.FacilityRecord, error) {
	district = strings.TrimSpace(district)
	if district == "" {
		return nil, fmt.Errorf("%w: gu required", ErrInvalidRequest)
	}
	uri, ok := fs.resolver.DistrictByName(district)
	if !ok {
		return []types.FacilityRecord{}, nil
	}
	q, err := fs.builder.Facilities(uri)
	if err != nil {
		return nil, err
	}
	rows, err := fs.graph.Execute(ctx, q)
	if err != nil {
		logDegraded(fs.log, "facilities", err)
		return []types.FacilityRecord{}, nil
	}
	return knowledge.FacilityRecords(rows), nil
}

// Detail loads every property of one facility and its opening hours. Both
// queries run concurrently; any graph failure is returned to the caller.
func (fs *facilityService) Detail(ctx context.Context, id string) (types.FacilityDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrInvalidRequest)
	}
	propsQuery, err := fs.builder.Build(knowledge.Intent{Kind: knowledge.ByIdentifier, Subject: id})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	hoursQuery, err := fs.builder.Hours(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var propRows, hourRows []sparql.Binding
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := fs.graph.Execute(gctx, propsQuery)
		if err != nil {
			return fmt.Errorf("facility properties: %w", err)
		}
		propRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := fs.graph.Execute(gctx, hoursQuery)
		if err != nil {
			return fmt.Errorf("facility hours: %w", err)
		}
		hourRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		fs.log.Warn("facility detail failed",
			"id", id,
			"kind", sparql.KindOf(err).String(),
			"timeout", sparql.IsTimeout(err),
			"error", err,
		)
		return nil, err
	}

	if len(propRows) == 0 {
		return nil, fmt.Errorf("%w: facility %s", ErrNotFound, id)
	}
	detail := knowledge.DetailProperties(propRows)
	detail["id"] = id
	detail["hours"] = knowledge.RenderHours(knowledge.HoursEntries(hourRows))
	return detail, nil
}
