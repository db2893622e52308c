package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/animalloo/animalloo-backend/internal/domain"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

const UnknownDisease = "unknown disease"

type RiskSource interface {
	MedicalRisks(ctx context.Context, speciesURI string) ([]domain.MedicalRisk, error)
}

type RiskFinder struct {
	exec    sparql.Executor
	builder *Builder
}

func NewRiskFinder(exec sparql.Executor, builder *Builder) *RiskFinder {
	return &RiskFinder{exec: exec, builder: builder}
}

// MedicalRisks lists diseases recorded for a species, with their parent symptom
// when one is labelled.
func (f *RiskFinder) MedicalRisks(ctx context.Context, speciesURI string) ([]domain.MedicalRisk, error) {
	query, err := f.builder.MedicalRisks(speciesURI)
	if err != nil {
		return nil, err
	}
	rows, err := f.exec.Execute(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("medical risks for %s: %w", speciesURI, err)
	}
	out := make([]domain.MedicalRisk, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Get("diseaseName"))
		if name == "" {
			name = UnknownDisease
		}
		out = append(out, domain.MedicalRisk{
			Disease: name,
			Symptom: strings.TrimSpace(row.Get("symptomName")),
		})
	}
	return out, nil
}

// RenderRisks formats risks as "disease (symptom)" strings, dropping repeats.
func RenderRisks(risks []domain.MedicalRisk) []string {
	out := make([]string, 0, len(risks))
	seen := make(map[string]struct{}, len(risks))
	for _, r := range risks {
		s := r.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// RiskCache memoises rendered risks per species for the lifetime of one
// enrichment call. It is not safe for concurrent use and must not outlive the
// request that created it.
type RiskCache struct {
	src     RiskSource
	log     *logger.Logger
	entries map[string][]string
}

func NewRiskCache(src RiskSource, log *logger.Logger) *RiskCache {
	return &RiskCache{src: src, log: log, entries: make(map[string][]string)}
}

// Lookup returns the rendered risks for speciesURI. Each species is fetched at
// most once; a failed fetch is remembered as an empty list.
func (c *RiskCache) Lookup(ctx context.Context, speciesURI string) []string {
	if speciesURI == "" {
		return []string{}
	}
	if cached, ok := c.entries[speciesURI]; ok {
		riskLookups.WithLabelValues("hit").Inc()
		return cached
	}
	riskLookups.WithLabelValues("miss").Inc()

	risks, err := c.src.MedicalRisks(ctx, speciesURI)
	rendered := []string{}
	if err != nil {
		if c.log != nil {
			c.log.Warn("medical risk lookup failed", "species", speciesURI, "error", err)
		}
	} else {
		rendered = RenderRisks(risks)
	}
	c.entries[speciesURI] = rendered
	return rendered
}

func (c *RiskCache) Len() int { return len(c.entries) }
