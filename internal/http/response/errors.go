package response

import (
	"errors"
	"net/http"

	"github.com/animalloo/animalloo-backend/internal/platform/apierr"
	"github.com/animalloo/animalloo-backend/internal/platform/llm"
	"github.com/animalloo/animalloo-backend/internal/platform/opendata"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
	"github.com/animalloo/animalloo-backend/internal/services"
)

// Classify maps a service error to its HTTP status and code. Errors that are
// already *apierr.Error pass through unchanged.
func Classify(err error) *apierr.Error {
	var ae *apierr.Error
	if errors.As(err, &ae) && ae != nil {
		return ae
	}
	switch {
	case err == nil:
		return apierr.New(http.StatusInternalServerError, "internal", errors.New("unknown error"))
	case errors.Is(err, services.ErrInvalidRequest):
		return apierr.New(http.StatusBadRequest, "invalid_request", err)
	case errors.Is(err, services.ErrUnauthorized):
		return apierr.New(http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, services.ErrNotFound), errors.Is(err, opendata.ErrNoData):
		return apierr.New(http.StatusNotFound, "not_found", err)
	case errors.Is(err, sparql.ErrGraphUnavailable):
		return apierr.New(http.StatusServiceUnavailable, "graph_unavailable", err)
	case errors.Is(err, sparql.ErrGraphQueryFailed):
		return apierr.New(http.StatusBadGateway, "graph_query_failed", err)
	case errors.Is(err, opendata.ErrUpstreamRejected):
		return apierr.New(http.StatusBadRequest, "upstream_rejected", err)
	case errors.Is(err, opendata.ErrUpstreamUnavailable):
		return apierr.New(http.StatusBadGateway, "upstream_unavailable", err)
	case errors.Is(err, llm.ErrGenerationFailed):
		return apierr.New(http.StatusBadGateway, "generation_failed", err)
	case errors.Is(err, llm.ErrNotConfigured):
		return apierr.New(http.StatusInternalServerError, "generation_not_configured", err)
	}
	return apierr.From(err, "internal")
}
