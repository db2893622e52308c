package opendata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

var (
	ErrUpstreamUnavailable = errors.New("open data source unavailable")
	ErrUpstreamRejected    = errors.New("open data source rejected the request")
	ErrNoData              = errors.New("open data source returned no data")
)

// RejectedError carries the RESULT envelope returned by the source.
type RejectedError struct {
	Code    string
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("open data %s: %s", e.Code, e.Message)
}

func (e *RejectedError) Is(target error) bool { return target == ErrUpstreamRejected }

var upstreamCalls = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "animalloo",
		Subsystem: "opendata",
		Name:      "requests_total",
		Help:      "Calls to the open data source, by outcome.",
	},
	[]string{"outcome"},
)

type Config struct {
	BaseURL    string
	APIKey     string
	Service    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Page is one window of rows. Rows are passed through as decoded JSON objects.
type Page struct {
	TotalCount int
	Rows       []map[string]any
}

type Client struct {
	baseURL string
	apiKey  string
	service string
	http    *http.Client
	log     *logger.Logger
}

func New(cfg Config, log *logger.Logger) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("opendata: logger required")
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("opendata: base url required")
	}
	if strings.TrimSpace(cfg.Service) == "" {
		return nil, fmt.Errorf("opendata: service name required")
	}
	key := cfg.APIKey
	if key == "" {
		key = "sample"
	}
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: base,
		apiKey:  key,
		service: cfg.Service,
		http:    hc,
		log:     log.With("client", "OpenData", "service", cfg.Service),
	}, nil
}

// FetchPage requests rows start..end (1-based, inclusive).
func (c *Client) FetchPage(ctx context.Context, start, end int) (*Page, error) {
	ctx, span := otel.Tracer("animalloo/opendata").Start(ctx, "opendata.fetch_page")
	defer span.End()
	span.SetAttributes(attribute.Int("opendata.start", start), attribute.Int("opendata.end", end))

	page, err := c.fetch(ctx, start, end)
	outcome := "ok"
	switch {
	case errors.Is(err, ErrUpstreamRejected):
		outcome = "rejected"
	case errors.Is(err, ErrNoData):
		outcome = "no_data"
	case err != nil:
		outcome = "unavailable"
	}
	upstreamCalls.WithLabelValues(outcome).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		c.log.Warn("open data request failed", "start", start, "end", end, "outcome", outcome, "error", err)
		return nil, err
	}
	c.log.Debug("open data page", "start", start, "end", end, "rows", len(page.Rows))
	return page, nil
}

func (c *Client) fetch(ctx context.Context, start, end int) (*Page, error) {
	endpoint := fmt.Sprintf("%s/%s/json/%s/%d/%d/",
		c.baseURL, url.PathEscape(c.apiKey), url.PathEscape(c.service), start, end)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUpstreamUnavailable, err)
	}

	if body, ok := doc[c.service]; ok {
		var env struct {
			ListTotalCount json.Number      `json:"list_total_count"`
			Row            []map[string]any `json:"row"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrUpstreamUnavailable, c.service, err)
		}
		total, _ := strconv.Atoi(env.ListTotalCount.String())
		rows := env.Row
		if rows == nil {
			rows = []map[string]any{}
		}
		return &Page{TotalCount: total, Rows: rows}, nil
	}

	if body, ok := doc["RESULT"]; ok {
		var result struct {
			Code    string `json:"CODE"`
			Message string `json:"MESSAGE"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("%w: decode RESULT: %v", ErrUpstreamUnavailable, err)
		}
		return nil, &RejectedError{Code: result.Code, Message: result.Message}
	}
	return nil, ErrNoData
}
