package sparql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

const (
	acceptResults   = "application/sparql-results+json"
	maxResponseSize = 32 << 20
	defaultTimeout  = 10 * time.Second
)

// Executor runs a complete, already-prefixed query and returns its bindings.
type Executor interface {
	Execute(ctx context.Context, query string) ([]Binding, error)
}

type Config struct {
	Endpoint   string
	User       string
	Password   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client speaks the SPARQL 1.1 protocol. Every round trip is bounded by Timeout
// and failures are returned as *Error; nothing is retried.
type Client struct {
	endpoint string
	user     string
	password string
	timeout  time.Duration
	http     *http.Client
	log      *logger.Logger
}

func New(cfg Config, log *logger.Logger) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("sparql: logger required")
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("sparql: endpoint required")
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("sparql: invalid endpoint %q", endpoint)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
	}
	return &Client{
		endpoint: endpoint,
		user:     cfg.User,
		password: cfg.Password,
		timeout:  timeout,
		http:     hc,
		log:      log.With("client", "SPARQL"),
	}, nil
}

func (c *Client) Execute(ctx context.Context, query string) ([]Binding, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := otel.Tracer("animalloo/sparql").Start(ctx, "sparql.execute")
	defer span.End()

	start := time.Now()
	doc, err := c.do(ctx, query)
	var rows []Binding
	if err == nil && doc.Results != nil {
		rows = doc.Results.Bindings
	}
	if err == nil && doc.Results == nil {
		err = &Error{Kind: KindQueryFailed, Err: errors.New("response has no results section")}
	}

	queryDuration.WithLabelValues(outcomeLabel(err)).Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.Int("sparql.rows", len(rows)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, KindOf(err).String())
		c.log.Warn("graph query failed",
			"kind", KindOf(err).String(),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return nil, err
	}
	queryRows.Observe(float64(len(rows)))
	c.log.Debug("graph query",
		"rows", len(rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rows, nil
}

// Ask runs an ASK query.
func (c *Client) Ask(ctx context.Context, query string) (bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	doc, err := c.do(ctx, query)
	if err != nil {
		return false, err
	}
	if doc.Boolean == nil {
		return false, &Error{Kind: KindQueryFailed, Err: errors.New("response has no boolean")}
	}
	return *doc.Boolean, nil
}

// Ping checks that the endpoint answers a trivial query.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Ask(ctx, "ASK { }")
	return err
}

func (c *Client) Close() {
	if c == nil || c.http == nil {
		return
	}
	c.http.CloseIdleConnections()
}

func (c *Client) do(ctx context.Context, query string) (*resultsDocument, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &Error{Kind: KindQueryFailed, Err: errors.New("empty query")}
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	form := url.Values{}
	form.Set("query", query)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", acceptResults)
	if c.user != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, transportError(ctx, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		kind := KindQueryFailed
		if resp.StatusCode >= 500 {
			kind = KindUnavailable
		}
		return nil, &Error{Kind: kind, StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", snippet(body))}
	}

	var doc resultsDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &Error{Kind: KindQueryFailed, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode results: %w", err)}
	}
	return &doc, nil
}

func transportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &Error{Kind: KindTimeout, Err: err}
	}
	return &Error{Kind: KindUnavailable, Err: err}
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 300 {
		s = s[:300] + "..."
	}
	if s == "" {
		s = "empty response body"
	}
	return s
}
