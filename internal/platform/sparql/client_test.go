package sparql

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

const sampleResults = `{
  "head": {"vars": ["s", "label"]},
  "results": {"bindings": [
    {"s": {"type": "uri", "value": "http://knowledgemap.kr/koah/facility/1"},
     "label": {"type": "literal", "value": "행복 동물병원", "xml:lang": "ko"}},
    {"s": {"type": "uri", "value": "http://knowledgemap.kr/koah/facility/2"}}
  ]}
}`

func newTestClient(t *testing.T, srv *httptest.Server, timeout time.Duration) *Client {
	t.Helper()
	c, err := New(Config{
		Endpoint:   srv.URL + "/repositories/knowledgemap",
		Timeout:    timeout,
		HTTPClient: &http.Client{Transport: &http.Transport{DisableKeepAlives: true}},
	}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestExecuteDecodesBindings(t *testing.T) {
	defer goleak.VerifyNone(t)

	var gotQuery, gotAccept, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(body))
		gotQuery = form.Get("query")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", acceptResults)
		_, _ = io.WriteString(w, sampleResults)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, time.Second)
	rows, err := c.Execute(context.Background(), "SELECT ?s ?label WHERE { ?s ?p ?label }")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "SELECT ?s ?label WHERE { ?s ?p ?label }", gotQuery)
	assert.Equal(t, acceptResults, gotAccept)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)

	assert.Equal(t, "http://knowledgemap.kr/koah/facility/1", rows[0].Get("s"))
	assert.True(t, rows[0].IsIRI("s"))
	assert.Equal(t, "행복 동물병원", rows[0].Get("label"))
	assert.Equal(t, "ko", rows[0]["label"].Lang)
	assert.False(t, rows[1].Has("label"))
}

func TestExecuteEmptyResultIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"head":{"vars":["s"]},"results":{"bindings":[]}}`)
	}))
	defer srv.Close()

	rows, err := newTestClient(t, srv, time.Second).Execute(context.Background(), "SELECT ?s WHERE { ?s ?p ?o }")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExecuteTimeoutIsDistinguishable(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := newTestClient(t, srv, 50*time.Millisecond).Execute(context.Background(), "SELECT * WHERE { ?s ?p ?o }")
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.True(t, errors.Is(err, ErrGraphUnavailable))
	assert.False(t, errors.Is(err, ErrGraphQueryFailed))
	assert.Equal(t, KindTimeout, KindOf(err))
}

func TestExecuteUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := newTestClient(t, srv, time.Second)
	srv.Close()

	rows, err := c.Execute(context.Background(), "SELECT * WHERE { ?s ?p ?o }")
	assert.Nil(t, rows)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGraphUnavailable))
	assert.False(t, IsTimeout(err))
}

func TestExecuteStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"malformed query", http.StatusBadRequest, ErrGraphQueryFailed},
		{"server error", http.StatusServiceUnavailable, ErrGraphUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "MALFORMED QUERY", tc.status)
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv, time.Second).Execute(context.Background(), "SELECT")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want))

			var se *Error
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tc.status, se.StatusCode)
		})
	}
}

func TestExecuteMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>not json</html>")
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv, time.Second).Execute(context.Background(), "SELECT * WHERE { ?s ?p ?o }")
	assert.True(t, errors.Is(err, ErrGraphQueryFailed))
}

func TestAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"head":{},"boolean":true}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, time.Second)
	ok, err := c.Ask(context.Background(), "ASK { }")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, c.Ping(context.Background()))
}

func TestNewValidatesEndpoint(t *testing.T) {
	_, err := New(Config{Endpoint: "not a url"}, logger.NewNop())
	assert.Error(t, err)
	_, err = New(Config{Endpoint: "http://localhost:7200"}, nil)
	assert.Error(t, err)
}
