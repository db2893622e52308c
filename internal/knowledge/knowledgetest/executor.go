// Package knowledgetest provides a scripted graph executor for tests.
package knowledgetest

import (
	"context"
	"strings"
	"sync"

	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

type rule struct {
	contains string
	rows     []sparql.Binding
	err      error
}

// Executor answers queries from rules registered with On and Fail. The first
// rule whose marker occurs in the query text wins; unmatched queries return no
// rows.
type Executor struct {
	mu      sync.Mutex
	rules   []rule
	queries []string
}

func NewExecutor() *Executor { return &Executor{} }

func (e *Executor) On(contains string, rows ...sparql.Binding) *Executor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = append(e.rules, rule{contains: contains, rows: rows})
	return e
}

func (e *Executor) Fail(contains string, err error) *Executor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = append(e.rules, rule{contains: contains, err: err})
	return e
}

func (e *Executor) Execute(ctx context.Context, query string) ([]sparql.Binding, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queries = append(e.queries, query)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, r := range e.rules {
		if strings.Contains(query, r.contains) {
			if r.err != nil {
				return nil, r.err
			}
			out := make([]sparql.Binding, len(r.rows))
			copy(out, r.rows)
			return out, nil
		}
	}
	return nil, nil
}

func (e *Executor) Calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queries)
}

// CallsMatching counts executed queries containing marker.
func (e *Executor) CallsMatching(marker string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, q := range e.queries {
		if strings.Contains(q, marker) {
			n++
		}
	}
	return n
}

func (e *Executor) Queries() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.queries))
	copy(out, e.queries)
	return out
}

// Row builds a binding from name/value pairs. Values that look like http(s)
// URLs become IRIs, everything else a plain literal.
func Row(kv ...string) sparql.Binding {
	b := sparql.Binding{}
	for i := 0; i+1 < len(kv); i += 2 {
		typ := "literal"
		if strings.HasPrefix(kv[i+1], "http://") || strings.HasPrefix(kv[i+1], "https://") {
			typ = "uri"
		}
		b[kv[i]] = sparql.Value{Type: typ, Value: kv[i+1]}
	}
	return b
}
