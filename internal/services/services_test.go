package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/animalloo/animalloo-backend/internal/knowledge"
	"github.com/animalloo/animalloo-backend/internal/knowledge/knowledgetest"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/platform/opendata"
)

const (
	dogURI     = "http://www.wikidata.org/entity/Q144"
	catURI     = "http://www.wikidata.org/entity/Q146"
	gangnamURI = "http://www.wikidata.org/entity/Q20398"
	salonURI   = "http://knowledgemap.kr/koah/def/BeautySalon"
)

var row = knowledgetest.Row

func testResolver(t *testing.T) *knowledge.Resolver {
	t.Helper()
	d, err := knowledge.DefaultDictionaries()
	require.NoError(t, err)
	return knowledge.NewResolver(d)
}

func nopLog() *logger.Logger { return logger.NewNop() }

type fakeGenerator struct {
	prompts []string
	answer  string
	err     error
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.answer, g.err
}

type fakePager struct {
	page  *opendata.Page
	err   error
	calls int
}

func (p *fakePager) FetchPage(context.Context, int, int) (*opendata.Page, error) {
	p.calls++
	return p.page, p.err
}
