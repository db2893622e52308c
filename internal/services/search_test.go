package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animalloo/animalloo-backend/internal/knowledge"
	"github.com/animalloo/animalloo-backend/internal/knowledge/knowledgetest"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

func TestSearchEmptyTermMakesNoGraphCall(t *testing.T) {
	exec := knowledgetest.NewExecutor()
	svc := NewSearchService(nopLog(), exec, testResolver(t), knowledge.NewBuilder())

	for _, q := range []string{"", "   ", `""`} {
		_, err := svc.Search(context.Background(), q)
		assert.ErrorIs(t, err, ErrInvalidRequest, q)
	}
	assert.Zero(t, exec.Calls())
}

func TestSearchCompoundQueryUsesBothFilters(t *testing.T) {
	exec := knowledgetest.NewExecutor().On("koad:Gu <"+gangnamURI+">",
		row("subject", "http://knowledgemap.kr/koah/facility/1", "label", "강남 미용실",
			"category", salonURI, "address", "서울 강남구 1"),
		row("subject", "http://knowledgemap.kr/koah/facility/1", "label", "강남 미용실"),
	)
	svc := NewSearchService(nopLog(), exec, testResolver(t), knowledge.NewBuilder())

	resp, err := svc.Search(context.Background(), "강남구 애견미용")
	require.NoError(t, err)
	assert.True(t, resp.LinkedData)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "BeautySalon", resp.Results[0].Category)
	assert.Equal(t, "서울 강남구 1", resp.Results[0].Description)

	queries := exec.Queries()
	require.Len(t, queries, 1)
	assert.Contains(t, queries[0], "?subject koah:facilityType <"+salonURI+"> .")
	assert.NotContains(t, queries[0], "UNION")
}

func TestSearchFreeTextIsNotLinked(t *testing.T) {
	exec := knowledgetest.NewExecutor().On("UNION",
		row("subject", "http://knowledgemap.kr/koah/facility/5", "label", "멍멍 카페테리아"))
	svc := NewSearchService(nopLog(), exec, testResolver(t), knowledge.NewBuilder())

	resp, err := svc.Search(context.Background(), "멍멍")
	require.NoError(t, err)
	assert.False(t, resp.LinkedData)
	assert.Equal(t, 1, resp.Total)
}

func TestSearchDegradesOnGraphFailure(t *testing.T) {
	exec := knowledgetest.NewExecutor().Fail("SELECT", &sparql.Error{Kind: sparql.KindTimeout})
	svc := NewSearchService(nopLog(), exec, testResolver(t), knowledge.NewBuilder())

	resp, err := svc.Search(context.Background(), "강남구")
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.NotNil(t, resp.Results)
	assert.Zero(t, resp.Total)
	assert.True(t, resp.LinkedData)
}
