package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/animalloo/animalloo-backend/internal/domain"
	"github.com/animalloo/animalloo-backend/internal/knowledge"
	"github.com/animalloo/animalloo-backend/internal/knowledge/knowledgetest"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

func TestPetNames(t *testing.T) {
	exec := knowledgetest.NewExecutor().On("/stat/송파구/",
		row("name", "코코", "count", "31"),
		row("name", "보리", "count", "57"),
	)
	svc := NewStatsService(nopLog(), exec, testResolver(t), knowledge.NewBuilder())

	got, err := svc.PetNames(context.Background(), "송파구")
	require.NoError(t, err)
	assert.Equal(t, []types.PetNameStat{{Name: "보리", Count: 57}, {Name: "코코", Count: 31}}, got)
}

func TestPetNamesEdgeCases(t *testing.T) {
	exec := knowledgetest.NewExecutor()
	svc := NewStatsService(nopLog(), exec, testResolver(t), knowledge.NewBuilder())

	_, err := svc.PetNames(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	got, err := svc.PetNames(context.Background(), "없는구")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, exec.Calls())

	exec.Fail("PetNameStatistic", &sparql.Error{Kind: sparql.KindQueryFailed})
	got, err = svc.PetNames(context.Background(), "송파구")
	require.NoError(t, err)
	assert.Empty(t, got)
}
