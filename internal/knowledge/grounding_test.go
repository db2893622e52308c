package knowledge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animalloo/animalloo-backend/internal/knowledge/knowledgetest"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

func TestBucketOfPriority(t *testing.T) {
	assert.Equal(t, BucketSymptoms, BucketOf("http://knowledgemap.kr/koah/symptom/12"))
	assert.Equal(t, BucketDiseases, BucketOf("http://knowledgemap.kr/koah/disease/7"))
	assert.Equal(t, BucketMetadata, BucketOf("http://knowledgemap.kr/koah/def/Dog"))
	assert.Equal(t, BucketMetadata, BucketOf("http://www.wikidata.org/entity/Q144"))
}

func TestGroundDedupsNormalizesAndSanitizes(t *testing.T) {
	rows := []sparql.Binding{
		knowledgetest.Row("s", "https://knowledgemap.kr/koah/disease/1", "o", "슬개골 탈구\n#정형외과"),
		knowledgetest.Row("s", "http://knowledgemap.kr/koah/disease/1", "o", "중복 행"),
		knowledgetest.Row("s", "http://knowledgemap.kr/koah/symptom/3", "o", "파행"),
		knowledgetest.Row("s", "http://knowledgemap.kr/koah/def/Dog", "o", "개"),
		knowledgetest.Row("s", "http://knowledgemap.kr/koah/disease/2", "o", "슬개골 탈구\n정형외과"),
		knowledgetest.Row("s", "http://knowledgemap.kr/koah/symptom/4", "o", "파행"),
	}
	g := Ground("슬개골", rows)

	assert.Equal(t, []string{"슬개골 탈구 정형외과", "파행", "개"}, g.Lines)
	assert.Equal(t, map[string]int{BucketDiseases: 1, BucketSymptoms: 1, BucketMetadata: 1}, g.Buckets)
	assert.Equal(t, "- 슬개골 탈구 정형외과\n- 파행\n- 개", g.Text())
}

func TestContextBuilderEmpty(t *testing.T) {
	exec := knowledgetest.NewExecutor()
	b := NewContextBuilder(exec, NewBuilder(), logger.NewNop())

	g, err := b.Build(context.Background(), "없는단어")
	require.NoError(t, err)
	assert.True(t, g.Empty())
	assert.Equal(t, "", g.Text())
	assert.Equal(t, 1, exec.Calls())
}

func TestContextBuilderPropagatesGraphFailure(t *testing.T) {
	exec := knowledgetest.NewExecutor().Fail("REGEX", &sparql.Error{Kind: sparql.KindUnavailable})
	b := NewContextBuilder(exec, NewBuilder(), logger.NewNop())

	_, err := b.Build(context.Background(), "슬개골")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sparql.ErrGraphUnavailable))
}

func TestContextBuilderRejectsEmptyKeyword(t *testing.T) {
	exec := knowledgetest.NewExecutor()
	b := NewContextBuilder(exec, NewBuilder(), logger.NewNop())

	_, err := b.Build(context.Background(), `  "" `)
	assert.ErrorIs(t, err, ErrEmptyKeyword)
	assert.Zero(t, exec.Calls())
}
