package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animalloo/animalloo-backend/internal/knowledge"
	"github.com/animalloo/animalloo-backend/internal/knowledge/knowledgetest"
	"github.com/animalloo/animalloo-backend/internal/platform/llm"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

func newChat(t *testing.T, exec sparql.Executor, gen llm.Generator) ChatService {
	t.Helper()
	d, err := knowledge.DefaultDictionaries()
	require.NoError(t, err)
	grounder := knowledge.NewContextBuilder(exec, knowledge.NewBuilder(), nopLog())
	return NewChatService(nopLog(), d, grounder, gen)
}

func TestBuildChatPromptEmptyContext(t *testing.T) {
	prompt := BuildChatPrompt("슬개골 탈구가 뭐예요?", knowledge.GroundingContext{})
	assert.Contains(t, prompt, "no data found")
	assert.NotContains(t, prompt, GroundingHeader+"\n")
	assert.NotContains(t, prompt, "[veterinary database info]\n")
	assert.Contains(t, prompt, "사용자 질문: 슬개골 탈구가 뭐예요?")
}

func TestBuildChatPromptWithContext(t *testing.T) {
	g := knowledge.GroundingContext{Lines: []string{"슬개골 탈구는 소형견에게 흔하다"}}
	prompt := BuildChatPrompt("슬개골", g)
	assert.Contains(t, prompt, "[veterinary database info]\n- 슬개골 탈구는 소형견에게 흔하다")
	assert.NotContains(t, prompt, NoDataHeader)
}

func TestChatEmptyGroundingStillAnswers(t *testing.T) {
	gen := &fakeGenerator{answer: "관련 정보를 찾지 못했어요 🐶"}
	svc := newChat(t, knowledgetest.NewExecutor(), gen)

	answer, err := svc.Reply(context.Background(), "슬개골 탈구에 대해 알려줘")
	require.NoError(t, err)
	assert.Equal(t, "관련 정보를 찾지 못했어요 🐶", answer)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "no data found")
	assert.NotContains(t, gen.prompts[0], "[veterinary database info]\n")
}

func TestChatGroundedPrompt(t *testing.T) {
	exec := knowledgetest.NewExecutor().On("REGEX",
		row("s", "http://knowledgemap.kr/koah/disease/1", "o", "슬개골 탈구: 무릎뼈가 빠지는 질환"))
	gen := &fakeGenerator{answer: "ok"}
	svc := newChat(t, exec, gen)

	_, err := svc.Reply(context.Background(), "슬개골 탈구에 대해 알려줘")
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "[veterinary database info]\n- 슬개골 탈구: 무릎뼈가 빠지는 질환")
	assert.Contains(t, exec.Queries()[0], `"슬개골"`)
}

func TestChatErrors(t *testing.T) {
	gen := &fakeGenerator{answer: "ok"}
	svc := newChat(t, knowledgetest.NewExecutor(), gen)
	_, err := svc.Reply(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Empty(t, gen.prompts)

	failing := knowledgetest.NewExecutor().Fail("REGEX", &sparql.Error{Kind: sparql.KindUnavailable})
	svc = newChat(t, failing, gen)
	_, err = svc.Reply(context.Background(), "고양이")
	assert.True(t, errors.Is(err, sparql.ErrGraphUnavailable))
	assert.Empty(t, gen.prompts)

	svc = newChat(t, knowledgetest.NewExecutor(), &fakeGenerator{err: llm.ErrGenerationFailed})
	_, err = svc.Reply(context.Background(), "고양이")
	assert.ErrorIs(t, err, llm.ErrGenerationFailed)
}

func TestChatQuoteOnlyMessageUsesNoDataPrompt(t *testing.T) {
	exec := knowledgetest.NewExecutor()
	gen := &fakeGenerator{answer: "관련 정보를 찾지 못했어요"}
	svc := newChat(t, exec, gen)

	answer, err := svc.Reply(context.Background(), `"'"`)
	require.NoError(t, err)
	assert.Equal(t, "관련 정보를 찾지 못했어요", answer)
	assert.Zero(t, exec.Calls())
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "no data found")
}

func TestChatUnconfiguredGeneratorFailsBeforeGraph(t *testing.T) {
	exec := knowledgetest.NewExecutor().Fail("REGEX", &sparql.Error{Kind: sparql.KindUnavailable})
	svc := newChat(t, exec, llm.Unconfigured{})

	_, err := svc.Reply(context.Background(), "고양이")
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
	assert.Zero(t, exec.Calls())

	svc = newChat(t, exec, nil)
	_, err = svc.Reply(context.Background(), "고양이")
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
	assert.Zero(t, exec.Calls())
}
