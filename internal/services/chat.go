package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/animalloo/animalloo-backend/internal/knowledge"
	"github.com/animalloo/animalloo-backend/internal/platform/llm"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

type ChatService interface {
	Reply(ctx context.Context, message string) (string, error)
}

type Grounder interface {
	Build(ctx context.Context, keyword string) (knowledge.GroundingContext, error)
}

type chatService struct {
	log       *logger.Logger
	dicts     knowledge.Dictionaries
	grounder  Grounder
	generator llm.Generator
}

func NewChatService(log *logger.Logger, dicts knowledge.Dictionaries, grounder Grounder, generator llm.Generator) ChatService {
	serviceLog := log.With("service", "ChatService")
	return &chatService{log: serviceLog, dicts: dicts, grounder: grounder, generator: generator}
}

// Reply grounds the message in the graph and asks the generator for an answer.
// Graph failures are returned; an empty grounding only changes the prompt.
func (cs *chatService) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: message required", ErrInvalidRequest)
	}
	if !llm.Configured(cs.generator) {
		return "", llm.ErrNotConfigured
	}

	keyword := knowledge.ExtractKeyword(message, cs.dicts)
	grounding := knowledge.GroundingContext{Keyword: keyword}
	if knowledge.SanitizeText(keyword) == "" {
		cs.log.Info("chat message has no searchable keyword")
	} else {
		var err error
		grounding, err = cs.grounder.Build(ctx, keyword)
		if err != nil {
			cs.log.Warn("chat grounding failed", "keyword", keyword, "error", err)
			return "", err
		}
	}

	prompt := BuildChatPrompt(message, grounding)
	answer, err := cs.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	cs.log.Info("chat reply",
		"keyword", keyword,
		"grounded", !grounding.Empty(),
		"grounding_lines", len(grounding.Lines),
		"answer_chars", len([]rune(answer)),
	)
	return answer, nil
}
