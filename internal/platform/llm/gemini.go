package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"

	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *logger.Logger
}

func NewGemini(ctx context.Context, cfg Config, log *logger.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: create gemini client: %w", err)
	}
	model := cfg.GeminiModel
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Gemini{
		client:  client,
		model:   model,
		timeout: cfg.Timeout,
		log:     log.With("client", "Gemini", "model", model),
	}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (out string, err error) {
	ctx, span := otel.Tracer("animalloo/llm").Start(ctx, "llm.generate")
	span.SetAttributes(attribute.String("llm.provider", "gemini"), attribute.String("llm.model", g.model))
	start := time.Now()
	defer func() {
		observe("gemini", start, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "generation failed")
		}
		span.End()
	}()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.log.Warn("gemini generate failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}
	return text, nil
}
