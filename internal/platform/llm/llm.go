package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/animalloo/animalloo-backend/internal/platform/envutil"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

var (
	ErrGenerationFailed = errors.New("text generation failed")
	ErrNotConfigured    = errors.New("text generation is not configured")
)

// Generator turns one composed prompt into a completion.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var generateDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "animalloo",
		Subsystem: "llm",
		Name:      "generate_duration_seconds",
		Help:      "Latency of text generation calls.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
	},
	[]string{"provider", "outcome"},
)

func observe(provider string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	generateDuration.WithLabelValues(provider, outcome).Observe(time.Since(start).Seconds())
}

type Config struct {
	Provider      string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	Timeout       time.Duration
}

func ConfigFromEnv() Config {
	return Config{
		Provider:      strings.ToLower(envutil.String("LLM_PROVIDER", "gemini")),
		GeminiAPIKey:  envutil.String("GEMINI_API_KEY", ""),
		GeminiModel:   envutil.String("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey:  envutil.String("OPENAI_API_KEY", ""),
		OpenAIModel:   envutil.String("OPENAI_MODEL", "gpt-4.1-mini"),
		OpenAIBaseURL: envutil.String("OPENAI_BASE_URL", "https://api.openai.com"),
		Timeout:       envutil.Seconds("LLM_TIMEOUT_SECONDS", 60*time.Second),
	}
}

// New builds the configured generator. A missing API key is not an error at
// start-up: the returned generator reports ErrNotConfigured on every call.
func New(ctx context.Context, cfg Config, log *logger.Logger) (Generator, error) {
	switch cfg.Provider {
	case "", "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Warn("GEMINI_API_KEY not set; chat disabled")
			return Unconfigured{}, nil
		}
		return NewGemini(ctx, cfg, log)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Warn("OPENAI_API_KEY not set; chat disabled")
			return Unconfigured{}, nil
		}
		return NewOpenAI(cfg, log)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

// Configured reports whether g can serve requests.
func Configured(g Generator) bool {
	switch g.(type) {
	case nil, Unconfigured, *Unconfigured:
		return false
	}
	return true
}

// Unconfigured fails every call with ErrNotConfigured.
type Unconfigured struct{}

func (Unconfigured) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
