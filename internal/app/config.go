package app

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/animalloo/animalloo-backend/internal/http/middleware"
	"github.com/animalloo/animalloo-backend/internal/platform/envutil"
	"github.com/animalloo/animalloo-backend/internal/platform/llm"
	"github.com/animalloo/animalloo-backend/internal/platform/opendata"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

type Config struct {
	Env      string `validate:"required"`
	LogMode  string `validate:"oneof=development production prod"`
	Port     int    `validate:"min=1,max=65535"`
	Shutdown time.Duration

	GraphEndpoint string `validate:"required,url"`
	GraphUser     string `validate:"required_with=GraphPassword"`
	GraphPassword string
	GraphTimeout  time.Duration `validate:"gt=0"`

	DictionariesPath string `validate:"omitempty,file"`

	OpenDataBaseURL string        `validate:"required,url"`
	OpenDataKey     string        `validate:"required"`
	OpenDataService string        `validate:"required"`
	OpenDataTimeout time.Duration `validate:"gt=0"`

	LLM llm.Config

	JWTSecretKey string
	DBDriver     string `validate:"oneof=sqlite sqlite3 postgres postgresql"`
	DBDSN        string `validate:"required"`

	RedisAddr              string   `validate:"omitempty,hostname_port"`
	ChatRateLimitPerMinute int      `validate:"min=0"`
	AllowedOrigins         []string `validate:"dive,url"`
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Env:      envutil.String("APP_ENV", "development"),
		LogMode:  envutil.String("LOG_MODE", "development"),
		Port:     envutil.Int("PORT", 8080),
		Shutdown: envutil.Seconds("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),

		GraphEndpoint: envutil.String("GRAPHDB_ENDPOINT", "http://localhost:7200/repositories/knowledgemap"),
		GraphUser:     envutil.String("GRAPHDB_USER", ""),
		GraphPassword: envutil.String("GRAPHDB_PASSWORD", ""),
		GraphTimeout:  envutil.Seconds("GRAPHDB_TIMEOUT_SECONDS", 10*time.Second),

		DictionariesPath: envutil.String("KNOWLEDGE_DICTIONARIES_PATH", ""),

		OpenDataBaseURL: envutil.String("SEOUL_API_BASE_URL", "http://openapi.seoul.go.kr:8088"),
		OpenDataKey:     envutil.String("SEOUL_API_KEY", "sample"),
		OpenDataService: envutil.String("SEOUL_SERVICE_NAME", "vPetInfo"),
		OpenDataTimeout: envutil.Seconds("OPENDATA_TIMEOUT_SECONDS", 10*time.Second),

		LLM: llm.ConfigFromEnv(),

		JWTSecretKey: envutil.String("JWT_SECRET_KEY", ""),
		DBDriver:     envutil.String("DB_DRIVER", "sqlite"),
		DBDSN:        envutil.String("DB_DSN", "file:animalloo.db"),

		RedisAddr:              envutil.String("REDIS_ADDR", ""),
		ChatRateLimitPerMinute: envutil.Int("CHAT_RATE_LIMIT_PER_MINUTE", 20),
		AllowedOrigins:         envutil.CSV("CORS_ALLOWED_ORIGINS", middleware.DefaultAllowedOrigins),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }

func (c Config) GraphConfig() sparql.Config {
	return sparql.Config{
		Endpoint: c.GraphEndpoint,
		User:     c.GraphUser,
		Password: c.GraphPassword,
		Timeout:  c.GraphTimeout,
	}
}

func (c Config) OpenDataConfig() opendata.Config {
	return opendata.Config{
		BaseURL: c.OpenDataBaseURL,
		APIKey:  c.OpenDataKey,
		Service: c.OpenDataService,
		Timeout: c.OpenDataTimeout,
	}
}

// FavoritesEnabled reports whether tokens can be verified at all.
func (c Config) FavoritesEnabled() bool { return c.JWTSecretKey != "" }
