package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/observability"
	"github.com/davidbz/policybot/internal/provider/anthropic"
	"github.com/davidbz/policybot/internal/provider/ollama"
	"github.com/davidbz/policybot/internal/provider/openai"
	"github.com/davidbz/policybot/internal/reference/wikijs"
	"github.com/davidbz/policybot/internal/routing"
)

// Ledger backends.
const (
	LedgerSQLite   = "sqlite"
	LedgerRedis    = "redis"
	LedgerPostgres = "postgres"
	LedgerMemory   = "memory"
)

// Config represents the chatbot configuration.
type Config struct {
	Server    ServerConfig
	Logging   observability.Config
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Chatbot   ChatbotConfig
	Budget    BudgetConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Postgres  PostgresConfig
	Routing   routing.Config
	Privacy   domain.PrivacyPolicy
	Ollama    ollama.Config
	OpenAI    openai.Config
	Anthropic anthropic.Config
	WikiJS    wikijs.Config
}

// ServerConfig contains HTTP server settings. WriteTimeout must outlast a paid
// backend timing out followed by the full free fallback.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"5001"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"120"`
}

// RateLimitConfig bounds the request rate across all clients. A zero rate disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS"   envDefault:"20"`
	Burst             int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// ChatbotConfig contains service-wide switches.
type ChatbotConfig struct {
	// Offline replaces the Ollama backend with the in-process echo backend.
	Offline bool `env:"CHATBOT_OFFLINE" envDefault:"false"`

	// PricingFile is an optional YAML file overriding per-model rates.
	PricingFile string `env:"CHATBOT_PRICING_FILE"`
}

// BudgetConfig contains the monthly ceilings of the paid backends in USD.
type BudgetConfig struct {
	OpenAI    float64 `env:"CHATBOT_OPENAI_BUDGET"    envDefault:"30"`
	Anthropic float64 `env:"CHATBOT_ANTHROPIC_BUDGET" envDefault:"50"`
}

// Limits returns the ceilings keyed by backend.
func (b *BudgetConfig) Limits() map[domain.BackendID]float64 {
	return map[domain.BackendID]float64{
		domain.BackendOpenAI:    b.OpenAI,
		domain.BackendAnthropic: b.Anthropic,
	}
}

// StorageConfig selects where the trail and the ledger live.
type StorageConfig struct {
	DBPath        string `env:"CHATBOT_DB_PATH" envDefault:"chatbot.db"`
	LedgerBackend string `env:"LEDGER_BACKEND"  envDefault:"sqlite"`
}

// RedisConfig contains Redis connection settings. An empty address disables Redis.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"       envDefault:"0"`
}

// PostgresConfig contains PostgreSQL connection settings.
type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*RateLimitConfig
	*CORSConfig
	*ChatbotConfig
	*BudgetConfig
	*StorageConfig
	*RedisConfig
	*PostgresConfig
	Logging   *observability.Config
	Routing   *routing.Config
	Privacy   *domain.PrivacyPolicy
	Ollama    *ollama.Config
	OpenAI    *openai.Config
	Anthropic *anthropic.Config
	WikiJS    *wikijs.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Routing.SimpleMax >= c.Routing.ComplexMax {
		errs = append(errs, fmt.Errorf("CHATBOT_SIMPLE_TOKENS (%d) must be below CHATBOT_COMPLEX_TOKENS (%d)",
			c.Routing.SimpleMax, c.Routing.ComplexMax))
	}

	if c.Budget.OpenAI < 0 || c.Budget.Anthropic < 0 {
		errs = append(errs, errors.New("budgets cannot be negative"))
	}

	if c.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS cannot be negative"))
	} else if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled"))
	}

	if worst := c.worstDispatchSeconds(); c.Server.WriteTimeout <= worst {
		errs = append(errs, fmt.Errorf(
			"SERVER_WRITE_TIMEOUT (%ds) must exceed the slowest paid timeout plus OLLAMA_TIMEOUT (%ds)",
			c.Server.WriteTimeout, worst))
	}

	switch c.Storage.LedgerBackend {
	case LedgerSQLite, LedgerMemory:
	case LedgerRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("LEDGER_BACKEND=redis requires REDIS_ADDR"))
		}
	case LedgerPostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("LEDGER_BACKEND=postgres requires POSTGRES_DSN"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LEDGER_BACKEND %q", c.Storage.LedgerBackend))
	}

	return errors.Join(errs...)
}

// worstDispatchSeconds is the longest a chat request can wait on backends: the
// slowest paid backend timing out, then the free fallback.
func (c *Config) worstDispatchSeconds() int {
	return max(c.OpenAI.Timeout, c.Anthropic.Timeout) + c.Ollama.Timeout
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:             dig.Out{},
		ServerConfig:    &cfg.Server,
		RateLimitConfig: &cfg.RateLimit,
		CORSConfig:      &cfg.CORS,
		ChatbotConfig:   &cfg.Chatbot,
		BudgetConfig:    &cfg.Budget,
		StorageConfig:   &cfg.Storage,
		RedisConfig:     &cfg.Redis,
		PostgresConfig:  &cfg.Postgres,
		Logging:         &cfg.Logging,
		Routing:         &cfg.Routing,
		Privacy:         &cfg.Privacy,
		Ollama:          &cfg.Ollama,
		OpenAI:          &cfg.OpenAI,
		Anthropic:       &cfg.Anthropic,
		WikiJS:          &cfg.WikiJS,
	}
}
