package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	rediscache "github.com/davidbz/policybot/internal/cache/redis"
	"github.com/davidbz/policybot/internal/config"
	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/http"
	"github.com/davidbz/policybot/internal/http/middleware"
	"github.com/davidbz/policybot/internal/ledger/memory"
	"github.com/davidbz/policybot/internal/ledger/postgres"
	redisledger "github.com/davidbz/policybot/internal/ledger/redis"
	"github.com/davidbz/policybot/internal/observability"
	"github.com/davidbz/policybot/internal/provider/anthropic"
	"github.com/davidbz/policybot/internal/provider/echo"
	"github.com/davidbz/policybot/internal/provider/ollama"
	"github.com/davidbz/policybot/internal/provider/openai"
	"github.com/davidbz/policybot/internal/provider/registry"
	"github.com/davidbz/policybot/internal/reference"
	"github.com/davidbz/policybot/internal/reference/wikijs"
	"github.com/davidbz/policybot/internal/routing"
	"github.com/davidbz/policybot/internal/storage/sqlite"
)

// closers collects the resources opened by providers, released in reverse order.
type closers struct {
	fns []func() error
}

func (c *closers) add(fn func() error) {
	c.fns = append(c.fns, fn)
}

// Close releases every resource and joins the failures.
func (c *closers) Close() error {
	var errs []error
	for i := len(c.fns) - 1; i >= 0; i-- {
		if err := c.fns[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.fns = nil
	return errors.Join(errs...)
}

func buildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []struct {
		name        string
		constructor any
	}{
		// Configuration
		{"config", loadConfig},
		{"config dependencies", config.ParseDependenciesConfig},
		{"closers", func() *closers { return &closers{} }},

		// Observability
		{"logger", observability.InitLogger},
		{"event bus", newEventBus},

		// Backends
		{"pricing table", newPricingTable},
		{"cost calculator", newCostCalculator},
		{"registry", newRegistry},

		// Storage
		{"sqlite store", newStore},
		{"conversation store", func(s *sqlite.Store) domain.ConversationStore { return s }},
		{"analytics store", func(s *sqlite.Store) domain.AnalyticsStore { return s }},
		{"redis client", newRedisClient},
		{"budget ledger", newLedger},
		{"budget ledger view", func(a domain.BudgetAdmin) domain.BudgetLedger { return a }},

		// Domain services
		{"selector", newSelector},
		{"dispatcher", domain.NewDispatcher},
		{"usage recorder", domain.NewUsageRecorder},
		{"chat service", newChatService},

		// Reference material
		{"reference cache", newReferenceCache},
		{"wiki client", wikijs.NewClient},
		{"reference service", newReferenceService},

		// HTTP layer
		{"middleware", middleware.BuildMiddlewareChain},
		{"handler", http.NewHandler},
		{"server", http.NewServer},
	}

	for _, p := range providers {
		if err := container.Provide(p.constructor); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", p.name, err)
		}
	}

	// The base logger must be installed before any provider logs.
	if err := container.Invoke(func(*zap.Logger) {}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return container, nil
}

func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newEventBus(logger *zap.Logger) domain.EventPublisher {
	return observability.NewEventBus(logger)
}

type pricingParams struct {
	dig.In

	Chatbot   *config.ChatbotConfig
	OpenAI    *openai.Config
	Anthropic *anthropic.Config
}

// newPricingTable fails when a configured paid backend would answer with an
// unpriced model.
func newPricingTable(p pricingParams) (*domain.PricingTable, error) {
	ctx := context.Background()
	table := domain.NewPricingTable(nil)

	if err := openai.RegisterPricing(ctx, table); err != nil {
		return nil, fmt.Errorf("openai pricing: %w", err)
	}
	if err := anthropic.RegisterPricing(ctx, table); err != nil {
		return nil, fmt.Errorf("anthropic pricing: %w", err)
	}
	if err := config.ApplyPricing(ctx, p.Chatbot.PricingFile, table); err != nil {
		return nil, err
	}

	paid := []struct {
		backend domain.BackendID
		apiKey  string
		model   string
	}{
		{domain.BackendOpenAI, p.OpenAI.APIKey, p.OpenAI.Model},
		{domain.BackendAnthropic, p.Anthropic.APIKey, p.Anthropic.Model},
	}
	for _, b := range paid {
		if b.apiKey == "" {
			continue
		}
		if _, err := table.GetPricing(ctx, b.model); err != nil {
			return nil, fmt.Errorf("%s backend: %w", b.backend, err)
		}
	}

	return table, nil
}

func newCostCalculator(table *domain.PricingTable) domain.CostCalculator {
	return domain.NewStandardCostCalculator(table)
}

type registryParams struct {
	dig.In

	Chatbot    *config.ChatbotConfig
	Ollama     *ollama.Config
	OpenAI     *openai.Config
	Anthropic  *anthropic.Config
	Calculator domain.CostCalculator
}

// newRegistry registers every backend. Paid backends without credentials stay
// registered and report themselves unconfigured.
func newRegistry(p registryParams) (domain.BackendRegistry, error) {
	ctx := context.Background()
	logger := observability.FromContext(ctx)
	reg := registry.NewRegistry()

	var free domain.Backend
	if p.Chatbot.Offline {
		free = echo.NewProvider()
		logger.Warn("offline mode: echo backend answers as the free backend")
	} else {
		local, err := ollama.NewProvider(p.Ollama)
		if err != nil {
			return nil, err
		}
		free = local
	}

	backends := []domain.Backend{
		free,
		openai.NewProvider(p.OpenAI, p.Calculator),
		anthropic.NewProvider(p.Anthropic, p.Calculator),
	}

	for _, backend := range backends {
		if err := reg.Register(ctx, backend); err != nil {
			return nil, fmt.Errorf("failed to register %s backend: %w", backend.ID(), err)
		}
		logger.Info("backend registered",
			observability.String("backend", string(backend.ID())),
			observability.Bool("configured", backend.Configured()))
	}

	return reg, nil
}

func newStore(storage *config.StorageConfig, budget *config.BudgetConfig, c *closers) (*sqlite.Store, error) {
	store, err := sqlite.New(storage.DBPath, budget.Limits())
	if err != nil {
		return nil, err
	}
	c.add(store.Close)
	return store, nil
}

// newRedisClient returns nil when REDIS_ADDR is unset.
func newRedisClient(cfg *config.RedisConfig, c *closers) *goredis.Client {
	if cfg.Addr == "" {
		return nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	c.add(client.Close)
	return client
}

type ledgerParams struct {
	dig.In

	Storage  *config.StorageConfig
	Budget   *config.BudgetConfig
	Postgres *config.PostgresConfig
	Store    *sqlite.Store
	Redis    *goredis.Client
	Closers  *closers
}

func newLedger(p ledgerParams) (domain.BudgetAdmin, error) {
	ctx := context.Background()
	limits := p.Budget.Limits()

	observability.FromContext(ctx).Info("budget ledger selected",
		observability.String("ledger", p.Storage.LedgerBackend))

	switch p.Storage.LedgerBackend {
	case config.LedgerSQLite:
		return p.Store, nil

	case config.LedgerMemory:
		return memory.New(limits), nil

	case config.LedgerRedis:
		if p.Redis == nil {
			return nil, errors.New("redis ledger requires REDIS_ADDR")
		}
		return redisledger.New(p.Redis, limits), nil

	case config.LedgerPostgres:
		pool, err := pgxpool.New(ctx, p.Postgres.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		p.Closers.add(func() error { pool.Close(); return nil })

		ledger := postgres.New(pool, limits)
		if err := ledger.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return ledger, nil

	default:
		return nil, fmt.Errorf("unknown ledger backend %q", p.Storage.LedgerBackend)
	}
}

func newSelector(
	cfg *routing.Config,
	reg domain.BackendRegistry,
	ledger domain.BudgetLedger,
) domain.Selector {
	return routing.NewSelector(cfg, reg, ledger)
}

func newChatService(
	dispatcher *domain.Dispatcher,
	recorder *domain.UsageRecorder,
	privacy *domain.PrivacyPolicy,
) *domain.ChatService {
	return domain.NewChatService(dispatcher, recorder, *privacy, nil)
}

// newReferenceCache keeps pages in Redis when it is configured, in process otherwise.
func newReferenceCache(client *goredis.Client) domain.ReferenceCache {
	if client == nil {
		return reference.NewMemoryCache()
	}
	return rediscache.NewPageCache(client, "")
}

func newReferenceService(
	wiki *wikijs.Client,
	cache domain.ReferenceCache,
	cfg *wikijs.Config,
	events domain.EventPublisher,
) domain.ReferenceSource {
	return reference.NewService(wiki, cache, cfg, events)
}
