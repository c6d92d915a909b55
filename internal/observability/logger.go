package observability

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Global logger instance - shared across the application.
// Loggers are never stored in context; only the fields they carry are.
//
//nolint:gochecknoglobals // Singleton logger is a standard pattern
var (
	globalLogger *zap.Logger
	loggerMu     sync.RWMutex
)

// Config selects the log level and encoding.
type Config struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Development switches to the human-readable console encoder.
	Development bool `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// InitLogger builds the base logger from cfg and installs it (called once at startup).
// A nil cfg yields the production logger at info level.
func InitLogger(cfg *Config) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if cfg != nil && cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if cfg != nil && cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
		}
		zapConfig.Level = level
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	SetLogger(logger)

	return logger, nil
}

// SetLogger replaces the base logger. Tests use it to capture output.
func SetLogger(logger *zap.Logger) {
	loggerMu.Lock()
	globalLogger = logger
	loggerMu.Unlock()
}

func getBaseLogger() *zap.Logger {
	loggerMu.RLock()
	logger := globalLogger
	loggerMu.RUnlock()

	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return logger
}

// FromContext returns the base logger annotated with the request-scoped
// identifiers found in ctx.
func FromContext(ctx context.Context) *zap.Logger {
	return getBaseLogger().With(ContextFields(ctx)...)
}
