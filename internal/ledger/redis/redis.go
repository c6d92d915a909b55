// Package redis provides a Redis-backed budget ledger for multi-instance
// deployments.
//
// Each month is one hash holding "<backend>.limit" and "<backend>.spend"
// fields. Spend is increased with HINCRBYFLOAT inside a Lua script so a
// window is never created for a backend without a ceiling.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/davidbz/policybot/internal/domain"
)

const (
	limitField = "limit"
	spendField = "spend"
)

// Ledger is a Redis-backed BudgetLedger.
type Ledger struct {
	client    goredis.Cmdable
	keyPrefix string
	limits    map[domain.BackendID]float64
}

var _ domain.BudgetAdmin = (*Ledger)(nil)

// Option configures Ledger.
type Option func(*Ledger)

// WithKeyPrefix sets the Redis key prefix (default "policybot:budget:").
func WithKeyPrefix(prefix string) Option {
	return func(l *Ledger) { l.keyPrefix = prefix }
}

// New creates a Redis ledger that provisions each month with the given ceilings.
// The client must be a connected *goredis.Client or *goredis.ClusterClient.
func New(client goredis.Cmdable, limits map[domain.BackendID]float64, opts ...Option) *Ledger {
	copied := make(map[domain.BackendID]float64, len(limits))
	for id, limit := range limits {
		copied[id] = limit
	}

	l := &Ledger{
		client:    client,
		keyPrefix: "policybot:budget:",
		limits:    copied,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Ledger) monthKey(month string) string {
	return l.keyPrefix + month
}

func field(backend domain.BackendID, name string) string {
	return string(backend) + "." + name
}

// recordScript adds spend to an existing window, or creates it when a ceiling
// is configured.
// KEYS[1] = month hash key
// ARGV[1] = limit field
// ARGV[2] = spend field
// ARGV[3] = configured limit, empty when the backend has none
// ARGV[4] = amount
//
// Returns 1 when spend was recorded, 0 when the backend has no window.
var recordScript = goredis.NewScript(`
local month_key = KEYS[1]
if redis.call("HEXISTS", month_key, ARGV[1]) == 0 then
    if ARGV[3] == "" then
        return 0
    end
    redis.call("HSET", month_key, ARGV[1], ARGV[3])
end
redis.call("HINCRBYFLOAT", month_key, ARGV[2], ARGV[4])
return 1
`)

// GetWindows provisions missing windows with HSETNX and reads the month hash.
func (l *Ledger) GetWindows(ctx context.Context, month string) (map[domain.BackendID]domain.BudgetWindow, error) {
	key := l.monthKey(month)

	if len(l.limits) > 0 {
		_, err := l.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
			for backend, limit := range l.limits {
				pipe.HSetNX(ctx, key, field(backend, limitField), limit)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: redis provision %s: %w", domain.ErrStorage, month, err)
		}
	}

	values, err := l.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: redis windows %s: %w", domain.ErrStorage, month, err)
	}

	windows, err := parseWindows(month, values)
	if err != nil {
		return nil, fmt.Errorf("%w: redis windows %s: %w", domain.ErrStorage, month, err)
	}
	return windows, nil
}

// RecordSpend atomically adds amount to a window.
func (l *Ledger) RecordSpend(ctx context.Context, backend domain.BackendID, month string, amount float64) error {
	var limit any = ""
	if configured, ok := l.limits[backend]; ok {
		limit = configured
	}

	_, err := recordScript.Run(ctx, l.client,
		[]string{l.monthKey(month)},
		field(backend, limitField), field(backend, spendField), limit, amount,
	).Int64()
	if err != nil {
		return fmt.Errorf("%w: redis record spend: %w", domain.ErrStorage, err)
	}
	return nil
}

// SetLimit writes the ceiling field, leaving spend untouched.
func (l *Ledger) SetLimit(ctx context.Context, backend domain.BackendID, month string, limit float64) error {
	if err := l.client.HSet(ctx, l.monthKey(month), field(backend, limitField), limit).Err(); err != nil {
		return fmt.Errorf("%w: redis set limit: %w", domain.ErrStorage, err)
	}
	return nil
}

// parseWindows turns "<backend>.limit"/"<backend>.spend" fields into windows.
// A backend with spend but no limit field is not a window.
func parseWindows(month string, values map[string]string) (map[domain.BackendID]domain.BudgetWindow, error) {
	windows := make(map[domain.BackendID]domain.BudgetWindow)
	spends := make(map[domain.BackendID]float64)

	for name, raw := range values {
		idx := strings.LastIndex(name, ".")
		if idx <= 0 {
			continue
		}
		backend := domain.BackendID(name[:idx])

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}

		switch name[idx+1:] {
		case limitField:
			windows[backend] = domain.BudgetWindow{Backend: backend, Month: month, Limit: value}
		case spendField:
			spends[backend] = value
		}
	}

	for backend, spend := range spends {
		if window, ok := windows[backend]; ok {
			window.Spend = spend
			windows[backend] = window
		}
	}

	return windows, nil
}
