// Package redis caches processed reference pages in Redis hashes.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/observability"
)

const (
	defaultKeyPrefix = "policybot:reference:"
	scanBatchSize    = 100
)

// PageCache implements domain.ReferenceCache using one hash per page.
type PageCache struct {
	client    redis.Cmdable
	keyPrefix string
}

var _ domain.ReferenceCache = (*PageCache)(nil)

// NewPageCache creates a new Redis page cache. An empty prefix uses the default.
func NewPageCache(client redis.Cmdable, keyPrefix string) *PageCache {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &PageCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (c *PageCache) key(pageID int) string {
	return c.keyPrefix + strconv.Itoa(pageID)
}

// Get returns a cached page, or nil when the key is missing or expired.
func (c *PageCache) Get(ctx context.Context, pageID int) (*domain.ReferencePage, error) {
	fields, err := c.client.HGetAll(ctx, c.key(pageID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	page, err := parsePage(pageID, fields)
	if err != nil {
		observability.FromContext(ctx).Warn("dropping unreadable cached page",
			observability.Int("page_id", pageID),
			observability.Error(err))
		return nil, nil
	}

	return page, nil
}

// Put stores a page and sets its expiry in one pipeline.
func (c *PageCache) Put(ctx context.Context, page *domain.ReferencePage, ttl time.Duration) error {
	logger := observability.FromContext(ctx)

	tags, err := json.Marshal(page.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	key := c.key(page.ID)
	pipe := c.client.TxPipeline()

	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		"path", page.Path,
		"title", page.Title,
		"simple", page.Simple,
		"medium", page.Medium,
		"detailed", page.Detailed,
		"tags", string(tags),
		"region", page.Region,
		"fetched_at", page.FetchedAt.Unix(),
	)

	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}

	if _, execErr := pipe.Exec(ctx); execErr != nil {
		logger.Error("reference cache write failed",
			observability.Error(execErr))
		return fmt.Errorf("failed to cache page: %w", execErr)
	}

	logger.Debug("reference page cached",
		observability.Int("page_id", page.ID),
		observability.Duration("ttl", ttl))
	return nil
}

// Delete drops one page.
func (c *PageCache) Delete(ctx context.Context, pageID int) (int, error) {
	n, err := c.client.Del(ctx, c.key(pageID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to delete page: %w", err)
	}
	return int(n), nil
}

// Flush drops every page under the key prefix.
func (c *PageCache) Flush(ctx context.Context) (int, error) {
	deleted := 0
	iter := c.client.Scan(ctx, 0, c.keyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		n, err := c.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return deleted, fmt.Errorf("failed to delete page: %w", err)
		}
		deleted += int(n)
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("failed to scan pages: %w", err)
	}

	observability.FromContext(ctx).Info("reference cache flushed",
		observability.Int("pages_invalidated", deleted))
	return deleted, nil
}

// parsePage rebuilds a page from its hash fields.
func parsePage(pageID int, fields map[string]string) (*domain.ReferencePage, error) {
	page := &domain.ReferencePage{
		ID:       pageID,
		Path:     fields["path"],
		Title:    fields["title"],
		Simple:   fields["simple"],
		Medium:   fields["medium"],
		Detailed: fields["detailed"],
		Region:   fields["region"],
	}

	if raw := fields["tags"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &page.Tags); err != nil {
			return nil, fmt.Errorf("tags: %w", err)
		}
	}

	if raw, ok := fields["fetched_at"]; ok {
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("fetched_at: %w", err)
		}
		page.FetchedAt = time.Unix(ts, 0).UTC()
	}

	return page, nil
}
