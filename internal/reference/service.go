// Package reference serves policy reference pages from Wiki.js through a
// cache, split into simple, medium and detailed variants.
package reference

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/observability"
	"github.com/davidbz/policybot/internal/reference/wikijs"
)

// Tags marking the pages refreshed by Sync.
//
//nolint:gochecknoglobals // fixed tag list
var syncTags = []string{"policy-priority", "policy"}

// WikiClient is the subset of the Wiki.js client the service needs.
type WikiClient interface {
	Configured() bool
	ListPages(ctx context.Context, tags []string) ([]wikijs.PageSummary, error)
	Page(ctx context.Context, id int) (*wikijs.Page, error)
	Search(ctx context.Context, query string) ([]wikijs.SearchResult, error)
}

// Service implements domain.ReferenceSource.
type Service struct {
	wiki   WikiClient
	cache  domain.ReferenceCache
	ttl    time.Duration
	events domain.EventPublisher
	now    domain.Clock
}

var _ domain.ReferenceSource = (*Service)(nil)

// NewService creates a reference service (DI constructor).
func NewService(
	wiki WikiClient,
	cache domain.ReferenceCache,
	config *wikijs.Config,
	events domain.EventPublisher,
) *Service {
	return &Service{
		wiki:   wiki,
		cache:  cache,
		ttl:    time.Duration(config.CacheTTLHours) * time.Hour,
		events: events,
		now:    time.Now,
	}
}

// WithClock replaces the clock stamped on fetched pages.
func (s *Service) WithClock(now domain.Clock) *Service {
	s.now = now
	return s
}

// LookupReference returns the page text for a sophistication level.
func (s *Service) LookupReference(ctx context.Context, pageID int, level domain.Sophistication) (string, error) {
	page, _, err := s.Page(ctx, pageID)
	if err != nil {
		return "", err
	}
	return page.Content(level), nil
}

// Page serves a page from the cache, fetching and caching it on a miss.
// Cache failures degrade to a live fetch.
func (s *Service) Page(ctx context.Context, pageID int) (*domain.ReferencePage, bool, error) {
	if pageID <= 0 {
		return nil, false, fmt.Errorf("%w: page id must be positive", domain.ErrValidation)
	}

	logger := observability.FromContext(ctx)

	cached, err := s.cache.Get(ctx, pageID)
	if err != nil {
		logger.Warn("reference cache read failed",
			observability.Int("page_id", pageID),
			observability.Error(err))
	}
	if cached != nil {
		return cached, true, nil
	}

	page, err := s.fetch(ctx, pageID)
	if err != nil {
		return nil, false, err
	}

	if putErr := s.cache.Put(ctx, page, s.ttl); putErr != nil {
		logger.Warn("reference cache write failed",
			observability.Int("page_id", pageID),
			observability.Error(putErr))
	}

	return page, false, nil
}

// Search runs a live wiki search.
func (s *Service) Search(ctx context.Context, query string) ([]domain.ReferenceSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query parameter required", domain.ErrValidation)
	}
	if !s.wiki.Configured() {
		return nil, fmt.Errorf("%w: wiki api key not configured", domain.ErrReferenceUnavailable)
	}

	hits, err := s.wiki.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: search: %w", domain.ErrReferenceUnavailable, err)
	}

	results := make([]domain.ReferenceSearchResult, 0, len(hits))
	for _, hit := range hits {
		id, _ := strconv.Atoi(hit.ID)
		results = append(results, domain.ReferenceSearchResult{
			PageID:  id,
			Title:   hit.Title,
			Path:    hit.Path,
			Excerpt: hit.Description,
		})
	}

	return results, nil
}

// Sync fetches every policy page and refreshes the cache.
func (s *Service) Sync(ctx context.Context) (int, error) {
	if !s.wiki.Configured() {
		return 0, fmt.Errorf("%w: wiki api key not configured", domain.ErrReferenceUnavailable)
	}

	summaries, err := s.wiki.ListPages(ctx, syncTags)
	if err != nil {
		return 0, fmt.Errorf("%w: list pages: %w", domain.ErrReferenceUnavailable, err)
	}

	synced := 0
	for _, summary := range summaries {
		page, err := s.fetch(ctx, summary.ID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return synced, err
		}

		if err := s.cache.Put(ctx, page, s.ttl); err != nil {
			return synced, fmt.Errorf("%w: cache page %d: %w", domain.ErrStorage, page.ID, err)
		}
		synced++
	}

	observability.FromContext(ctx).Info("reference pages synced",
		observability.Int("pages_listed", len(summaries)),
		observability.Int("pages_synced", synced))

	if s.events != nil {
		s.events.Publish(ctx, observability.EventReferenceSynced, map[string]interface{}{
			"pages_synced": synced,
		})
	}

	return synced, nil
}

// Invalidate drops one page, or the whole cache when pageID is 0.
func (s *Service) Invalidate(ctx context.Context, pageID int) (int, error) {
	var (
		n   int
		err error
	)
	if pageID == 0 {
		n, err = s.cache.Flush(ctx)
	} else {
		n, err = s.cache.Delete(ctx, pageID)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: invalidate: %w", domain.ErrStorage, err)
	}

	return n, nil
}

func (s *Service) fetch(ctx context.Context, pageID int) (*domain.ReferencePage, error) {
	if !s.wiki.Configured() {
		return nil, fmt.Errorf("%w: wiki api key not configured", domain.ErrReferenceUnavailable)
	}

	raw, err := s.wiki.Page(ctx, pageID)
	if errors.Is(err, wikijs.ErrPageNotFound) {
		return nil, fmt.Errorf("%w: page %d", domain.ErrNotFound, pageID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: fetch page %d: %w", domain.ErrReferenceUnavailable, pageID, err)
	}

	tags := raw.TagNames()
	variants := ExtractVariants(raw.Content)

	return &domain.ReferencePage{
		ID:        raw.ID,
		Path:      raw.Path,
		Title:     raw.Title,
		Simple:    variants.Simple,
		Medium:    variants.Medium,
		Detailed:  variants.Detailed,
		Tags:      tags,
		Region:    RegionFromTags(tags),
		FetchedAt: s.now().UTC(),
	}, nil
}
