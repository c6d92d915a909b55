package reference_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/mocks"
	"github.com/davidbz/policybot/internal/reference"
	"github.com/davidbz/policybot/internal/reference/wikijs"
)

type fakeWiki struct {
	configured bool
	pages      map[int]*wikijs.Page
	listed     []wikijs.PageSummary
	search     []wikijs.SearchResult
	err        error
	pageCalls  int
	listTags   []string
}

func (f *fakeWiki) Configured() bool { return f.configured }

func (f *fakeWiki) ListPages(_ context.Context, tags []string) ([]wikijs.PageSummary, error) {
	f.listTags = tags
	if f.err != nil {
		return nil, f.err
	}
	return f.listed, nil
}

func (f *fakeWiki) Page(_ context.Context, id int) (*wikijs.Page, error) {
	f.pageCalls++
	if f.err != nil {
		return nil, f.err
	}
	page, ok := f.pages[id]
	if !ok {
		return nil, wikijs.ErrPageNotFound
	}
	return page, nil
}

func (f *fakeWiki) Search(_ context.Context, _ string) ([]wikijs.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.search, nil
}

var fetchedAt = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

func newWiki() *fakeWiki {
	return &fakeWiki{
		configured: true,
		pages: map[int]*wikijs.Page{
			7: {
				ID:      7,
				Path:    "policy/housing",
				Title:   "Housing",
				Content: housingPage,
				Tags:    tags("policy", "region:District-5"),
			},
		},
	}
}

func tags(names ...string) []wikijs.PageTag {
	out := make([]wikijs.PageTag, 0, len(names))
	for _, n := range names {
		out = append(out, wikijs.PageTag{Tag: n})
	}
	return out
}

func newService(wiki *fakeWiki, events domain.EventPublisher) *reference.Service {
	return reference.NewService(wiki, reference.NewMemoryCache(), &wikijs.Config{CacheTTLHours: 24}, events).
		WithClock(func() time.Time { return fetchedAt })
}

func TestService_Page(t *testing.T) {
	ctx := context.Background()

	t.Run("should fetch on a miss and serve the cache afterwards", func(t *testing.T) {
		wiki := newWiki()
		service := newService(wiki, nil)

		page, cached, err := service.Page(ctx, 7)
		require.NoError(t, err)
		require.False(t, cached)
		require.Equal(t, "Housing", page.Title)
		require.Equal(t, "District-5", page.Region)
		require.Equal(t, []string{"policy", "region:District-5"}, page.Tags)
		require.Equal(t, fetchedAt, page.FetchedAt)

		page, cached, err = service.Page(ctx, 7)
		require.NoError(t, err)
		require.True(t, cached)
		require.Equal(t, "Housing", page.Title)
		require.Equal(t, 1, wiki.pageCalls)
	})

	t.Run("should map a missing page to not found", func(t *testing.T) {
		_, _, err := newService(newWiki(), nil).Page(ctx, 99)

		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("should be unavailable without an api key", func(t *testing.T) {
		wiki := newWiki()
		wiki.configured = false

		_, _, err := newService(wiki, nil).Page(ctx, 7)

		require.ErrorIs(t, err, domain.ErrReferenceUnavailable)
		require.Zero(t, wiki.pageCalls)
	})

	t.Run("should be unavailable when the wiki fails", func(t *testing.T) {
		wiki := newWiki()
		wiki.err = errors.New("connection refused")

		_, _, err := newService(wiki, nil).Page(ctx, 7)

		require.ErrorIs(t, err, domain.ErrReferenceUnavailable)
	})

	t.Run("should reject non-positive ids", func(t *testing.T) {
		_, _, err := newService(newWiki(), nil).Page(ctx, 0)

		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestService_LookupReference(t *testing.T) {
	service := newService(newWiki(), nil)

	simple, err := service.LookupReference(context.Background(), 7, domain.SophisticationLow)
	require.NoError(t, err)
	require.Equal(t, "We want homes people can afford.", simple)

	detailed, err := service.LookupReference(context.Background(), 7, domain.SophisticationHigh)
	require.NoError(t, err)
	require.Equal(t, "Model assumptions and elasticities.", detailed)
}

func TestService_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("should cache every listed page and publish an event", func(t *testing.T) {
		wiki := newWiki()
		wiki.listed = []wikijs.PageSummary{{ID: 7}, {ID: 8}}
		events := mocks.NewMockEventPublisher(t)
		events.EXPECT().Publish(mock.Anything, "reference.synced", map[string]interface{}{"pages_synced": 1}).Once()
		service := newService(wiki, events)

		synced, err := service.Sync(ctx)

		require.NoError(t, err)
		require.Equal(t, 1, synced)
		require.Equal(t, []string{"policy-priority", "policy"}, wiki.listTags)

		_, cached, err := service.Page(ctx, 7)
		require.NoError(t, err)
		require.True(t, cached)
	})

	t.Run("should fail when the wiki cannot be listed", func(t *testing.T) {
		wiki := newWiki()
		wiki.err = errors.New("timeout")

		_, err := newService(wiki, nil).Sync(ctx)

		require.ErrorIs(t, err, domain.ErrReferenceUnavailable)
	})
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("should map live results", func(t *testing.T) {
		wiki := newWiki()
		wiki.search = []wikijs.SearchResult{{ID: "7", Title: "Housing", Path: "policy/housing", Description: "Rent"}}

		results, err := newService(wiki, nil).Search(ctx, " rent ")

		require.NoError(t, err)
		require.Equal(t, []domain.ReferenceSearchResult{
			{PageID: 7, Title: "Housing", Path: "policy/housing", Excerpt: "Rent"},
		}, results)
	})

	t.Run("should reject an empty query", func(t *testing.T) {
		_, err := newService(newWiki(), nil).Search(ctx, "  ")

		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestService_Invalidate(t *testing.T) {
	ctx := context.Background()
	wiki := newWiki()
	wiki.pages[8] = &wikijs.Page{ID: 8, Title: "Transit"}
	service := newService(wiki, nil)

	_, _, err := service.Page(ctx, 7)
	require.NoError(t, err)
	_, _, err = service.Page(ctx, 8)
	require.NoError(t, err)

	n, err := service.Invalidate(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = service.Invalidate(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
