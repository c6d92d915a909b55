package reference_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/reference"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("should expire entries after the ttl", func(t *testing.T) {
		now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
		cache := reference.NewMemoryCache().WithClock(func() time.Time { return now })

		require.NoError(t, cache.Put(ctx, &domain.ReferencePage{ID: 1, Title: "Housing"}, time.Hour))

		page, err := cache.Get(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "Housing", page.Title)

		now = now.Add(time.Hour)
		page, err = cache.Get(ctx, 1)
		require.NoError(t, err)
		require.Nil(t, page)
	})

	t.Run("should return copies", func(t *testing.T) {
		cache := reference.NewMemoryCache()
		original := &domain.ReferencePage{ID: 1, Title: "Housing"}
		require.NoError(t, cache.Put(ctx, original, 0))

		original.Title = "changed"
		page, err := cache.Get(ctx, 1)

		require.NoError(t, err)
		require.Equal(t, "Housing", page.Title)
	})

	t.Run("should delete and flush", func(t *testing.T) {
		cache := reference.NewMemoryCache()
		for id := 1; id <= 3; id++ {
			require.NoError(t, cache.Put(ctx, &domain.ReferencePage{ID: id}, time.Hour))
		}

		n, err := cache.Delete(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		n, err = cache.Delete(ctx, 2)
		require.NoError(t, err)
		require.Zero(t, n)

		n, err = cache.Flush(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})
}
