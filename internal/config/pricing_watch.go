package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/observability"
)

// WatchPricing re-applies the pricing file to table each time it is written,
// until ctx is done. A file that fails to parse leaves the current rates in place.
func WatchPricing(ctx context.Context, path string, table *domain.PricingTable) error {
	if path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create pricing watcher: %w", err)
	}

	// The directory is watched so files replaced by rename are still seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch pricing file: %w", err)
	}

	go watchPricing(ctx, watcher, filepath.Clean(path), table)
	return nil
}

func watchPricing(ctx context.Context, watcher *fsnotify.Watcher, path string, table *domain.PricingTable) {
	defer watcher.Close()
	logger := observability.FromContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if err := ApplyPricing(ctx, path, table); err != nil {
				logger.Error("pricing reload failed", observability.String("path", path), observability.Error(err))
				continue
			}
			logger.Info("pricing reloaded", observability.String("path", path))

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("pricing watcher error", observability.Error(err))
		}
	}
}
