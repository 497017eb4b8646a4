package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"feedwatch/domain"
)

// ErrNoFeeds is returned by Run when the registry holds no feeds.
var ErrNoFeeds = errors.New("no feeds configured")

// Watcher runs one pass over every registered feed and notifies a
// webhook about entries not seen on previous runs.
type Watcher struct {
	registry domain.FeedRegistry
	cache    domain.SeenCache
	fetcher  domain.Fetcher
	notifier domain.Notifier
	log      *zap.SugaredLogger
}

func NewWatcher(registry domain.FeedRegistry, cache domain.SeenCache, fetcher domain.Fetcher, notifier domain.Notifier, log *zap.SugaredLogger) *Watcher {
	return &Watcher{
		registry: registry,
		cache:    cache,
		fetcher:  fetcher,
		notifier: notifier,
		log:      log,
	}
}

// Run processes feeds sequentially in registry order. A feed whose
// fetch fails is logged and skipped. Each feed's seen-set is persisted
// before the next feed is touched, so a crash keeps earlier progress.
// Notification delivery failure does not fail the run.
func (w *Watcher) Run(ctx context.Context) error {
	feeds, err := w.registry.List()
	if err != nil {
		return err
	}
	if len(feeds) == 0 {
		return ErrNoFeeds
	}

	var all []domain.NewEntry
	for _, f := range feeds {
		w.log.Infow("processing feed", "name", f.Name, "url", f.URL)

		entries, err := w.fetcher.Fetch(ctx, f.URL)
		if err != nil {
			w.log.Warnw("skipping feed", "name", f.Name, "error", err)
			continue
		}

		seen, found, err := w.cache.Seen(f.URL)
		if err != nil {
			return err
		}

		fresh, ids := DetectNew(f.Name, entries, seen)
		if len(ids) > 0 || !found {
			if err := w.cache.Update(f.URL, ids); err != nil {
				return err
			}
		}

		w.log.Infow("feed checked", "name", f.Name, "new", len(fresh))
		all = append(all, fresh...)
	}

	if len(all) == 0 {
		w.log.Info("no new entries across all feeds")
		return nil
	}

	if err := w.notifier.Notify(ctx, all); err != nil {
		w.log.Warnw("notification delivery failed", "error", err)
		return nil
	}
	w.log.Infow("notification sent", "entries", len(all))

	return nil
}
