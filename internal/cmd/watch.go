package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"feedwatch/adapter/boltdb"
	"feedwatch/adapter/discord"
	"feedwatch/adapter/rss"
	"feedwatch/app"
	"feedwatch/internal/config"
	"feedwatch/internal/logger"
)

// Watch checks every registered feed once and posts a summary of new
// entries to the webhook. It is meant to be run by an external
// scheduler such as cron.
func Watch(args []string) error {
	cfg := config.Load()

	fset := flag.NewFlagSet("watch", flag.ContinueOnError)
	var webhookURL string
	var feedConfig string
	var cachePath string
	fset.StringVar(&webhookURL, "discord-webhook", cfg.WebhookURL, "Discord webhook URL")
	fset.StringVar(&feedConfig, "feed-config", cfg.DBPath, "feeds database file")
	fset.StringVar(&cachePath, "cache", cfg.CachePath, "seen-entry cache file")
	if err := fset.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(webhookURL) == "" {
		return fmt.Errorf("--discord-webhook is required")
	}
	if _, err := os.Stat(feedConfig); err != nil {
		return fmt.Errorf("feed configuration %q does not exist", feedConfig)
	}

	log, err := logger.New()
	if err != nil {
		return err
	}
	defer log.Sync()

	reg, err := boltdb.OpenRegistry(feedConfig)
	if err != nil {
		return err
	}
	defer reg.Close()

	cache, err := boltdb.OpenSeenCache(cachePath)
	if err != nil {
		return err
	}
	defer cache.Close()

	fetcher := rss.NewFetcher(cfg.FetchTimeout)
	notifier := discord.NewNotifier(webhookURL)
	watcher := app.NewWatcher(reg, cache, fetcher, notifier, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := watcher.Run(ctx); err != nil {
		if errors.Is(err, app.ErrNoFeeds) {
			return fmt.Errorf("no feed configurations found in %q", feedConfig)
		}
		return err
	}
	return nil
}
