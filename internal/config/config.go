package config

import (
	"os"
	"time"
)

type Config struct {
	DBPath       string
	CachePath    string
	WebhookURL   string
	FetchTimeout time.Duration
}

func Load() Config {
	return Config{
		DBPath:       getenv("FEEDWATCH_DB", "feeds.db"),
		CachePath:    getenv("FEEDWATCH_CACHE", "feed_cache.db"),
		WebhookURL:   os.Getenv("FEEDWATCH_WEBHOOK"),
		FetchTimeout: parseDurationEnv("FEEDWATCH_FETCH_TIMEOUT", 20*time.Second),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
