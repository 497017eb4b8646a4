package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("duplicate name")
)

// FeedRegistry is the persistence port for feed subscriptions. List
// returns feeds ordered by name ascending.
type FeedRegistry interface {
	Add(name, url string) error
	Rename(name, newName, newURL string) (Feed, error)
	UpdateURL(name, url string) error
	Delete(name string) error
	List() ([]Feed, error)
	Close() error
}

// SeenCache is the persistence port for entry ids already notified,
// keyed by feed URL. A feed without a record yields an empty set and
// found == false.
type SeenCache interface {
	Seen(feedURL string) (ids map[string]struct{}, found bool, err error)
	Update(feedURL string, ids []string) error
	Close() error
}

// Fetcher fetches and parses a feed.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]Entry, error)
}

// Notifier delivers a batch of new entries as one message.
type Notifier interface {
	Notify(ctx context.Context, entries []NewEntry) error
}
