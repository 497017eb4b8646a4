// Package boltdb persists feed subscriptions and seen entry ids in
// bolt key-value files.
package boltdb

import (
	"github.com/boltdb/bolt"
	"github.com/pkg/errors"

	"feedwatch/domain"
)

var feedsBucket = []byte("feeds")

// Registry is a bolt-backed feed registry. Keys are feed names, values
// are feed URLs, so cursor order is name order.
type Registry struct {
	db *bolt.DB
}

func OpenRegistry(path string) (*Registry, error) {
	db, err := bolt.Open(path, 0660, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "opening feed registry %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(feedsBucket)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating feeds bucket")
	}

	return &Registry{db: db}, nil
}

func (r *Registry) Close() error {
	return r.db.Close()
}

func (r *Registry) Add(name, url string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(feedsBucket)

		if b.Get([]byte(name)) != nil {
			return domain.ErrDuplicateName
		}

		return b.Put([]byte(name), []byte(url))
	})
}

// Rename changes a feed's name and/or URL. The delete of the old key
// and the insert of the new one commit in a single transaction, so a
// crash cannot leave both keys behind. Empty newName or newURL means
// "keep the current value".
func (r *Registry) Rename(name, newName, newURL string) (domain.Feed, error) {
	var out domain.Feed

	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(feedsBucket)

		current := b.Get([]byte(name))
		if current == nil {
			return domain.ErrNotFound
		}

		finalName := name
		if newName != "" {
			finalName = newName
		}
		finalURL := string(current)
		if newURL != "" {
			finalURL = newURL
		}

		if finalName != name {
			if b.Get([]byte(finalName)) != nil {
				return domain.ErrDuplicateName
			}
			if err := b.Delete([]byte(name)); err != nil {
				return err
			}
		}

		out = domain.Feed{Name: finalName, URL: finalURL}

		return b.Put([]byte(finalName), []byte(finalURL))
	})
	if err != nil {
		return domain.Feed{}, err
	}

	return out, nil
}

func (r *Registry) UpdateURL(name, url string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(feedsBucket)

		if b.Get([]byte(name)) == nil {
			return domain.ErrNotFound
		}

		return b.Put([]byte(name), []byte(url))
	})
}

func (r *Registry) Delete(name string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(feedsBucket)

		if b.Get([]byte(name)) == nil {
			return domain.ErrNotFound
		}

		return b.Delete([]byte(name))
	})
}

// List returns all feeds ordered by name ascending. An empty registry
// returns an empty slice.
func (r *Registry) List() ([]domain.Feed, error) {
	var out []domain.Feed

	err := r.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(feedsBucket).Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			out = append(out, domain.Feed{Name: string(k), URL: string(v)})
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing feeds")
	}

	return out, nil
}
