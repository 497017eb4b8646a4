package boltdb

import (
	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

var seenBucket = []byte("seen")

// SeenCache records which entry ids have already been notified. Each
// feed URL owns a sub-bucket whose keys are entry ids; values are
// unused. Ids are only ever added, never removed.
type SeenCache struct {
	db *bolt.DB
}

func OpenSeenCache(path string) (*SeenCache, error) {
	db, err := bolt.Open(path, 0660, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "opening seen cache %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(seenBucket)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating seen bucket")
	}

	return &SeenCache{db: db}, nil
}

func (c *SeenCache) Close() error {
	return c.db.Close()
}

// Seen returns the set of entry ids recorded for a feed URL. found is
// false when the feed has never been recorded; the set is then empty.
func (c *SeenCache) Seen(feedURL string) (map[string]struct{}, bool, error) {
	ids := make(map[string]struct{})
	found := false

	err := c.db.View(func(tx *bolt.Tx) error {
		fb := tx.Bucket(seenBucket).Bucket([]byte(feedURL))
		if fb == nil {
			return nil
		}
		found = true

		return fb.ForEach(func(k, _ []byte) error {
			ids[string(k)] = struct{}{}

			return nil
		})
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, "reading seen entries for %s", feedURL)
	}

	return ids, found, nil
}

// Update adds entry ids to a feed's record, creating the record if the
// feed has never been seen. Calling it with no ids still creates the
// record.
func (c *SeenCache) Update(feedURL string, ids []string) error {
	err := c.db.Update(func(tx *bolt.Tx) error {
		fb, err := tx.Bucket(seenBucket).CreateBucketIfNotExists([]byte(feedURL))
		if err != nil {
			return err
		}

		for _, id := range ids {
			if err := fb.Put([]byte(id), nil); err != nil {
				return err
			}
		}

		return nil
	})

	return errors.Wrapf(err, "recording seen entries for %s", feedURL)
}
