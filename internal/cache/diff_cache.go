package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

const bucketName = "diff_lines"

// Counter counts added lines between two commits
type Counter interface {
	AddedLines(ctx context.Context, older, newer string) (int, error)
}

// Open opens (or creates) the bbolt file that backs the diff cache
func Open(path string) (*bolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open diff cache %s: %w", path, err)
	}
	return db, nil
}

// DiffCache remembers added-line counts per commit pair.
// A diff between two commit hashes never changes, so entries never expire.
type DiffCache struct {
	db     *bolt.DB
	inner  Counter
	logger *logrus.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// NewDiffCache wraps inner with a cache stored in db
func NewDiffCache(db *bolt.DB, inner Counter, logger *logrus.Logger) *DiffCache {
	return &DiffCache{
		db:     db,
		inner:  inner,
		logger: logger,
	}
}

// AddedLines returns the cached count or asks the wrapped counter
func (c *DiffCache) AddedLines(ctx context.Context, older, newer string) (int, error) {
	key := older + ".." + newer

	if lines, ok := c.get(key); ok {
		c.hits.Add(1)
		c.logger.WithField("pair", key).Debug("Diff cache hit")
		return lines, nil
	}
	c.misses.Add(1)

	lines, err := c.inner.AddedLines(ctx, older, newer)
	if err != nil {
		return 0, err
	}

	if err := c.set(key, lines); err != nil {
		c.logger.WithError(err).WithField("pair", key).Warn("Failed to store diff count")
	}
	return lines, nil
}

// Stats returns the number of cache hits and misses so far
func (c *DiffCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *DiffCache) get(key string) (int, bool) {
	var lines int
	var found bool

	err := c.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return nil
		}
		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}
		n, err := strconv.Atoi(string(data))
		if err != nil {
			return err
		}
		lines, found = n, true
		return nil
	})
	if err != nil {
		c.logger.WithError(err).WithField("pair", key).Warn("Corrupt diff cache entry")
		return 0, false
	}
	return lines, found
}

func (c *DiffCache) set(key string, lines int) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), []byte(strconv.Itoa(lines)))
	})
}
