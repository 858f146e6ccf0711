package service

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

const (
	cacheFileName = "lightbox_thumbs.db"
	// ThumbsBucket holds PNG-encoded thumbnails keyed by source file identity.
	ThumbsBucket = "Thumbnails"
)

// ThumbCache is an on-disk thumbnail cache backed by BoltDB. Entries are
// keyed by source path, size, mtime and requested bound, so a changed file
// simply stops matching; there is no eviction.
type ThumbCache struct {
	db     *bolt.DB
	logger LoggerFunc
}

// NewThumbCache creates or opens the cache database. dir may be empty to use
// the per-user cache directory.
func NewThumbCache(dir string, logger LoggerFunc) (*ThumbCache, error) {
	if dir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			dir = "."
		} else {
			dir = filepath.Join(cacheDir, "lightbox")
		}
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, cacheFileName)
	if logger != nil {
		logger(fmt.Sprintf("Using thumbnail cache at: %s", dbPath))
	}

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open thumbnail cache %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(ThumbsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", ThumbsBucket, err)
	}

	return &ThumbCache{db: db, logger: logger}, nil
}

// Close closes the database connection.
func (tc *ThumbCache) Close() error {
	if tc.db != nil {
		return tc.db.Close()
	}
	return nil
}

// cacheKey identifies a thumbnail by the source file's current identity.
// A changed mtime or size produces a different key, missing the stale entry.
func cacheKey(path string, maxSize int) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%s|%d|%d|%d", path, info.Size(), info.ModTime().UnixNano(), maxSize)
	return []byte(key), nil
}

// Get returns the cached thumbnail for path at the given bound, if present.
func (tc *ThumbCache) Get(path string, maxSize int) (image.Image, bool) {
	key, err := cacheKey(path, maxSize)
	if err != nil {
		return nil, false
	}

	var data []byte
	err = tc.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(ThumbsBucket)).Get(key); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil || data == nil {
		return nil, false
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		tc.log(fmt.Sprintf("corrupt cache entry for %s: %v", path, err))
		return nil, false
	}
	return img, true
}

// Put stores a thumbnail for path at the given bound.
func (tc *ThumbCache) Put(path string, maxSize int, thumb image.Image) error {
	key, err := cacheKey(path, maxSize)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return fmt.Errorf("encoding thumbnail for %s: %w", path, err)
	}

	return tc.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(ThumbsBucket)).Put(key, buf.Bytes())
	})
}

// Stats returns the number of cached thumbnails and their total size in bytes.
func (tc *ThumbCache) Stats() (entries int, size int64, err error) {
	err = tc.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(ThumbsBucket)).ForEach(func(_, v []byte) error {
			entries++
			size += int64(len(v))
			return nil
		})
	})
	return entries, size, err
}

// Clear removes every cached thumbnail.
func (tc *ThumbCache) Clear() error {
	return tc.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(ThumbsBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(ThumbsBucket))
		return err
	})
}

func (tc *ThumbCache) log(msg string) {
	if tc.logger != nil {
		tc.logger(msg)
	}
}
