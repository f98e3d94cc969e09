// Package store provides bbolt-based persistence for gvc.
// It manages the content-addressed object namespaces (blobs, commits),
// the staging index, and the branch registry using a single embedded
// bbolt database file. Objects are append-only: no update or delete is
// exposed for blobs or commits.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	bolt "go.etcd.io/bbolt"

	"github.com/kilupskalvis/gvc/internal/errs"
	"github.com/kilupskalvis/gvc/internal/models"
)

// Bucket names. Each bucket is one logical namespace of the repository.
var (
	bucketBlobs    = []byte("blobs")
	bucketCommits  = []byte("commits")
	bucketBranches = []byte("branches")
	bucketKV       = []byte("kv")
)

// Keys in the kv bucket.
var (
	keyHead  = []byte("HEAD")  // active branch name
	keyIndex = []byte("index") // staging-area encoding
)

// commitCacheSize bounds the decoded-commit cache. Commits are
// immutable, so cached values never go stale.
const commitCacheSize = 256

// Store represents the bbolt database store.
type Store struct {
	db          *bolt.DB
	commitCache *lru.Cache[string, *models.Commit]
}

// New opens or creates a bbolt database at the given path. The open
// timeout turns a database held by another process into a storage
// fault instead of a hang.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errs.Wrap(errs.StorageFault, fmt.Errorf("create database directory: %w", err))
		}
	}

	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errs.Wrap(errs.StorageFault, fmt.Errorf("open database: %w", err))
	}

	cache, err := lru.New[string, *models.Commit](commitCacheSize)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, commitCache: cache}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Initialize creates all required buckets.
func (s *Store) Initialize() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			bucketBlobs,
			bucketCommits,
			bucketBranches,
			bucketKV,
		}
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return errs.Wrap(errs.StorageFault, err)
	}
	return nil
}

// getValue gets a raw value from the key-value bucket.
func (s *Store) getValue(key []byte) ([]byte, error) {
	var val []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKV)
		if b == nil {
			return nil
		}
		if v := b.Get(key); v != nil {
			val = make([]byte, len(v))
			copy(val, v)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(errs.StorageFault, err)
	}
	return val, nil
}

// setValue sets a raw value in the key-value bucket.
func (s *Store) setValue(key, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKV)
		if b == nil {
			return fmt.Errorf("kv bucket not found")
		}
		return b.Put(key, value)
	})
	if err != nil {
		return errs.Wrap(errs.StorageFault, err)
	}
	return nil
}
