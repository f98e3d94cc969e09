package store

import (
	bolt "go.etcd.io/bbolt"

	"github.com/kilupskalvis/gvc/internal/errs"
	"github.com/kilupskalvis/gvc/internal/worktree"
)

// PutBlob persists content under its content identifier and returns
// the identifier. Re-adding identical content is a no-op write, so two
// calls with the same bytes leave a single stored copy.
func (s *Store) PutBlob(content []byte) (string, error) {
	if content == nil {
		content = []byte{}
	}
	id := worktree.HashBytes(content)

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketBlobs)
		if b.Get([]byte(id)) != nil {
			return nil // already present
		}
		return b.Put([]byte(id), content)
	})
	if err != nil {
		return "", errs.Wrap(errs.StorageFault, err)
	}

	return id, nil
}

// GetBlob retrieves blob content by identifier.
func (s *Store) GetBlob(id string) ([]byte, error) {
	var content []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketBlobs)
		if v := b.Get([]byte(id)); v != nil {
			content = make([]byte, len(v))
			copy(content, v)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(errs.StorageFault, err)
	}
	if content == nil {
		return nil, errs.NewID(errs.ObjectNotFound, id)
	}
	return content, nil
}

// HasBlob reports whether content with the given identifier is stored.
func (s *Store) HasBlob(id string) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketBlobs)
		found = b.Get([]byte(id)) != nil
		return nil
	})
	if err != nil {
		return false, errs.Wrap(errs.StorageFault, err)
	}
	return found, nil
}
