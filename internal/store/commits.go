package store

import (
	bolt "go.etcd.io/bbolt"

	"github.com/kilupskalvis/gvc/internal/errs"
	"github.com/kilupskalvis/gvc/internal/models"
	"github.com/kilupskalvis/gvc/internal/worktree"
)

// PutCommit canonically encodes the commit, derives its content
// identifier, persists the encoding under that identifier, and returns
// the identifier. Idempotent: an identical commit hashes to the same
// key.
func (s *Store) PutCommit(c *models.Commit) (string, error) {
	data, err := models.EncodeCommit(c)
	if err != nil {
		return "", err
	}
	id := worktree.HashBytes(data)

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCommits)
		if b.Get([]byte(id)) != nil {
			return nil
		}
		return b.Put([]byte(id), data)
	})
	if err != nil {
		return "", errs.Wrap(errs.StorageFault, err)
	}

	s.commitCache.Add(id, c)
	return id, nil
}

// GetCommit retrieves and decodes a commit by identifier. Missing or
// undecodable commits surface as ObjectNotFound. Decoded commits are
// cached; they are immutable, so the cache never goes stale.
func (s *Store) GetCommit(id string) (*models.Commit, error) {
	if c, ok := s.commitCache.Get(id); ok {
		return c, nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCommits)
		if v := b.Get([]byte(id)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(errs.StorageFault, err)
	}
	if data == nil {
		return nil, errs.NewID(errs.ObjectNotFound, id)
	}

	c, err := models.DecodeCommit(data)
	if err != nil {
		return nil, &errs.Error{Kind: errs.ObjectNotFound, ID: id, Err: err}
	}

	s.commitCache.Add(id, c)
	return c, nil
}

// HeadCommit resolves HEAD -> active branch -> commit. Before the
// first commit it returns an empty commit and an empty identifier.
func (s *Store) HeadCommit() (*models.Commit, string, error) {
	id, err := s.HeadCommitID()
	if err != nil {
		return nil, "", err
	}
	if id == "" {
		return models.NewCommit(), "", nil
	}

	c, err := s.GetCommit(id)
	if err != nil {
		return nil, "", err
	}
	return c, id, nil
}
