package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/kilupskalvis/gvc/internal/errs"
	"github.com/kilupskalvis/gvc/internal/models"
)

// CreateBranch binds a new branch name to a commit identifier. The
// identifier may be empty for an unborn branch. Fails with
// BranchExists if the name is already bound.
func (s *Store) CreateBranch(name, commitID string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketBranches)
		if bucket == nil {
			return fmt.Errorf("branches bucket not found")
		}

		if bucket.Get([]byte(name)) != nil {
			return errs.NewPath(errs.BranchExists, name)
		}

		branch := &models.Branch{
			Name:      name,
			CommitID:  commitID,
			CreatedAt: time.Now(),
		}

		data, err := json.Marshal(branch)
		if err != nil {
			return errs.Wrap(errs.SerializationFault, err)
		}

		return bucket.Put([]byte(name), data)
	})
	if err != nil {
		if e, ok := err.(*errs.Error); ok {
			return e
		}
		return errs.Wrap(errs.StorageFault, err)
	}
	return nil
}

// GetBranch retrieves a branch by name. Returns (nil, nil) if not
// found.
func (s *Store) GetBranch(name string) (*models.Branch, error) {
	var branch *models.Branch

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketBranches)
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(name))
		if data == nil {
			return nil
		}

		branch = &models.Branch{}
		if err := json.Unmarshal(data, branch); err != nil {
			return errs.Wrap(errs.SerializationFault, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return branch, nil
}

// BranchExists checks if a branch with the given name exists.
func (s *Store) BranchExists(name string) (bool, error) {
	var exists bool
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketBranches)
		if bucket == nil {
			return nil
		}
		exists = bucket.Get([]byte(name)) != nil
		return nil
	})
	if err != nil {
		return false, errs.Wrap(errs.StorageFault, err)
	}
	return exists, nil
}

// ListBranches returns all branches sorted lexicographically by name.
func (s *Store) ListBranches() ([]*models.Branch, error) {
	var branches []*models.Branch

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketBranches)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var branch models.Branch
			if err := json.Unmarshal(v, &branch); err != nil {
				return errs.Wrap(errs.SerializationFault, err)
			}
			branches = append(branches, &branch)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Name < branches[j].Name
	})

	return branches, nil
}

// UpdateBranch rebinds an existing branch to a commit identifier. Used
// by commit construction to advance the active branch.
func (s *Store) UpdateBranch(name, commitID string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketBranches)
		if bucket == nil {
			return fmt.Errorf("branches bucket not found")
		}

		data := bucket.Get([]byte(name))
		if data == nil {
			return fmt.Errorf("branch not found: %s", name)
		}

		var branch models.Branch
		if err := json.Unmarshal(data, &branch); err != nil {
			return errs.Wrap(errs.SerializationFault, err)
		}

		branch.CommitID = commitID

		updatedData, err := json.Marshal(branch)
		if err != nil {
			return errs.Wrap(errs.SerializationFault, err)
		}

		return bucket.Put([]byte(name), updatedData)
	})
	if err != nil {
		if e, ok := err.(*errs.Error); ok {
			return e
		}
		return errs.Wrap(errs.StorageFault, err)
	}
	return nil
}

// CurrentBranch retrieves the active branch name from HEAD. Returns
// ("", nil) if no branch is set.
func (s *Store) CurrentBranch() (string, error) {
	val, err := s.getValue(keyHead)
	if err != nil {
		return "", err
	}
	return string(val), nil
}

// SetCurrentBranch sets the active branch name in HEAD.
func (s *Store) SetCurrentBranch(name string) error {
	return s.setValue(keyHead, []byte(name))
}

// HeadCommitID resolves HEAD -> active branch -> bound commit
// identifier. The identifier is empty before the first commit.
func (s *Store) HeadCommitID() (string, error) {
	name, err := s.CurrentBranch()
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", nil
	}

	branch, err := s.GetBranch(name)
	if err != nil {
		return "", err
	}
	if branch == nil {
		return "", nil
	}
	return branch.CommitID, nil
}
