package core

import (
	"go.uber.org/zap"

	"github.com/kilupskalvis/gvc/internal/models"
	"github.com/kilupskalvis/gvc/internal/store"
)

// ListBranches returns every branch sorted by name, together with the
// name of the current branch.
func ListBranches(st *store.Store) ([]*models.Branch, string, error) {
	branches, err := st.ListBranches()
	if err != nil {
		return nil, "", err
	}

	current, err := st.CurrentBranch()
	if err != nil {
		return nil, "", err
	}

	return branches, current, nil
}

// CreateBranch creates a new branch bound to the current commit. On a
// repository with no commits yet the branch is created unborn, with an
// empty commit binding. The current branch is not switched.
func CreateBranch(st *store.Store, logger *zap.Logger, name string) error {
	head, err := st.HeadCommitID()
	if err != nil {
		return err
	}

	if err := st.CreateBranch(name, head); err != nil {
		return err
	}

	logger.Debug("branch created",
		zap.String("name", name),
		zap.String("commit", models.ShortID(head)))
	return nil
}
