package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kilupskalvis/gvc/internal/config"
	"github.com/kilupskalvis/gvc/internal/errs"
	"github.com/kilupskalvis/gvc/internal/models"
	"github.com/kilupskalvis/gvc/internal/store"
)

// BuildSnapshot derives the next commit's snapshot from the parent's:
// every add-set entry is upserted, every remove-set path deleted. The
// result is always the complete tracked mapping, never a diff. The
// parent snapshot is not mutated.
func BuildSnapshot(parent map[string]string, sa *models.StagingArea) map[string]string {
	snapshot := make(map[string]string, len(parent)+len(sa.Staged))
	for k, v := range parent {
		snapshot[k] = v
	}
	for k, v := range sa.Staged {
		snapshot[k] = v
	}
	for k := range sa.Removed {
		delete(snapshot, k)
	}
	return snapshot
}

// Commit creates a new commit from the staging area on top of the
// current commit, advances the active branch, and clears the staging
// area. Files staged for removal are deleted from the working
// directory first; a file already absent is not an error, but an I/O
// failure deleting an existing file fails the whole commit before
// anything is persisted.
func Commit(cfg *config.Config, st *store.Store, logger *zap.Logger, message string, now time.Time) (string, *models.Commit, error) {
	if strings.TrimSpace(message) == "" {
		return "", nil, errs.New(errs.EmptyMessage)
	}

	sa, err := st.LoadStaging()
	if err != nil {
		return "", nil, err
	}
	if sa.IsEmpty() {
		return "", nil, errs.New(errs.NothingToCommit)
	}

	parent, parentID, err := st.HeadCommit()
	if err != nil {
		return "", nil, err
	}

	snapshot := BuildSnapshot(parent.Snapshot, sa)

	root := cfg.WorkTree()
	for path := range sa.Removed {
		abs := filepath.Join(root, filepath.FromSlash(path))
		if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
			return "", nil, &errs.Error{Kind: errs.WorkingDirectory, Path: path, Err: err}
		}
	}

	commit := &models.Commit{
		Message:   message,
		Timestamp: now.Unix(),
		Snapshot:  snapshot,
		Parent:    parentID,
	}

	id, err := st.PutCommit(commit)
	if err != nil {
		return "", nil, err
	}

	sa.Clear()
	if err := st.SaveStaging(sa); err != nil {
		return "", nil, err
	}

	if err := advanceActiveBranch(st, id); err != nil {
		return "", nil, err
	}

	logger.Debug("commit created",
		zap.String("id", models.ShortID(id)),
		zap.String("parent", models.ShortID(parentID)),
		zap.Int("tracked", len(snapshot)))

	return id, commit, nil
}

// advanceActiveBranch rebinds the active branch to the new commit. A
// missing branch record (repository initialized by an older layout) is
// created on first commit.
func advanceActiveBranch(st *store.Store, commitID string) error {
	name, err := st.CurrentBranch()
	if err != nil {
		return err
	}

	existing, err := st.GetBranch(name)
	if err != nil {
		return err
	}
	if existing == nil {
		return st.CreateBranch(name, commitID)
	}
	return st.UpdateBranch(name, commitID)
}
