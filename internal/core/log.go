package core

import (
	"github.com/kilupskalvis/gvc/internal/models"
	"github.com/kilupskalvis/gvc/internal/store"
)

// LogEntry pairs a commit with its identifier for history listings.
type LogEntry struct {
	ID     string
	Commit *models.Commit
}

// Log returns the commit history of the current branch, newest first,
// by walking the parent chain from the head commit. A non-positive
// limit means unlimited. An unborn branch yields an empty history.
func Log(st *store.Store, limit int) ([]LogEntry, error) {
	id, err := st.HeadCommitID()
	if err != nil {
		return nil, err
	}

	var entries []LogEntry
	for id != "" {
		if limit > 0 && len(entries) >= limit {
			break
		}
		commit, err := st.GetCommit(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LogEntry{ID: id, Commit: commit})
		id = commit.Parent
	}

	return entries, nil
}
