package core

import (
	"go.uber.org/zap"

	"github.com/kilupskalvis/gvc/internal/config"
	"github.com/kilupskalvis/gvc/internal/store"
	"github.com/kilupskalvis/gvc/internal/worktree"
)

// Remove unstages paths staged for addition, and stages paths tracked
// by the head commit for removal. A path that is neither fails with
// NoReasonToRemove, and nothing is persisted. The working file itself
// is not touched here; deletion happens during commit construction.
// The file does not need to exist on disk: removing a tracked file the
// user already deleted still stages the removal.
func Remove(cfg *config.Config, st *store.Store, logger *zap.Logger, paths []string) error {
	root := cfg.WorkTree()

	sa, err := st.LoadStaging()
	if err != nil {
		return err
	}

	head, _, err := st.HeadCommit()
	if err != nil {
		return err
	}

	for _, p := range paths {
		rel, err := worktree.Rel(root, p)
		if err != nil {
			return err
		}

		_, tracked := head.Snapshot[rel]
		if err := sa.UnstageOrStageForRemove(rel, tracked); err != nil {
			return err
		}
		logger.Debug("removal recorded",
			zap.String("path", rel),
			zap.Bool("tracked", tracked))
	}

	return st.SaveStaging(sa)
}
