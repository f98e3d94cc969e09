// Package core implements the repository operations: staging,
// commit-graph construction, branch management, and the status engine.
// Functions here take the configuration, store, and logger explicitly;
// there is no hidden process-wide state.
package core

import (
	"github.com/kilupskalvis/gvc/internal/config"
	"github.com/kilupskalvis/gvc/internal/models"
	"github.com/kilupskalvis/gvc/internal/store"
)

// InitRepository sets up a freshly created store: all buckets, the
// default branch (unborn, no commit yet), HEAD pointing at it, and an
// empty staging area.
func InitRepository(cfg *config.Config, st *store.Store) error {
	if err := st.Initialize(); err != nil {
		return err
	}

	if err := st.CreateBranch(cfg.DefaultBranch, ""); err != nil {
		return err
	}

	if err := st.SetCurrentBranch(cfg.DefaultBranch); err != nil {
		return err
	}

	return st.SaveStaging(models.NewStagingArea())
}
