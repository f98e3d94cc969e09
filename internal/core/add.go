package core

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kilupskalvis/gvc/internal/config"
	"github.com/kilupskalvis/gvc/internal/errs"
	"github.com/kilupskalvis/gvc/internal/models"
	"github.com/kilupskalvis/gvc/internal/store"
	"github.com/kilupskalvis/gvc/internal/worktree"
)

// Add stages the given paths for addition. File arguments are staged
// directly; directory arguments stage every non-ignored file under
// them. Blob content is persisted immediately; the staging index is
// rewritten once at the end, so a failing operand leaves no durable
// change.
func Add(cfg *config.Config, st *store.Store, logger *zap.Logger, paths []string) (int, error) {
	root := cfg.WorkTree()

	sa, err := st.LoadStaging()
	if err != nil {
		return 0, err
	}

	ign := worktree.NewIgnore(cfg.Ignore)
	staged := 0

	for _, p := range paths {
		rel, err := worktree.Rel(root, p)
		if err != nil {
			return 0, err
		}

		abs := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Stat(abs)
		if err != nil {
			if os.IsNotExist(err) {
				return 0, errs.NewPath(errs.FileNotFound, p)
			}
			return 0, errs.Wrap(errs.StorageFault, err)
		}

		if info.IsDir() {
			n, err := addTree(st, sa, root, rel, ign, logger)
			if err != nil {
				return 0, err
			}
			staged += n
			continue
		}

		if err := stageFile(st, sa, abs, rel, logger); err != nil {
			return 0, err
		}
		staged++
	}

	if err := st.SaveStaging(sa); err != nil {
		return 0, err
	}

	return staged, nil
}

// addTree stages every non-ignored regular file under the directory
// rel (repository-relative).
func addTree(st *store.Store, sa *models.StagingArea, root, rel string, ign *worktree.Ignore, logger *zap.Logger) (int, error) {
	abs := filepath.Join(root, filepath.FromSlash(rel))
	staged := 0

	err := filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		fileRel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		fileRel = filepath.ToSlash(fileRel)
		if fileRel == "." {
			return nil
		}

		if ign.Match(fileRel) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		if err := stageFile(st, sa, p, fileRel, logger); err != nil {
			return err
		}
		staged++
		return nil
	})
	if err != nil {
		if e, ok := err.(*errs.Error); ok {
			return 0, e
		}
		return 0, errs.Wrap(errs.StorageFault, err)
	}

	return staged, nil
}

// stageFile persists the file's content as a blob and records the
// add-set entry. Any staged-for-removal marker for the path is cleared.
func stageFile(st *store.Store, sa *models.StagingArea, abs, rel string, logger *zap.Logger) error {
	content, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return errs.NewPath(errs.FileNotFound, rel)
		}
		return errs.Wrap(errs.StorageFault, err)
	}

	id, err := st.PutBlob(content)
	if err != nil {
		return err
	}

	sa.StageForAdd(rel, id)
	logger.Debug("staged for addition",
		zap.String("path", rel),
		zap.String("blob", models.ShortID(id)))
	return nil
}
