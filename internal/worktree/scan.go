// Package worktree computes content identifiers for files in the
// working directory. The scan is a pure read: it never mutates the
// tree and is safe to call repeatedly.
package worktree

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kilupskalvis/gvc/internal/errs"
)

// HashBytes computes the content identifier of a byte sequence. Two
// byte-identical inputs always yield the same identifier.
func HashBytes(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// HashFile computes the content identifier of a file's bytes.
func HashFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errs.NewPath(errs.FileNotFound, path)
		}
		return "", errs.Wrap(errs.StorageFault, err)
	}
	return HashBytes(content), nil
}

// Scan walks the working tree rooted at root and returns the mapping
// of relative slash-separated path -> content identifier for every
// non-ignored regular file.
func Scan(root string, ign *Ignore) (map[string]string, error) {
	working := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if ign.Match(rel) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		id, err := HashFile(path)
		if err != nil {
			return err
		}
		working[rel] = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return working, nil
}

// Rel resolves an operand path against the working-tree root and
// returns the relative slash-separated path used as the tracking key.
// Paths that escape the root fail with PathOutsideRepository.
func Rel(root, path string) (string, error) {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, path)
	}
	abs = filepath.Clean(abs)

	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", errs.NewPath(errs.PathOutsideRepository, path)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", errs.NewPath(errs.PathOutsideRepository, path)
	}
	return rel, nil
}
