package worktree

import (
	"path/filepath"
	"strings"

	"github.com/kilupskalvis/gvc/internal/config"
)

// defaultIgnored are housekeeping paths never tracked: the repository's
// own metadata directory and well-known noise.
var defaultIgnored = []string{config.GVCDir, ".git", ".DS_Store"}

// Ignore decides which relative paths the working-tree scan skips.
// Defaults are exact-name matches on any path component. Extra
// patterns from the repository config use git-style *, ? and **
// matching: a pattern without a separator matches any single path
// component at any depth; a pattern containing a separator is
// anchored to the repository root.
type Ignore struct {
	static   map[string]bool
	patterns []string
}

// NewIgnore builds the ignore set from the defaults plus extra
// patterns.
func NewIgnore(patterns []string) *Ignore {
	ign := &Ignore{static: make(map[string]bool)}
	for _, s := range defaultIgnored {
		ign.static[s] = true
	}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		ign.patterns = append(ign.patterns, filepath.ToSlash(p))
	}
	return ign
}

// Match reports whether the relative slash-separated path should be
// ignored.
func (ign *Ignore) Match(path string) bool {
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == "." || clean == "" {
		return false
	}

	parts := strings.Split(clean, "/")
	for _, part := range parts {
		if ign.static[part] {
			return true
		}
	}

	for _, pat := range ign.patterns {
		if !strings.Contains(pat, "/") {
			for _, part := range parts {
				if ok, _ := filepath.Match(pat, part); ok {
					return true
				}
			}
			continue
		}
		if matchSegments(strings.Split(pat, "/"), parts) {
			return true
		}
	}

	return false
}

// matchSegments matches pattern segments recursively, treating ** as
// any number of path components.
func matchSegments(pats, parts []string) bool {
	for len(pats) > 0 {
		p := pats[0]
		pats = pats[1:]

		if p == "**" {
			if len(pats) == 0 {
				return true // trailing ** matches anything
			}
			for i := 0; i <= len(parts); i++ {
				if matchSegments(pats, parts[i:]) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}

		ok, _ := filepath.Match(p, parts[0])
		if !ok {
			return false
		}

		parts = parts[1:]
	}

	return len(parts) == 0
}
