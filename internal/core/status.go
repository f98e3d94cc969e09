package core

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/kilupskalvis/gvc/internal/config"
	"github.com/kilupskalvis/gvc/internal/store"
	"github.com/kilupskalvis/gvc/internal/worktree"
)

// Annotations attached to entries in the modifications section.
const (
	NoteModified = "modified"
	NoteDeleted  = "deleted"
)

// Modification is one path in the "Modifications Not Staged For
// Commit" section with its annotation.
type Modification struct {
	Path string
	Note string
}

// Report is the full status classification. Every slice is sorted;
// Branches lists the active branch first, then the rest
// lexicographically.
type Report struct {
	Branches      []string
	Current       string
	StagedFiles   []string
	RemovedFiles  []string
	Modifications []Modification
	Untracked     []string
}

// ComputeStatus classifies every path by pure set/map comparison of
// the head snapshot (tracked), the staging area's two sets, and the
// working-tree scan. It performs no disk access and no mutation.
func ComputeStatus(branchNames []string, current string, tracked, staged, removed, working map[string]string) *Report {
	r := &Report{Current: current}

	r.Branches = append(r.Branches, current)
	for _, name := range branchNames {
		if name != current {
			r.Branches = append(r.Branches, name)
		}
	}

	r.StagedFiles = sortedKeys(staged)
	r.RemovedFiles = sortedKeys(removed)

	// Modifications: each path classified once, in rule order.
	notes := map[string]string{}
	for path, id := range tracked {
		if _, isStaged := staged[path]; isStaged {
			continue
		}
		workID, onDisk := working[path]
		if onDisk && workID != id {
			notes[path] = NoteModified
		}
	}
	for path, id := range staged {
		workID, onDisk := working[path]
		switch {
		case !onDisk:
			notes[path] = NoteDeleted
		case workID != id:
			notes[path] = NoteModified
		}
	}
	for path := range tracked {
		if _, isRemoved := removed[path]; isRemoved {
			continue
		}
		if _, isStaged := staged[path]; isStaged {
			continue
		}
		if _, onDisk := working[path]; !onDisk {
			notes[path] = NoteDeleted
		}
	}
	for _, path := range sortedKeys(notes) {
		r.Modifications = append(r.Modifications, Modification{Path: path, Note: notes[path]})
	}

	for path := range working {
		_, isTracked := tracked[path]
		_, isStaged := staged[path]
		if !isTracked && !isStaged {
			r.Untracked = append(r.Untracked, path)
		}
	}
	sort.Strings(r.Untracked)

	return r
}

// Status gathers the status engine's inputs (branch registry, head
// snapshot, staging area, working-tree scan) and classifies them. Read
// only; safe to call repeatedly.
func Status(cfg *config.Config, st *store.Store, logger *zap.Logger) (*Report, error) {
	branches, current, err := ListBranches(st)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(branches))
	for _, b := range branches {
		names = append(names, b.Name)
	}

	head, _, err := st.HeadCommit()
	if err != nil {
		return nil, err
	}

	sa, err := st.LoadStaging()
	if err != nil {
		return nil, err
	}

	working, err := worktree.Scan(cfg.WorkTree(), worktree.NewIgnore(cfg.Ignore))
	if err != nil {
		return nil, err
	}

	logger.Debug("status inputs",
		zap.Int("tracked", len(head.Snapshot)),
		zap.Int("staged", len(sa.Staged)),
		zap.Int("removed", len(sa.Removed)),
		zap.Int("working", len(working)))

	return ComputeStatus(names, current, head.Snapshot, sa.Staged, sa.Removed, working), nil
}

// String renders the report in the fixed five-section format verified
// character-for-character by tests.
func (r *Report) String() string {
	var sections []string

	lines := []string{"=== Branches ==="}
	for i, name := range r.Branches {
		if i == 0 {
			lines = append(lines, "*"+name)
		} else {
			lines = append(lines, name)
		}
	}
	sections = append(sections, strings.Join(lines, "\n"))

	lines = []string{"=== Staged Files ==="}
	lines = append(lines, r.StagedFiles...)
	sections = append(sections, strings.Join(lines, "\n"))

	lines = []string{"=== Removed Files ==="}
	lines = append(lines, r.RemovedFiles...)
	sections = append(sections, strings.Join(lines, "\n"))

	lines = []string{"=== Modifications Not Staged For Commit ==="}
	for _, m := range r.Modifications {
		lines = append(lines, m.Path+" ("+m.Note+")")
	}
	sections = append(sections, strings.Join(lines, "\n"))

	lines = []string{"=== Untracked Files ==="}
	lines = append(lines, r.Untracked...)
	sections = append(sections, strings.Join(lines, "\n"))

	return strings.Join(sections, "\n\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
