package models

import (
	"encoding/json"

	"github.com/kilupskalvis/gvc/internal/errs"
)

// StagingArea records pending intentions for the next commit: paths
// staged for addition (path -> blob identifier) and paths staged for
// removal. A path is never present in both maps at once.
type StagingArea struct {
	Staged  map[string]string `json:"staged"`
	Removed map[string]string `json:"removed"`
}

// NewStagingArea returns an empty staging area.
func NewStagingArea() *StagingArea {
	return &StagingArea{
		Staged:  map[string]string{},
		Removed: map[string]string{},
	}
}

// StageForAdd inserts or overwrites the add-set entry for path. Any
// staged-for-removal marker for the same path is cleared, preserving
// the mutual-exclusion invariant.
func (sa *StagingArea) StageForAdd(path, id string) {
	delete(sa.Removed, path)
	sa.Staged[path] = id
}

// UnstageOrStageForRemove implements the rm state transition:
// a path staged for addition is simply unstaged; otherwise a path
// tracked by the head commit is staged for removal; otherwise there is
// no reason to remove it.
func (sa *StagingArea) UnstageOrStageForRemove(path string, trackedInHead bool) error {
	if _, ok := sa.Staged[path]; ok {
		delete(sa.Staged, path)
		return nil
	}
	if trackedInHead {
		delete(sa.Staged, path)
		sa.Removed[path] = ""
		return nil
	}
	return errs.NewPath(errs.NoReasonToRemove, path)
}

// Clear empties both sets. Invoked after a successful commit.
func (sa *StagingArea) Clear() {
	sa.Staged = map[string]string{}
	sa.Removed = map[string]string{}
}

// IsEmpty reports whether there is nothing staged in either set.
func (sa *StagingArea) IsEmpty() bool {
	return len(sa.Staged) == 0 && len(sa.Removed) == 0
}

// EncodeStagingArea produces the canonical byte encoding of the full
// staging state. The whole value is rewritten on every persist; there
// is no incremental log.
func EncodeStagingArea(sa *StagingArea) ([]byte, error) {
	data, err := json.Marshal(sa)
	if err != nil {
		return nil, errs.Wrap(errs.SerializationFault, err)
	}
	return data, nil
}

// DecodeStagingArea parses a staging-area encoding. Empty input yields
// an empty staging area, matching a freshly initialized repository.
func DecodeStagingArea(data []byte) (*StagingArea, error) {
	if len(data) == 0 {
		return NewStagingArea(), nil
	}
	var sa StagingArea
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, errs.Wrap(errs.SerializationFault, err)
	}
	if sa.Staged == nil {
		sa.Staged = map[string]string{}
	}
	if sa.Removed == nil {
		sa.Removed = map[string]string{}
	}
	return &sa, nil
}
