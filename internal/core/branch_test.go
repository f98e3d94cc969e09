package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/gvc/internal/errs"
)

func TestCreateBranch_AtCurrentCommit(t *testing.T) {
	cfg, st := newTestRepo(t)

	writeWorkFile(t, cfg, "a.txt", "hello")
	_, err := Add(cfg, st, testLogger, []string{"a.txt"})
	require.NoError(t, err)
	id, _, err := Commit(cfg, st, testLogger, "base", time.Now())
	require.NoError(t, err)

	require.NoError(t, CreateBranch(st, testLogger, "feature"))

	branch, err := st.GetBranch("feature")
	require.NoError(t, err)
	require.NotNil(t, branch)
	assert.Equal(t, id, branch.CommitID)

	// Creating a branch does not switch to it
	current, err := st.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, cfg.DefaultBranch, current)
}

func TestCreateBranch_UnbornRepository(t *testing.T) {
	_, st := newTestRepo(t)

	require.NoError(t, CreateBranch(st, testLogger, "feature"))

	branch, err := st.GetBranch("feature")
	require.NoError(t, err)
	require.NotNil(t, branch)
	assert.Empty(t, branch.CommitID)
}

func TestCreateBranch_Duplicate(t *testing.T) {
	cfg, st := newTestRepo(t)

	err := CreateBranch(st, testLogger, cfg.DefaultBranch)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.New(errs.BranchExists)))
}

func TestListBranches_WithCurrent(t *testing.T) {
	cfg, st := newTestRepo(t)
	require.NoError(t, CreateBranch(st, testLogger, "dev"))

	branches, current, err := ListBranches(st)
	require.NoError(t, err)
	assert.Equal(t, cfg.DefaultBranch, current)
	require.Len(t, branches, 2)
	assert.Equal(t, "dev", branches[0].Name)
	assert.Equal(t, "main", branches[1].Name)
}

func TestBranchesStayPutOnOtherBranchCommit(t *testing.T) {
	cfg, st := newTestRepo(t)

	writeWorkFile(t, cfg, "a.txt", "v1")
	_, err := Add(cfg, st, testLogger, []string{"a.txt"})
	require.NoError(t, err)
	first, _, err := Commit(cfg, st, testLogger, "first", time.Now())
	require.NoError(t, err)

	require.NoError(t, CreateBranch(st, testLogger, "pinned"))

	writeWorkFile(t, cfg, "a.txt", "v2")
	_, err = Add(cfg, st, testLogger, []string{"a.txt"})
	require.NoError(t, err)
	second, _, err := Commit(cfg, st, testLogger, "second", time.Now())
	require.NoError(t, err)

	pinned, err := st.GetBranch("pinned")
	require.NoError(t, err)
	assert.Equal(t, first, pinned.CommitID, "only the active branch advances")

	active, err := st.GetBranch(cfg.DefaultBranch)
	require.NoError(t, err)
	assert.Equal(t, second, active.CommitID)
}
