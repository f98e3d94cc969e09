package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kilupskalvis/gvc/internal/config"
	"github.com/kilupskalvis/gvc/internal/errs"
	"github.com/kilupskalvis/gvc/internal/models"
	"github.com/kilupskalvis/gvc/internal/store"
)

// newTestRepo initializes a full repository in a temp directory and
// returns its config and open store.
func newTestRepo(t *testing.T) (*config.Config, *store.Store) {
	t.Helper()

	cfg, err := config.Initialize(t.TempDir())
	require.NoError(t, err)

	st, err := store.New(cfg.DatabasePath())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	require.NoError(t, InitRepository(cfg, st))
	return cfg, st
}

func writeWorkFile(t *testing.T, cfg *config.Config, rel, content string) {
	t.Helper()
	path := filepath.Join(cfg.WorkTree(), filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

var testLogger = zap.NewNop()

func TestBuildSnapshot(t *testing.T) {
	parent := map[string]string{"a.txt": "old-a", "b.txt": "id-b"}
	sa := models.NewStagingArea()
	sa.StageForAdd("a.txt", "new-a")
	sa.StageForAdd("c.txt", "id-c")
	require.NoError(t, sa.UnstageOrStageForRemove("b.txt", true))

	snapshot := BuildSnapshot(parent, sa)

	assert.Equal(t, map[string]string{"a.txt": "new-a", "c.txt": "id-c"}, snapshot)
	assert.Equal(t, "old-a", parent["a.txt"], "parent snapshot must not be mutated")
	assert.Contains(t, parent, "b.txt")
}

func TestCommit_EmptyMessage(t *testing.T) {
	cfg, st := newTestRepo(t)

	for _, message := range []string{"", "   ", "\t\n"} {
		_, _, err := Commit(cfg, st, testLogger, message, time.Now())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.New(errs.EmptyMessage)))
	}
}

func TestCommit_NothingStaged(t *testing.T) {
	cfg, st := newTestRepo(t)

	_, _, err := Commit(cfg, st, testLogger, "empty", time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.New(errs.NothingToCommit)))
	assert.Equal(t, "No changes added to the commit.", err.Error())
}

func TestCommit_FirstCommit(t *testing.T) {
	cfg, st := newTestRepo(t)
	writeWorkFile(t, cfg, "a.txt", "hello")

	_, err := Add(cfg, st, testLogger, []string{"a.txt"})
	require.NoError(t, err)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	id, commit, err := Commit(cfg, st, testLogger, "first", now)
	require.NoError(t, err)

	assert.Len(t, id, 64)
	assert.Equal(t, "first", commit.Message)
	assert.Equal(t, now.Unix(), commit.Timestamp)
	assert.Empty(t, commit.Parent)
	assert.Len(t, commit.Snapshot, 1)

	// Staging area is cleared
	sa, err := st.LoadStaging()
	require.NoError(t, err)
	assert.True(t, sa.IsEmpty())

	// Branch advanced to the new commit
	headID, err := st.HeadCommitID()
	require.NoError(t, err)
	assert.Equal(t, id, headID)

	// Blob content is retrievable through the snapshot
	blobID := commit.Snapshot["a.txt"]
	content, err := st.GetBlob(blobID)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), content)
}

func TestCommit_ChainsParents(t *testing.T) {
	cfg, st := newTestRepo(t)

	writeWorkFile(t, cfg, "a.txt", "v1")
	_, err := Add(cfg, st, testLogger, []string{"a.txt"})
	require.NoError(t, err)
	first, _, err := Commit(cfg, st, testLogger, "first", time.Now())
	require.NoError(t, err)

	writeWorkFile(t, cfg, "a.txt", "v2")
	_, err = Add(cfg, st, testLogger, []string{"a.txt"})
	require.NoError(t, err)
	second, commit, err := Commit(cfg, st, testLogger, "second", time.Now())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, first, commit.Parent)
}

func TestCommit_RemovalDeletesWorkingFile(t *testing.T) {
	cfg, st := newTestRepo(t)

	writeWorkFile(t, cfg, "a.txt", "content")
	_, err := Add(cfg, st, testLogger, []string{"a.txt"})
	require.NoError(t, err)
	_, _, err = Commit(cfg, st, testLogger, "track", time.Now())
	require.NoError(t, err)

	require.NoError(t, Remove(cfg, st, testLogger, []string{"a.txt"}))

	_, commit, err := Commit(cfg, st, testLogger, "drop", time.Now())
	require.NoError(t, err)

	assert.NotContains(t, commit.Snapshot, "a.txt")

	_, statErr := os.Stat(filepath.Join(cfg.WorkTree(), "a.txt"))
	assert.True(t, os.IsNotExist(statErr), "committed removal deletes the working file")
}

func TestCommit_RemovalOfAlreadyDeletedFile(t *testing.T) {
	cfg, st := newTestRepo(t)

	writeWorkFile(t, cfg, "a.txt", "content")
	_, err := Add(cfg, st, testLogger, []string{"a.txt"})
	require.NoError(t, err)
	_, _, err = Commit(cfg, st, testLogger, "track", time.Now())
	require.NoError(t, err)

	// User deletes the file themselves, then stages the removal
	require.NoError(t, os.Remove(filepath.Join(cfg.WorkTree(), "a.txt")))
	require.NoError(t, Remove(cfg, st, testLogger, []string{"a.txt"}))

	_, commit, err := Commit(cfg, st, testLogger, "drop", time.Now())
	require.NoError(t, err)
	assert.NotContains(t, commit.Snapshot, "a.txt")
}

func TestCommit_UnchangedRestagedContent(t *testing.T) {
	cfg, st := newTestRepo(t)

	writeWorkFile(t, cfg, "a.txt", "same")
	_, err := Add(cfg, st, testLogger, []string{"a.txt"})
	require.NoError(t, err)
	first, firstCommit, err := Commit(cfg, st, testLogger, "first", time.Now())
	require.NoError(t, err)

	// Re-adding identical content stages the same blob binding; the
	// commit still succeeds and tracks the identical snapshot.
	_, err = Add(cfg, st, testLogger, []string{"a.txt"})
	require.NoError(t, err)
	_, secondCommit, err := Commit(cfg, st, testLogger, "second", time.Now())
	require.NoError(t, err)

	assert.Equal(t, firstCommit.Snapshot, secondCommit.Snapshot)
	assert.Equal(t, first, secondCommit.Parent)
}
