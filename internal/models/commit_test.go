package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitID_Deterministic(t *testing.T) {
	commit := &Commit{
		Message:   "Initial commit",
		Timestamp: 1700000000,
		Snapshot:  map[string]string{"a.txt": "id-a", "b.txt": "id-b"},
		Parent:    "",
	}

	id1, err := CommitID(commit)
	require.NoError(t, err)
	id2, err := CommitID(commit)
	require.NoError(t, err)

	assert.Equal(t, id1, id2, "Same commit should produce same ID")
	assert.Len(t, id1, 64, "Commit ID should be SHA256 hex (64 chars)")
}

func TestCommitID_SnapshotOrderIrrelevant(t *testing.T) {
	// Maps built in different insertion order must hash identically.
	a := &Commit{Message: "m", Timestamp: 1, Snapshot: map[string]string{}}
	b := &Commit{Message: "m", Timestamp: 1, Snapshot: map[string]string{}}
	for _, k := range []string{"x", "y", "z"} {
		a.Snapshot[k] = "id-" + k
	}
	for _, k := range []string{"z", "x", "y"} {
		b.Snapshot[k] = "id-" + k
	}

	idA, err := CommitID(a)
	require.NoError(t, err)
	idB, err := CommitID(b)
	require.NoError(t, err)
	assert.Equal(t, idA, idB)
}

func TestCommitID_DifferentInputs(t *testing.T) {
	base := Commit{Message: "m", Timestamp: 1, Snapshot: map[string]string{"a": "1"}, Parent: "p"}

	variants := []Commit{base, base, base, base}
	variants[1].Message = "other"
	variants[2].Timestamp = 2
	variants[3].Parent = "q"

	baseID, err := CommitID(&base)
	require.NoError(t, err)
	for i := 1; i < len(variants); i++ {
		id, err := CommitID(&variants[i])
		require.NoError(t, err)
		assert.NotEqual(t, baseID, id, "variant %d should hash differently", i)
	}
}

func TestCommitID_NilSnapshotEqualsEmpty(t *testing.T) {
	withNil := &Commit{Message: "m", Timestamp: 1}
	withEmpty := &Commit{Message: "m", Timestamp: 1, Snapshot: map[string]string{}}

	idNil, err := CommitID(withNil)
	require.NoError(t, err)
	idEmpty, err := CommitID(withEmpty)
	require.NoError(t, err)
	assert.Equal(t, idEmpty, idNil)
}

func TestEncodeDecodeCommit_RoundTrip(t *testing.T) {
	commit := &Commit{
		Message:   "Add docs",
		Timestamp: 1712345678,
		Snapshot:  map[string]string{"docs/guide.md": "blob1"},
		Parent:    "parent-id",
	}

	data, err := EncodeCommit(commit)
	require.NoError(t, err)

	decoded, err := DecodeCommit(data)
	require.NoError(t, err)
	assert.Equal(t, commit, decoded)
}

func TestDecodeCommit_NormalizesNilSnapshot(t *testing.T) {
	decoded, err := DecodeCommit([]byte(`{"message":"m","timestamp":0,"parent":""}`))
	require.NoError(t, err)
	assert.NotNil(t, decoded.Snapshot)
	assert.Empty(t, decoded.Snapshot)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abcdefg", ShortID("abcdefghij"))
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "", ShortID(""))
}
