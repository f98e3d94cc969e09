package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/kilupskalvis/gvc/internal/errs"
)

// Commit is an immutable snapshot record. Snapshot is the complete
// path -> blob identifier mapping as of this commit, never a diff.
// The zero-parent, zero-timestamp commit with an empty snapshot is the
// implicit state of an unborn branch.
type Commit struct {
	Message   string            `json:"message"`
	Timestamp int64             `json:"timestamp"`
	Snapshot  map[string]string `json:"snapshot"`
	Parent    string            `json:"parent"`
}

// NewCommit returns an empty commit with a non-nil snapshot.
func NewCommit() *Commit {
	return &Commit{Snapshot: map[string]string{}}
}

// ShortID returns the first 7 characters of a commit identifier.
func ShortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

// EncodeCommit produces the canonical byte encoding of a commit:
// deterministic JSON with fixed field order and sorted snapshot keys.
// The commit identifier is the SHA-256 digest of exactly these bytes.
func EncodeCommit(c *Commit) ([]byte, error) {
	if c.Snapshot == nil {
		c = &Commit{
			Message:   c.Message,
			Timestamp: c.Timestamp,
			Snapshot:  map[string]string{},
			Parent:    c.Parent,
		}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, errs.Wrap(errs.SerializationFault, err)
	}
	return data, nil
}

// DecodeCommit parses a canonical commit encoding.
func DecodeCommit(data []byte) (*Commit, error) {
	var c Commit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errs.Wrap(errs.SerializationFault, err)
	}
	if c.Snapshot == nil {
		c.Snapshot = map[string]string{}
	}
	return &c, nil
}

// CommitID computes the content identifier of a commit from its
// canonical encoding.
func CommitID(c *Commit) (string, error) {
	data, err := EncodeCommit(c)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
