package models

import "time"

// Branch represents a named reference to a commit. An empty CommitID
// marks an unborn branch (no commits yet).
type Branch struct {
	Name      string    `json:"name"`
	CommitID  string    `json:"commit_id"`
	CreatedAt time.Time `json:"created_at"`
}
