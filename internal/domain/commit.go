package domain

import "time"

// Commit is a single commit as read from the repository.
// Commits are built from an already validated CommitHash and never change.
type Commit struct {
	hash      CommitHash
	author    string
	email     string
	timestamp int64
	message   string
}

// NewCommit creates a Commit. timestamp is the committer time in seconds since
// the Unix epoch and message is the summary line of the commit message.
func NewCommit(hash CommitHash, author, email string, timestamp int64, message string) Commit {
	return Commit{
		hash:      hash,
		author:    author,
		email:     email,
		timestamp: timestamp,
		message:   message,
	}
}

// Hash returns the commit id
func (c Commit) Hash() CommitHash { return c.hash }

// Author returns the author name
func (c Commit) Author() string { return c.author }

// Email returns the author email
func (c Commit) Email() string { return c.email }

// Timestamp returns the committer time in seconds since the Unix epoch
func (c Commit) Timestamp() int64 { return c.timestamp }

// Message returns the summary line
func (c Commit) Message() string { return c.message }

// Time returns the committer time in UTC
func (c Commit) Time() time.Time {
	return time.Unix(c.timestamp, 0).UTC()
}
