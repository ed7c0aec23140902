package domain

import "time"

// ComparisonKind identifies which comparison a run performed
type ComparisonKind string

const (
	KindCommits ComparisonKind = "commits"
	KindFiles   ComparisonKind = "files"
)

// ComparisonRun is a recorded invocation of one of the comparisons
type ComparisonRun struct {
	Branch      string
	ID          string
	Kind        ComparisonKind
	RanAt       time.Time
	RepoPath    string
	ResultCount int
}
