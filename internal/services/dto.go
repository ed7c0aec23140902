package services

import "github.com/renato0307/arlon/internal/domain"

// DateLayout is the format of CommitRecord.Date, always in UTC
const DateLayout = "2006-01-02 15:04:05"

// CommitRecord is the output projection of a domain.Commit
type CommitRecord struct {
	Hash    string `json:"hash"`
	Author  string `json:"author"`
	Email   string `json:"email"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

// FileRecord is the output projection of a domain.FileChange
type FileRecord struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}

// NewCommitRecord maps a commit to its output record
func NewCommitRecord(c domain.Commit) CommitRecord {
	return CommitRecord{
		Hash:    c.Hash().String(),
		Author:  c.Author(),
		Email:   c.Email(),
		Date:    c.Time().Format(DateLayout),
		Message: c.Message(),
	}
}

// NewFileRecord maps a file change to its output record
func NewFileRecord(fc domain.FileChange) FileRecord {
	return FileRecord{
		Path:   fc.Path().String(),
		Status: fc.Status().String(),
	}
}

// Formatter renders result records for the user.
// Implementations must keep the order of the records they are given.
type Formatter interface {
	RenderCommits(records []CommitRecord) error
	RenderFiles(records []FileRecord) error
}

// HistoryRecord is the output projection of a domain.ComparisonRun
type HistoryRecord struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Branch      string `json:"branch"`
	RepoPath    string `json:"repo_path"`
	ResultCount int    `json:"result_count"`
	RanAt       string `json:"ran_at"`
}

// NewHistoryRecord maps a recorded run to its output record
func NewHistoryRecord(run domain.ComparisonRun) HistoryRecord {
	return HistoryRecord{
		ID:          run.ID,
		Kind:        string(run.Kind),
		Branch:      run.Branch,
		RepoPath:    run.RepoPath,
		ResultCount: run.ResultCount,
		RanAt:       run.RanAt.UTC().Format(DateLayout),
	}
}

// HistoryFormatter renders recorded comparison runs
type HistoryFormatter interface {
	RenderHistory(records []HistoryRecord) error
}
