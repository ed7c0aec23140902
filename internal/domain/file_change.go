package domain

// FileChangeStatus is the kind of change recorded for a path in a tree diff
type FileChangeStatus int

const (
	StatusUnmodified FileChangeStatus = iota
	StatusAdded
	StatusDeleted
	StatusModified
	StatusRenamed
	StatusCopied
	StatusIgnored
	StatusUntracked
	StatusTypechange
	StatusUnreadable
	StatusConflicted
)

var statusTokens = map[FileChangeStatus]string{
	StatusAdded:      "added",
	StatusDeleted:    "deleted",
	StatusModified:   "modified",
	StatusRenamed:    "renamed",
	StatusCopied:     "copied",
	StatusIgnored:    "ignored",
	StatusUntracked:  "untracked",
	StatusTypechange: "typechange",
	StatusUnreadable: "unreadable",
	StatusConflicted: "conflicted",
	StatusUnmodified: "unmodified",
}

// String returns the lowercase token used for display and serialization
func (s FileChangeStatus) String() string {
	if token, ok := statusTokens[s]; ok {
		return token
	}
	return "unknown"
}

// AllFileChangeStatuses returns every status in declaration order
func AllFileChangeStatuses() []FileChangeStatus {
	return []FileChangeStatus{
		StatusUnmodified,
		StatusAdded,
		StatusDeleted,
		StatusModified,
		StatusRenamed,
		StatusCopied,
		StatusIgnored,
		StatusUntracked,
		StatusTypechange,
		StatusUnreadable,
		StatusConflicted,
	}
}

// FileChange is one changed path between two trees
type FileChange struct {
	path   FilePath
	status FileChangeStatus
}

// NewFileChange creates a FileChange
func NewFileChange(path FilePath, status FileChangeStatus) FileChange {
	return FileChange{path: path, status: status}
}

// Path returns the changed path
func (f FileChange) Path() FilePath { return f.path }

// Status returns the kind of change
func (f FileChange) Status() FileChangeStatus { return f.status }
