package domain

import "fmt"

const (
	// CommitHashLength is the length of a full hex-encoded SHA-1 object id
	CommitHashLength = 40
	// ShortHashLength is the length of the abbreviated hash used for display
	ShortHashLength = 7
)

// CommitHash is a validated full commit object id
type CommitHash struct {
	value string
}

// NewCommitHash validates raw as a 40 character hex string.
// Upper and lower case digits are both accepted and kept as given.
func NewCommitHash(raw string) (CommitHash, error) {
	if raw == "" {
		return CommitHash{}, ErrEmptyCommitHash
	}

	if len(raw) != CommitHashLength {
		return CommitHash{}, fmt.Errorf("%w: %q", ErrInvalidCommitHash, raw)
	}

	for i := 0; i < len(raw); i++ {
		if !isHexDigit(raw[i]) {
			return CommitHash{}, fmt.Errorf("%w: %q", ErrInvalidCommitHash, raw)
		}
	}

	return CommitHash{value: raw}, nil
}

// String returns the full hash
func (h CommitHash) String() string {
	return h.value
}

// Short returns the first 7 characters of the hash
func (h CommitHash) Short() string {
	if len(h.value) < ShortHashLength {
		return h.value
	}
	return h.value[:ShortHashLength]
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
