package domain

import (
	"fmt"
	"strings"
)

// BranchName is a validated local branch name
type BranchName struct {
	value string
}

// NewBranchName validates raw and wraps it in a BranchName.
// The name must not be empty, contain "..", or start or end with ".".
func NewBranchName(raw string) (BranchName, error) {
	if raw == "" {
		return BranchName{}, ErrEmptyBranchName
	}

	if strings.Contains(raw, "..") || strings.HasPrefix(raw, ".") || strings.HasSuffix(raw, ".") {
		return BranchName{}, fmt.Errorf("%w: %q", ErrInvalidBranchName, raw)
	}

	return BranchName{value: raw}, nil
}

// String returns the raw branch name
func (b BranchName) String() string {
	return b.value
}

// IsZero reports whether b was never constructed through NewBranchName
func (b BranchName) IsZero() bool {
	return b.value == ""
}
