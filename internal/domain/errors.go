package domain

import (
	"errors"
	"fmt"
)

// Validation errors returned by the value object constructors
var (
	ErrEmptyBranchName   = errors.New("branch name cannot be empty")
	ErrInvalidBranchName = errors.New("branch name contains invalid characters")
	ErrEmptyCommitHash   = errors.New("commit hash cannot be empty")
	ErrInvalidCommitHash = errors.New("invalid commit hash format")
	ErrEmptyFilePath     = errors.New("file path cannot be empty")
)

// Provider errors returned by repository adapters
var (
	ErrBranchNotFound  = errors.New("branch not found")
	ErrInvalidData     = errors.New("invalid repository data")
	ErrOperationFailed = errors.New("git operation failed")
)

// ErrOutput is returned when rendering or writing results fails
var ErrOutput = errors.New("output error")

// BranchNotFoundError carries the name of the branch that could not be resolved.
// It matches ErrBranchNotFound with errors.Is.
type BranchNotFoundError struct {
	Branch string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch not found: %s", e.Branch)
}

// Is reports whether target is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a BranchNotFoundError for branch
func NewBranchNotFoundError(branch BranchName) error {
	return &BranchNotFoundError{Branch: branch.String()}
}
