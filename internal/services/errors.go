package services

import "errors"

// Use case errors. Both wrap the underlying cause, so errors.Is also matches the
// domain error that triggered them.
var (
	ErrInvalidBranchName = errors.New("invalid branch name")
	ErrRepository        = errors.New("git repository error")
)
