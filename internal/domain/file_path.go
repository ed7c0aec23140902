package domain

// FilePath is a non-empty repository path, relative or absolute
type FilePath struct {
	value string
}

// NewFilePath wraps raw in a FilePath
func NewFilePath(raw string) (FilePath, error) {
	if raw == "" {
		return FilePath{}, ErrEmptyFilePath
	}
	return FilePath{value: raw}, nil
}

// String returns the raw path
func (p FilePath) String() string {
	return p.value
}
