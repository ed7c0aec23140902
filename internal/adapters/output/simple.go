package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/renato0307/arlon/internal/services"
)

// SimpleFormatter writes one plain line per record
type SimpleFormatter struct {
	w io.Writer
}

// NewSimpleFormatter creates a new SimpleFormatter
func NewSimpleFormatter(w io.Writer) *SimpleFormatter {
	return &SimpleFormatter{w: w}
}

// RenderCommits writes "hash date message" lines
func (f *SimpleFormatter) RenderCommits(records []services.CommitRecord) error {
	bw := bufio.NewWriter(f.w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", r.Hash, r.Date, r.Message); err != nil {
			return outputError(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return outputError(err)
	}
	return nil
}

// RenderFiles writes "status path" lines
func (f *SimpleFormatter) RenderFiles(records []services.FileRecord) error {
	bw := bufio.NewWriter(f.w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, "%s %s\n", r.Status, r.Path); err != nil {
			return outputError(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return outputError(err)
	}
	return nil
}

// RenderHistory writes "ran_at kind branch count repo id" lines
func (f *SimpleFormatter) RenderHistory(records []services.HistoryRecord) error {
	bw := bufio.NewWriter(f.w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, "%s %s %s %d %s %s\n", r.RanAt, r.Kind, r.Branch, r.ResultCount, r.RepoPath, r.ID); err != nil {
			return outputError(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return outputError(err)
	}
	return nil
}
