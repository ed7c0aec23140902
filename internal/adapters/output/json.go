package output

import (
	"encoding/json"
	"io"

	"github.com/renato0307/arlon/internal/services"
)

// JSONFormatter writes records as a pretty printed JSON array
type JSONFormatter struct {
	w io.Writer
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

// RenderCommits implements services.Formatter
func (f *JSONFormatter) RenderCommits(records []services.CommitRecord) error {
	if records == nil {
		records = []services.CommitRecord{}
	}
	return f.write(records)
}

// RenderFiles implements services.Formatter
func (f *JSONFormatter) RenderFiles(records []services.FileRecord) error {
	if records == nil {
		records = []services.FileRecord{}
	}
	return f.write(records)
}

// RenderHistory implements services.HistoryFormatter
func (f *JSONFormatter) RenderHistory(records []services.HistoryRecord) error {
	if records == nil {
		records = []services.HistoryRecord{}
	}
	return f.write(records)
}

func (f *JSONFormatter) write(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return outputError(err)
	}
	data = append(data, '\n')
	if _, err := f.w.Write(data); err != nil {
		return outputError(err)
	}
	return nil
}
