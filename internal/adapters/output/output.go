package output

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/renato0307/arlon/internal/domain"
	"github.com/renato0307/arlon/internal/services"
)

// Output formats
const (
	FormatJSON   = "json"
	FormatSimple = "simple"
	FormatTable  = "table"
)

// ErrUnknownFormat is returned for a format name NewFormatter does not know
var ErrUnknownFormat = errors.New("unknown output format")

// Formats returns the accepted format names
func Formats() []string {
	return []string{FormatSimple, FormatJSON, FormatTable}
}

// Renderer renders comparison results and recorded runs
type Renderer interface {
	services.Formatter
	services.HistoryFormatter
}

// NewFormatter returns the renderer for format writing to w
func NewFormatter(format string, w io.Writer) (Renderer, error) {
	switch format {
	case "", FormatSimple:
		return NewSimpleFormatter(w), nil
	case FormatJSON:
		return NewJSONFormatter(w), nil
	case FormatTable:
		return NewTableFormatter(w, time.Now), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func outputError(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrOutput, err)
}
