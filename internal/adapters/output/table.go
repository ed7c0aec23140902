package output

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/renato0307/arlon/internal/domain"
	"github.com/renato0307/arlon/internal/services"
	"github.com/renato0307/arlon/internal/theme"
)

const maxMessageWidth = 72

// TableFormatter writes records as an aligned table with coloured statuses
type TableFormatter struct {
	now func() time.Time
	w   io.Writer
}

// NewTableFormatter creates a new TableFormatter. now is used for commit ages.
func NewTableFormatter(w io.Writer, now func() time.Time) *TableFormatter {
	return &TableFormatter{now: now, w: w}
}

// RenderCommits implements services.Formatter
func (f *TableFormatter) RenderCommits(records []services.CommitRecord) error {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Hash", "Age", "Author", "Message"})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, WidthMax: maxMessageWidth},
	})

	now := f.now()
	for _, r := range records {
		tbl.AppendRow(table.Row{
			theme.HashStyle.Render(shortHash(r.Hash)),
			theme.MutedStyle.Render(f.age(r.Date, now)),
			r.Author,
			r.Message,
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d commits", len(records))})

	return f.write(tbl)
}

// RenderFiles implements services.Formatter
func (f *TableFormatter) RenderFiles(records []services.FileRecord) error {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Status", "Path"})

	for _, r := range records {
		tbl.AppendRow(table.Row{
			theme.StatusStyle(r.Status).Render(r.Status),
			r.Path,
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d files", len(records))})

	return f.write(tbl)
}

// RenderHistory implements services.HistoryFormatter
func (f *TableFormatter) RenderHistory(records []services.HistoryRecord) error {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Ran", "Kind", "Branch", "Results", "Repository"})

	now := f.now()
	for _, r := range records {
		tbl.AppendRow(table.Row{
			theme.MutedStyle.Render(f.age(r.RanAt, now)),
			r.Kind,
			theme.BranchStyle.Render(r.Branch),
			r.ResultCount,
			theme.MutedStyle.Render(r.RepoPath),
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d runs", len(records))})

	return f.write(tbl)
}

func (f *TableFormatter) age(date string, now time.Time) string {
	t, err := time.ParseInLocation(services.DateLayout, date, time.UTC)
	if err != nil {
		return date
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func (f *TableFormatter) write(tbl table.Writer) error {
	if _, err := io.WriteString(f.w, tbl.Render()+"\n"); err != nil {
		return outputError(err)
	}
	return nil
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	return tbl
}

func shortHash(hash string) string {
	if len(hash) > domain.ShortHashLength {
		return hash[:domain.ShortHashLength]
	}
	return hash
}
