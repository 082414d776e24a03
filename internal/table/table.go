// Package table renders headers and rows as a box-drawn text block for the
// console.
//
// A Table is built in three steps: construct it with a style, set the headers
// once, then append rows. Column widths grow as rows are appended and are
// applied uniformly to every line when the table is rendered:
//
//	t := table.New(table.StyleBold)
//	if err := t.SetHeaders("ID", "Name"); err != nil {
//		return err
//	}
//	_ = t.AddRow("1", "Alice")
//	out, err := t.Render()
//
// Widths are naive character counts; wide or combining runes are not
// measured by display width. A Table is not safe for concurrent use.
package table

import (
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/boxtable/internal/logger"
	tableerrors "github.com/alexisbeaulieu97/boxtable/pkg/errors"
)

// Placeholder is stored in place of a missing or empty cell.
const Placeholder = "_null_"

// Option configures a Table at construction time.
type Option func(*Table)

// WithLogger attaches a logger that receives debug events about header setup
// and row adjustment.
func WithLogger(log *logger.Logger) Option {
	return func(t *Table) {
		t.log = log.WithFields(map[string]any{"component": "table"})
	}
}

// Table accumulates headers and rows and renders them with a fixed Style.
type Table struct {
	style   Style
	headers []string
	rows    [][]string
	widths  []int
	log     *logger.Logger
}

// New creates an empty table using the style resolved from id.
func New(id StyleID, opts ...Option) *Table {
	t := &Table{style: Resolve(id)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetHeaders validates and stores the column headers. Headers are trimmed and
// upper-cased; two headers that differ only by case or surrounding whitespace
// are duplicates. Headers can be set once; nothing is stored when an error is
// returned.
func (t *Table) SetHeaders(names ...string) error {
	if t.headers != nil {
		return tableerrors.NewInvalidStateError("headers are already set")
	}
	if len(names) == 0 {
		return tableerrors.NewInvalidHeadersError("headers cannot be empty", nil)
	}

	normalized := make([]string, len(names))
	seen := make(map[string]int, len(names))
	for i, name := range names {
		header := normalizeHeader(name)
		if header == "" {
			return tableerrors.NewInvalidHeadersError("headers cannot contain blank values", map[string]any{"index": i})
		}
		if first, ok := seen[header]; ok {
			return tableerrors.NewInvalidHeadersError("duplicate header found: "+header, map[string]any{
				"header": header,
				"index":  i,
				"first":  first,
			})
		}
		seen[header] = i
		normalized[i] = header
	}

	widths := make([]int, len(normalized))
	for i, header := range normalized {
		widths[i] = utf8.RuneCountInString(header)
	}

	t.headers = normalized
	t.widths = widths
	t.log.Debug("headers set", "columns", len(normalized))
	return nil
}

func normalizeHeader(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// AddRow appends a row. Missing and empty cells are stored as Placeholder,
// other cells are trimmed, and cells beyond the header count are ignored. The
// only error is calling AddRow before SetHeaders.
func (t *Table) AddRow(cells ...string) error {
	if t.headers == nil {
		return tableerrors.NewInvalidStateError("headers must be set before adding rows")
	}

	if len(cells) > len(t.headers) {
		t.log.Debug("ignoring cells beyond header count", "cells", len(cells), "columns", len(t.headers))
	}

	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) && cells[i] != "" {
			row[i] = strings.TrimSpace(cells[i])
		} else {
			row[i] = Placeholder
		}
	}

	t.rows = append(t.rows, row)
	for i, cell := range row {
		if n := utf8.RuneCountInString(cell); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	return nil
}

// Render returns the table as newline-terminated lines: top border, header
// row, middle border, one line per row, bottom border. Rendering does not
// modify the table.
func (t *Table) Render() (string, error) {
	if t.headers == nil {
		return "", tableerrors.NewInvalidStateError("headers must be set before rendering")
	}

	var sb strings.Builder
	s := t.style
	t.writeBorder(&sb, s.UpperLeft, s.UpperCenter, s.UpperRight)
	t.writeRow(&sb, t.headers)
	t.writeBorder(&sb, s.MiddleLeft, s.MiddleCenter, s.MiddleRight)
	for _, row := range t.rows {
		t.writeRow(&sb, row)
	}
	t.writeBorder(&sb, s.LowerLeft, s.LowerCenter, s.LowerRight)
	return sb.String(), nil
}

// String implements fmt.Stringer. It returns "" when the table cannot be
// rendered yet.
func (t *Table) String() string {
	out, err := t.Render()
	if err != nil {
		return ""
	}
	return out
}

func (t *Table) writeBorder(sb *strings.Builder, left, center, right string) {
	sb.WriteString(left)
	for i, width := range t.widths {
		if i > 0 {
			sb.WriteString(center)
		}
		sb.WriteString(strings.Repeat(t.style.Line, width+2))
	}
	sb.WriteString(right)
	sb.WriteByte('\n')
}

func (t *Table) writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString(t.style.Wall)
	for i, cell := range cells {
		sb.WriteByte(' ')
		sb.WriteString(padRight(cell, t.widths[i]))
		sb.WriteByte(' ')
		sb.WriteString(t.style.Wall)
	}
	sb.WriteByte('\n')
}

func padRight(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}

// Style returns the glyph set the table renders with.
func (t *Table) Style() Style {
	return t.style
}

// ColumnCount returns the number of columns, or 0 before headers are set.
func (t *Table) ColumnCount() int {
	return len(t.headers)
}

// Headers returns a copy of the normalized headers.
func (t *Table) Headers() []string {
	return append([]string(nil), t.headers...)
}

// ColumnWidths returns a copy of the current column widths.
func (t *Table) ColumnWidths() []int {
	return append([]int(nil), t.widths...)
}

// Rows returns a copy of the stored rows.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = append([]string(nil), row...)
	}
	return rows
}
