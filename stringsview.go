package sheetpdf

import (
	"strings"
)

var _ View = new(StringsView)

// StringsView is a View implementation that uses strings as cell values.
//
// The Cols field defines the column titles and the number of columns.
// Rows support sparse data: a row can have fewer elements than Cols,
// missing cells are returned as empty strings.
type StringsView struct {
	Tit  string
	Cols []string
	Rows [][]string
}

// NewStringsView creates a StringsView with the passed title and rows.
//
// If no cols are passed and rows is not empty, the first row is used
// as column titles and removed from the data rows.
// All column titles are trimmed of surrounding whitespace.
func NewStringsView(title string, rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = rows[0]
		rows = rows[1:]
	}
	for i, col := range cols {
		cols[i] = strings.TrimSpace(col)
	}
	return &StringsView{Tit: title, Cols: cols, Rows: rows}
}

func (view *StringsView) Title() string     { return view.Tit }
func (view *StringsView) Columns() []string { return view.Cols }
func (view *StringsView) NumRows() int      { return len(view.Rows) }

// Cell returns the string at row and col,
// an empty string for missing cells of sparse rows,
// or nil if the indices are out of bounds.
func (view *StringsView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Cols) {
		return nil
	}
	if col >= len(view.Rows[row]) {
		return ""
	}
	return view.Rows[row][col]
}

var _ View = new(HeaderView)

// HeaderView is a View that contains only a header row:
// the column titles are also the cell values of its single row.
type HeaderView struct {
	Tit  string
	Cols []string
}

// NewHeaderView creates a HeaderView with the passed column titles
// trimmed of surrounding whitespace.
func NewHeaderView(cols ...string) *HeaderView {
	for i, col := range cols {
		cols[i] = strings.TrimSpace(col)
	}
	return &HeaderView{Cols: cols}
}

// NewHeaderViewFrom creates a HeaderView with the
// title and column titles of the source view.
func NewHeaderViewFrom(source View) *HeaderView {
	return &HeaderView{Tit: source.Title(), Cols: source.Columns()}
}

func (view *HeaderView) Title() string     { return view.Tit }
func (view *HeaderView) Columns() []string { return view.Cols }
func (view *HeaderView) NumRows() int      { return 1 }

// Cell returns the column title at col for row 0,
// or nil for any other indices.
func (view *HeaderView) Cell(row, col int) any {
	if row != 0 || col < 0 || col >= len(view.Cols) {
		return nil
	}
	return view.Cols[col]
}
