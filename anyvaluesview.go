package sheetpdf

import (
	"reflect"
)

var _ ReflectCellView = new(AnyValuesView)

// AnyValuesView is a View implementation
// that holds its rows as slices of values with any type.
type AnyValuesView struct {
	Tit  string
	Cols []string
	Rows [][]any
}

// NewAnyValuesView creates an AnyValuesView with the passed title and rows.
//
// If no cols are passed and rows is not empty, the first row is used
// as column titles formatted with FormatValue and removed from the
// data rows.
func NewAnyValuesView(title string, rows [][]any, cols ...string) *AnyValuesView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = make([]string, len(rows[0]))
		for i, val := range rows[0] {
			cols[i] = FormatValue(val)
		}
		rows = rows[1:]
	}
	return &AnyValuesView{Tit: title, Cols: cols, Rows: rows}
}

// NewAnyValuesViewFrom reads and caches all cells
// from the source View as AnyValuesView.
func NewAnyValuesViewFrom(source View) *AnyValuesView {
	view := &AnyValuesView{
		Tit:  source.Title(),
		Cols: source.Columns(),
		Rows: make([][]any, source.NumRows()),
	}
	for row := 0; row < source.NumRows(); row++ {
		view.Rows[row] = make([]any, len(source.Columns()))
		for col := range view.Rows[row] {
			view.Rows[row][col] = source.Cell(row, col)
		}
	}
	return view
}

func (view *AnyValuesView) Title() string     { return view.Tit }
func (view *AnyValuesView) Columns() []string { return view.Cols }
func (view *AnyValuesView) NumRows() int      { return len(view.Rows) }

func (view *AnyValuesView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Rows[row]) {
		return nil
	}
	return view.Rows[row][col]
}

func (view *AnyValuesView) ReflectCell(row, col int) reflect.Value {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Rows[row]) {
		return reflect.Value{}
	}
	return reflect.ValueOf(view.Rows[row][col])
}
