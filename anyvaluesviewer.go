package sheetpdf

import "fmt"

var _ Viewer = new(AnyValuesViewer)

// AnyValuesViewer is a Viewer implementation
// that creates Views from [][]any tables.
//
// The Cols field can preset the column titles of created views.
// With empty Cols the first table row is used as column titles
// formatted with FormatValue.
type AnyValuesViewer struct {
	Cols []string
}

// NewView creates an AnyValuesView from a [][]any table.
func (v AnyValuesViewer) NewView(title string, table any) (View, error) {
	rows, ok := table.([][]any)
	if !ok {
		return nil, fmt.Errorf("expected table of type [][]any, but got %T", table)
	}
	return NewAnyValuesView(title, rows, v.Cols...), nil
}
