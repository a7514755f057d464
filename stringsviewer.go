package sheetpdf

import "fmt"

var _ Viewer = new(StringsViewer)

// StringsViewer is a Viewer implementation
// that creates Views from [][]string tables.
//
// The Cols field can preset the column titles of created views.
// With empty Cols the first table row is used as column titles.
type StringsViewer struct {
	Cols []string
}

// NewView creates a StringsView from a [][]string table.
func (v StringsViewer) NewView(title string, table any) (View, error) {
	rows, ok := table.([][]string)
	if !ok {
		return nil, fmt.Errorf("expected table of type [][]string, but got %T", table)
	}
	return NewStringsView(title, rows, v.Cols...), nil
}
