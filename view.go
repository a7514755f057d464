package sheetpdf

import "reflect"

// View is the abstraction for tabular data
// with a title, column titles, and cell values
// addressable by row and column indices.
//
// Row indices address data rows starting at zero,
// the column titles are not counted as a row.
type View interface {
	Title() string
	Columns() []string
	NumRows() int
	// Cell returns the value of the cell at row and col,
	// or nil if the indices are out of bounds.
	Cell(row, col int) any
}

// ReflectCellView is a View that can also
// return cell values as reflect.Value.
type ReflectCellView interface {
	View

	// ReflectCell returns the reflect.Value of the cell at row and col,
	// or an invalid reflect.Value if the indices are out of bounds.
	ReflectCell(row, col int) reflect.Value
}

// AsReflectCellView returns the passed view as ReflectCellView
// if it implements the interface, or wraps the view so that
// ReflectCell returns reflect.ValueOf of the Cell value.
func AsReflectCellView(view View) ReflectCellView {
	if v, ok := view.(ReflectCellView); ok {
		return v
	}
	return reflectCellView{view}
}

type reflectCellView struct {
	View
}

func (v reflectCellView) ReflectCell(row, col int) reflect.Value {
	return reflect.ValueOf(v.Cell(row, col))
}
