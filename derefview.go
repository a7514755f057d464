package sheetpdf

import "reflect"

// DerefView returns a ReflectCellView that dereferences
// all cell values of the source View.
// Cell and ReflectCell panic when the underlying
// source value can't be dereferenced.
func DerefView(source View) ReflectCellView {
	return derefView{source: AsReflectCellView(source)}
}

type derefView struct {
	source ReflectCellView
}

func (v derefView) Title() string     { return v.source.Title() }
func (v derefView) Columns() []string { return v.source.Columns() }
func (v derefView) NumRows() int      { return v.source.NumRows() }

func (v derefView) Cell(row, col int) any {
	return v.source.ReflectCell(row, col).Elem().Interface()
}

func (v derefView) ReflectCell(row, col int) reflect.Value {
	return v.source.ReflectCell(row, col).Elem()
}
