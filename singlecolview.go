package sheetpdf

import "reflect"

var _ ReflectCellView = new(singleColView[int])

// SingleColView returns a View with a single column
// where every element of rows is one row of the view.
// The column title is also used as view title.
func SingleColView[T any](column string, rows []T) View {
	return &singleColView[T]{
		title:          column,
		columns:        []string{column},
		rows:           rows,
		isReflectValue: reflect.TypeOf(rows).Elem() == reflect.TypeOf(reflect.Value{}),
	}
}

// SingleCellView returns a View with a single column
// and a single row containing the passed value as only cell.
func SingleCellView[T any](title, column string, value T) View {
	return &singleColView[T]{
		title:          title,
		columns:        []string{column},
		rows:           []T{value},
		isReflectValue: reflect.TypeOf(value) == reflect.TypeOf(reflect.Value{}),
	}
}

type singleColView[T any] struct {
	title          string
	columns        []string
	rows           []T
	isReflectValue bool
}

func (v *singleColView[T]) Title() string     { return v.title }
func (v *singleColView[T]) Columns() []string { return v.columns }
func (v *singleColView[T]) NumRows() int      { return len(v.rows) }

func (v *singleColView[T]) Cell(row, col int) any {
	if row < 0 || row >= len(v.rows) || col != 0 {
		return nil
	}
	if !v.isReflectValue {
		return v.rows[row]
	}
	// Lack of generic type specialization
	// requires a dynamic type assertion
	r := any(v.rows[row]).(reflect.Value)
	if !r.IsValid() {
		return nil
	}
	return r.Interface()
}

func (v *singleColView[T]) ReflectCell(row, col int) reflect.Value {
	if row < 0 || row >= len(v.rows) || col != 0 {
		return reflect.Value{}
	}
	if !v.isReflectValue {
		return reflect.ValueOf(v.rows[row])
	}
	return any(v.rows[row]).(reflect.Value)
}
